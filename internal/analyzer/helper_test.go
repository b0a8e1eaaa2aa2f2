package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"page-analyzer/internal/config"
	"page-analyzer/internal/domtree"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	svc, err := NewService(Params{
		Config: &config.Config{
			AppConfig: &config.AppConfig{LogLevel: "error"},
			AnalyzerConfig: &config.AnalyzerConfig{
				LinkLimit:   20,
				RenderLimit: 10,
			},
		},
		Logger: zap.NewNop(),
	})
	require.NoError(t, err)

	return svc
}

func parseTree(t *testing.T, html string) *domtree.Tree {
	t.Helper()

	tree, err := domtree.ParseHTML(strings.NewReader(html), "https://example.test/page")
	require.NoError(t, err)

	return tree
}

// firstByTag returns the first element of the given tag, failing the test
// when the document has none.
func firstByTag(t *testing.T, tree *domtree.Tree, tag string) *domtree.Node {
	t.Helper()

	nodes := tree.Root.ByTag(tag)
	require.NotEmpty(t, nodes, "no <%s> in fixture", tag)

	return nodes[0]
}
