package ports

import (
	"context"

	"page-analyzer/internal/domtree"
	"page-analyzer/internal/entity"
)

// PageSource supplies materialized document trees from a live browser.
type PageSource interface {
	Launch(ctx context.Context) error
	Close(ctx context.Context) error
	Navigate(ctx context.Context, url string) error
	Snapshot(ctx context.Context) (*domtree.Tree, error)
	CurrentURL(ctx context.Context) (string, error)
	IsReady() bool
}

// PageAnalyzer turns one tree into a catalog of testable elements. Analyze
// never fails; a catastrophic fault degrades to a url/title-only result.
type PageAnalyzer interface {
	Analyze(ctx context.Context, tree *domtree.Tree) *entity.PageAnalysisResult
	RenderText(result *entity.PageAnalysisResult) string
}
