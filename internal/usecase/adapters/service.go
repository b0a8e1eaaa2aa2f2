package adapters

import (
	"context"

	"page-analyzer/internal/domtree"
	"page-analyzer/internal/entity"
)

type BrowserService interface {
	Launch(ctx context.Context) error
	Close(ctx context.Context) error
	Navigate(ctx context.Context, url string) error
	Snapshot(ctx context.Context) (*domtree.Tree, error)
	CurrentURL(ctx context.Context) (string, error)
	IsReady() bool
}

type AnalyzerService interface {
	Analyze(ctx context.Context, tree *domtree.Tree) *entity.PageAnalysisResult
	RenderText(result *entity.PageAnalysisResult) string
}

type InspectService interface {
	Inspect(ctx context.Context, url string) (*entity.Run, error)
	InspectCurrent(ctx context.Context) (*entity.Run, error)
	InspectFile(ctx context.Context, path string) (*entity.Run, error)
}
