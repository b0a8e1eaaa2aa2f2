package usecase

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"page-analyzer/internal/config"
	"page-analyzer/internal/ports"
	"page-analyzer/internal/usecase/adapters"
)

type Service struct {
	Inspect  adapters.InspectService
	Browser  adapters.BrowserService
	Analyzer adapters.AnalyzerService
}

type Params struct {
	fx.In

	Logger   *zap.Logger
	Config   *config.Config
	Browser  ports.PageSource
	Analyzer ports.PageAnalyzer
}

func NewUsecase(params Params) *Service {
	factory := newServiceFactory(params)

	return &Service{
		Inspect:  factory.CreateInspectService(),
		Browser:  factory.CreateBrowserService(),
		Analyzer: factory.CreateAnalyzerService(),
	}
}
