package bootstrap

import (
	"time"

	"go.uber.org/fx"

	"page-analyzer/internal/analyzer"
	"page-analyzer/internal/browser"
	"page-analyzer/internal/config"
	"page-analyzer/internal/console"
	"page-analyzer/internal/ports"
	"page-analyzer/internal/usecase"
)

func NewApp() *fx.App {
	return fx.New(
		fx.Provide(
			config.GetConfig,
			newLogger,
			newTraceProvider,

			fx.Annotate(browser.NewManager, fx.As(new(ports.PageSource))),
			fx.Annotate(analyzer.NewService, fx.As(new(ports.PageAnalyzer))),

			usecase.NewUsecase,

			console.NewInterface,
		),

		fx.Invoke(
			runConsole,
		),

		fx.StartTimeout(10*time.Second),
	)
}

// NewHeadlessApp wires everything except the interactive console; the caller
// drives the usecase layer directly through the populate target. File-only
// invocations skip the browser lifecycle entirely.
func NewHeadlessApp(target **usecase.Service, withBrowser bool) *fx.App {
	options := []fx.Option{
		fx.Provide(
			config.GetConfig,
			newLogger,
			newTraceProvider,

			fx.Annotate(browser.NewManager, fx.As(new(ports.PageSource))),
			fx.Annotate(analyzer.NewService, fx.As(new(ports.PageAnalyzer))),

			usecase.NewUsecase,
		),

		fx.Populate(target),

		fx.StartTimeout(60 * time.Second),
	}

	if withBrowser {
		options = append(options, fx.Invoke(launchBrowser))
	}

	return fx.New(options...)
}
