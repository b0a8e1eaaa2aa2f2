package bootstrap

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"page-analyzer/internal/console"
	"page-analyzer/internal/ports"
)

func runConsole(lc fx.Lifecycle, consoleInterface *console.Interface, browser ports.PageSource, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("Starting page analyzer console...")

			if err := browser.Launch(ctx); err != nil {
				logger.Error("Failed to launch browser", zap.Error(err))

				return err
			}

			logger.Info("Browser launched successfully")

			go func() {
				if err := consoleInterface.Start(); err != nil {
					logger.Error("Console interface error", zap.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Shutting down page analyzer...")

			if err := consoleInterface.Stop(); err != nil {
				logger.Error("Failed to stop console", zap.Error(err))
			}

			if err := browser.Close(ctx); err != nil {
				logger.Error("Failed to close browser", zap.Error(err))
			}

			return nil
		},
	})
}

func launchBrowser(lc fx.Lifecycle, browser ports.PageSource, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("Launching browser...")

			return browser.Launch(ctx)
		},
		OnStop: func(ctx context.Context) error {
			return browser.Close(ctx)
		},
	})
}
