package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"page-analyzer/internal/bootstrap"
	"page-analyzer/internal/entity"
	"page-analyzer/internal/usecase"
)

var (
	htmlFile   string
	jsonOutput bool
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "page-analyzer",
		Short: "Inventory a web page into testable elements with resilient selectors",
		Long: `page-analyzer captures an already-rendered page and converts it into a
catalog of forms, fields, buttons and links, each with a synthesized locator
and a confidence score, plus detected page intent and text direction.`,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [url]",
		Short: "Analyze one page and print the result",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runAnalyze,
	}
	analyzeCmd.Flags().StringVarP(&htmlFile, "file", "f", "", "Analyze a static HTML file instead of a live URL")
	analyzeCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the full catalog as JSON instead of the condensed text")

	consoleCmd := &cobra.Command{
		Use:   "console",
		Short: "Start the interactive console",
		Run: func(cmd *cobra.Command, args []string) {
			bootstrap.NewApp().Run()
		},
	}

	rootCmd.AddCommand(analyzeCmd, consoleCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if htmlFile == "" && len(args) == 0 {
		return fmt.Errorf("either a url argument or --file is required")
	}

	var svc *usecase.Service

	app := bootstrap.NewHeadlessApp(&svc, htmlFile == "")

	startCtx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := app.Start(startCtx); err != nil {
		return err
	}

	defer func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer stopCancel()

		_ = app.Stop(stopCtx)
	}()

	ctx := context.Background()

	run, err := inspect(ctx, svc, args)
	if err != nil {
		return err
	}

	if jsonOutput {
		buf, err := json.MarshalIndent(run.Result, "", "  ")
		if err != nil {
			return err
		}

		fmt.Println(string(buf))

		return nil
	}

	fmt.Print(run.Text)

	return nil
}

func inspect(ctx context.Context, svc *usecase.Service, args []string) (*entity.Run, error) {
	if htmlFile != "" {
		return svc.Inspect.InspectFile(ctx, htmlFile)
	}

	return svc.Inspect.Inspect(ctx, args[0])
}
