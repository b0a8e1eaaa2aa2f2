package console

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"page-analyzer/internal/config"
	"page-analyzer/internal/entity"
	"page-analyzer/internal/usecase"
	"page-analyzer/pkg/logg"
)

type Interface struct {
	config   *config.Config
	logger   *zap.Logger
	usecase  *usecase.Service
	ctx      context.Context
	cancel   context.CancelFunc
	sigChan  chan os.Signal
	stopping bool
	lastRun  *entity.Run
}

type Params struct {
	fx.In

	Config  *config.Config
	Logger  *zap.Logger
	Usecase *usecase.Service
}

func NewInterface(params Params) *Interface {
	ctx, cancel := context.WithCancel(context.Background())
	sigChan := make(chan os.Signal, 1)

	return &Interface{
		config:   params.Config,
		logger:   params.Logger.With(zap.String(logg.Layer, "Console")),
		usecase:  params.Usecase,
		ctx:      ctx,
		cancel:   cancel,
		sigChan:  sigChan,
		stopping: false,
	}
}

func (i *Interface) Start() error {
	i.printBanner()
	i.printHelp()

	signal.Notify(i.sigChan, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-i.sigChan
		fmt.Println("\n\nInterrupt received, shutting down...")
		i.stopping = true
		i.Stop()
	}()

	scanner := bufio.NewScanner(os.Stdin)

	for {
		if i.stopping {
			break
		}

		fmt.Print("\n> ")

		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())

		if input == "" {
			continue
		}

		if err := i.handleCommand(input); err != nil {
			if err.Error() == "exit" {
				break
			}

			i.logger.Error("Command error", zap.Error(err))
			fmt.Printf("Error: %v\n", err)
		}
	}

	return nil
}

func (i *Interface) Stop() error {
	if i.stopping {
		return nil
	}

	i.stopping = true
	i.logger.Info("Stopping console interface...")

	i.cancel()

	fmt.Println("Bye!")
	os.Exit(0)

	return nil
}

func (i *Interface) handleCommand(input string) error {
	command, arg, _ := strings.Cut(input, " ")
	arg = strings.TrimSpace(arg)

	switch command {
	case "help", "h":
		i.printHelp()

		return nil
	case "exit", "quit", "q":
		fmt.Println("Shutting down...")

		return fmt.Errorf("exit")
	case "open", "o":
		if arg == "" {
			return fmt.Errorf("usage: open <url>")
		}

		return i.inspectURL(arg)
	case "analyze", "a":
		return i.inspectCurrent()
	case "file", "f":
		if arg == "" {
			return fmt.Errorf("usage: file <path>")
		}

		return i.inspectFile(arg)
	case "text", "t":
		return i.printText()
	case "json", "j":
		return i.printJSON()
	default:
		return fmt.Errorf("unknown command %q, try help", command)
	}
}

func (i *Interface) inspectURL(url string) error {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = "https://" + url
	}

	fmt.Printf("\nInspecting %s ...\n", url)

	run, err := i.usecase.Inspect.Inspect(i.ctx, url)
	if err != nil {
		return err
	}

	i.lastRun = run
	i.printSummary(run)

	return nil
}

func (i *Interface) inspectCurrent() error {
	run, err := i.usecase.Inspect.InspectCurrent(i.ctx)
	if err != nil {
		return err
	}

	i.lastRun = run
	i.printSummary(run)

	return nil
}

func (i *Interface) inspectFile(path string) error {
	run, err := i.usecase.Inspect.InspectFile(i.ctx, path)
	if err != nil {
		return err
	}

	i.lastRun = run
	i.printSummary(run)

	return nil
}

func (i *Interface) printSummary(run *entity.Run) {
	result := run.Result

	fmt.Println("\n──────────────────────────────────────────────────")
	fmt.Printf("Run %s (%s)\n", run.ID, run.Status)

	if result == nil {
		return
	}

	fmt.Printf("Forms: %d  Inputs: %d  Buttons: %d  Links: %d\n",
		len(result.Forms), len(result.StandaloneInputs), len(result.Buttons), len(result.Links))
	fmt.Printf("Direction: %s", result.Metadata.Direction)

	if result.Metadata.Language != "" {
		fmt.Printf(" (%s)", result.Metadata.Language)
	}

	fmt.Println()
	fmt.Println("Type 'text' for the condensed rendering or 'json' for the full catalog.")
}

func (i *Interface) printText() error {
	if i.lastRun == nil || i.lastRun.Result == nil {
		return fmt.Errorf("nothing analyzed yet, use open <url> first")
	}

	fmt.Println()
	fmt.Print(i.lastRun.Text)

	return nil
}

func (i *Interface) printJSON() error {
	if i.lastRun == nil || i.lastRun.Result == nil {
		return fmt.Errorf("nothing analyzed yet, use open <url> first")
	}

	buf, err := json.MarshalIndent(i.lastRun.Result, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(buf))

	return nil
}

func (i *Interface) printBanner() {
	banner := `
╔══════════════════════════════════════════════════╗
║                                                  ║
║   Page Analyzer — resilient selector synthesis   ║
║                                                  ║
╚══════════════════════════════════════════════════╝
`
	fmt.Println(banner)
}

func (i *Interface) printHelp() {
	help := `
Available commands:
  open <url>    - navigate to a page and analyze it
  analyze       - re-analyze the page the browser is currently on
  file <path>   - analyze a static HTML file
  text          - print the condensed text rendering of the last run
  json          - print the full catalog of the last run as JSON
  help, h       - show this help message
  exit, quit, q - exit
`
	fmt.Println(help)
}
