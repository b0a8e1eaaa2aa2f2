package usecase

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"page-analyzer/internal/config"
	"page-analyzer/internal/domtree"
	"page-analyzer/internal/entity"
	"page-analyzer/internal/ports"
	"page-analyzer/pkg/apperr"
	"page-analyzer/pkg/logg"
	"page-analyzer/pkg/tracing"
)

const (
	inspectServiceName = "InspectService"
	inspectTracer      = "usecase.inspect"
)

// InspectService wraps one capture-analyze-render round trip into a Run. The
// analysis result stays a pure value; run lifecycle state lives here.
type InspectService struct {
	config   *config.Config
	logger   *zap.Logger
	browser  ports.PageSource
	analyzer ports.PageAnalyzer
	tracer   trace.Tracer
}

type InspectServiceParams struct {
	fx.In

	Config   *config.Config
	Logger   *zap.Logger
	Browser  ports.PageSource
	Analyzer ports.PageAnalyzer
}

func NewInspectService(params InspectServiceParams) *InspectService {
	return &InspectService{
		config:   params.Config,
		logger:   params.Logger.With(zap.String(logg.Layer, inspectServiceName)),
		browser:  params.Browser,
		analyzer: params.Analyzer,
		tracer:   otel.Tracer(inspectTracer),
	}
}

// Inspect navigates to the URL, captures a snapshot and analyzes it.
func (s *InspectService) Inspect(ctx context.Context, url string) (run *entity.Run, err error) {
	const op = "Inspect"
	logger := s.logger.With(zap.String(logg.Operation, op), zap.String(logg.URL, url))

	ctx, step := tracing.StartSpan(ctx, s.tracer, logger, op, attribute.String("url", url))
	defer func() {
		step.End(err)
	}()

	if url == "" {
		return nil, apperr.InvalidReqError(op, "url", errors.New("url cannot be empty"))
	}

	run = newRun(url)
	logger = logger.With(zap.String(logg.RunID, run.ID.String()))

	if !s.browser.IsReady() {
		return failRun(run, "browser is not ready"),
			apperr.WrapErrorWithReason(op, apperr.CodeBrowserNotReady, "browser_not_ready")
	}

	step.AddEvent("navigating")

	if err := s.browser.Navigate(ctx, url); err != nil {
		logger.Error("Navigation failed", zap.Error(err))

		return failRun(run, err.Error()), err
	}

	return s.analyzeCurrent(ctx, step, logger, run)
}

// InspectCurrent analyzes whatever page the browser is currently on.
func (s *InspectService) InspectCurrent(ctx context.Context) (run *entity.Run, err error) {
	const op = "InspectCurrent"
	logger := s.logger.With(zap.String(logg.Operation, op))

	ctx, step := tracing.StartSpan(ctx, s.tracer, logger, op)
	defer func() {
		step.End(err)
	}()

	if !s.browser.IsReady() {
		return nil, apperr.WrapErrorWithReason(op, apperr.CodeBrowserNotReady, "browser_not_ready")
	}

	url, err := s.browser.CurrentURL(ctx)
	if err != nil {
		return nil, err
	}

	run = newRun(url)
	logger = logger.With(zap.String(logg.RunID, run.ID.String()))

	return s.analyzeCurrent(ctx, step, logger, run)
}

// InspectFile analyzes a static HTML document without a browser.
func (s *InspectService) InspectFile(ctx context.Context, path string) (run *entity.Run, err error) {
	const op = "InspectFile"
	logger := s.logger.With(zap.String(logg.Operation, op), zap.String(logg.File, path))

	ctx, step := tracing.StartSpan(ctx, s.tracer, logger, op, attribute.String("file", path))
	defer func() {
		step.End(err)
	}()

	f, err := os.Open(path)
	if err != nil {
		return nil, apperr.Wrap(op, apperr.CodeNotFound, err, map[string]any{
			apperr.MetaReason: "file_open_failed",
			apperr.MetaFile:   path,
		})
	}
	defer f.Close()

	run = newRun("file://" + path)
	logger = logger.With(zap.String(logg.RunID, run.ID.String()))

	tree, err := domtree.ParseHTML(f, run.URL)
	if err != nil {
		logger.Error("Parse failed", zap.Error(err))

		return failRun(run, err.Error()), err
	}

	step.AddEvent("analyzing")
	s.finishRun(ctx, run, tree)

	return run, nil
}

func (s *InspectService) analyzeCurrent(ctx context.Context, step *tracing.Step, logger *zap.Logger, run *entity.Run) (*entity.Run, error) {
	step.AddEvent("capturing snapshot")

	tree, err := s.browser.Snapshot(ctx)
	if err != nil {
		logger.Error("Snapshot failed", zap.Error(err))

		return failRun(run, err.Error()), err
	}

	step.AddEvent("analyzing")
	s.finishRun(ctx, run, tree)
	logger.Info("Inspection completed")

	return run, nil
}

func (s *InspectService) finishRun(ctx context.Context, run *entity.Run, tree *domtree.Tree) {
	run.Result = s.analyzer.Analyze(ctx, tree)
	run.Text = s.analyzer.RenderText(run.Result)
	run.Status = entity.RunStatusCompleted

	completedAt := time.Now()
	run.CompletedAt = &completedAt
}

func newRun(url string) *entity.Run {
	return &entity.Run{
		ID:        uuid.New(),
		URL:       url,
		Status:    entity.RunStatusInProgress,
		StartedAt: time.Now(),
	}
}

func failRun(run *entity.Run, message string) *entity.Run {
	run.Status = entity.RunStatusFailed
	run.Error = message

	completedAt := time.Now()
	run.CompletedAt = &completedAt

	return run
}
