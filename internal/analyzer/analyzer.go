package analyzer

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"page-analyzer/internal/config"
	"page-analyzer/internal/domtree"
	"page-analyzer/internal/entity"
	"page-analyzer/pkg/logg"
	"page-analyzer/pkg/tracing"
)

const (
	analyzerServiceName = "AnalyzerService"
	analyzerTracer      = "analyzer.service"
)

// Service is the analysis orchestrator: one Analyze call performs one
// synchronous walk over an already-materialized tree and returns a fully
// populated catalog. It holds no reference to the result afterward.
type Service struct {
	config     *config.Config
	logger     *zap.Logger
	tracer     trace.Tracer
	idPatterns *PatternTable
}

type Params struct {
	fx.In

	Config *config.Config
	Logger *zap.Logger
}

func NewService(params Params) (*Service, error) {
	patterns := DefaultPatternTable()

	if extra := params.Config.AnalyzerConfig.ExtraIDPatterns; len(extra) > 0 {
		if err := patterns.Extend(extra...); err != nil {
			return nil, err
		}
	}

	return &Service{
		config:     params.Config,
		logger:     params.Logger.With(zap.String(logg.Layer, analyzerServiceName)),
		tracer:     otel.Tracer(analyzerTracer),
		idPatterns: patterns,
	}, nil
}

// Analyze inventories the tree into forms, standalone inputs, buttons and
// links, then derives page metadata. It never fails: per-node faults drop the
// node, a catastrophic fault yields a minimal url/title-only result.
func (s *Service) Analyze(ctx context.Context, tree *domtree.Tree) (result *entity.PageAnalysisResult) {
	const op = "Analyze"
	logger := s.logger.With(zap.String(logg.Operation, op))

	_, step := tracing.StartSpan(ctx, s.tracer, logger, op)
	defer step.End(nil)

	result = &entity.PageAnalysisResult{
		Metadata: entity.Metadata{Direction: entity.DirectionLTR},
	}

	if tree == nil || tree.Root == nil {
		logger.Warn("analysis requested without a tree")

		return result
	}

	result.URL = tree.URL
	result.Title = tree.Title

	defer func() {
		if r := recover(); r != nil {
			logger.Error("analysis fault, returning degraded result", zap.Any("panic", r))

			result = &entity.PageAnalysisResult{
				URL:      tree.URL,
				Title:    tree.Title,
				Metadata: entity.Metadata{Direction: entity.DirectionLTR},
			}
		}
	}()

	logger = logger.With(zap.String(logg.URL, tree.URL))

	// names are unique within one pass only; a fresh registry per call keeps
	// concurrent analyses independent
	registry := NewNameRegistry()

	formNodes := tree.Root.ByTag("form")
	step.AddEvent("walking forms", attribute.Int("forms", len(formNodes)))

	for i, formNode := range formNodes {
		form := entity.FormRecord{
			ID:     formNode.Attr("id"),
			Name:   formNode.Attr("name"),
			Action: formNode.Attr("action"),
			Method: formNode.Attr("method"),
		}

		for _, fieldNode := range inputNodes(formNode) {
			if skipFieldType(fieldNode) || !s.isVisible(fieldNode) {
				continue
			}

			if record, ok := s.processInput(tree, fieldNode, registry); ok {
				form.Fields = append(form.Fields, record)
			}
		}

		logger.Debug("form collected",
			zap.Int(logg.FormIndex, i), zap.Int(logg.Count, len(form.Fields)))

		result.Forms = append(result.Forms, form)
	}

	step.AddEvent("walking standalone inputs")

	for _, node := range inputNodes(tree.Root) {
		if insideForm(node) || skipFieldType(node) || !s.isVisible(node) {
			continue
		}

		if record, ok := s.processInput(tree, node, registry); ok {
			result.StandaloneInputs = append(result.StandaloneInputs, record)
		}
	}

	step.AddEvent("walking buttons")

	for _, node := range buttonNodes(tree.Root) {
		if !s.isVisible(node) {
			continue
		}

		if record, ok := s.processButton(node, registry); ok {
			result.Buttons = append(result.Buttons, record)
		}
	}

	step.AddEvent("walking links")

	// the cap bounds output size on link-farm pages; it applies after
	// visibility filtering
	limit := s.config.AnalyzerConfig.LinkLimit

	for _, node := range tree.Root.ByTag("a") {
		if len(result.Links) >= limit {
			break
		}

		if node.Attr("href") == "" || !s.isVisible(node) {
			continue
		}

		if record, ok := s.processLink(node, registry); ok {
			result.Links = append(result.Links, record)
		}
	}

	step.AddEvent("detecting intent")

	result.Metadata = s.detectIntent(tree, result)

	logger.Info("analysis completed",
		zap.Int("forms", len(result.Forms)),
		zap.Int("standalone_inputs", len(result.StandaloneInputs)),
		zap.Int("buttons", len(result.Buttons)),
		zap.Int("links", len(result.Links)))

	return result
}

func (s *Service) processInput(tree *domtree.Tree, n *domtree.Node, registry *NameRegistry) (record entity.ElementRecord, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Warn("field extraction fault, node dropped",
				zap.String(logg.Tag, n.Tag), zap.Any("panic", r))

			ok = false
		}
	}()

	record = entity.ElementRecord{
		Kind:        entity.ElementKindInput,
		Type:        fieldType(n),
		Name:        n.Attr("name"),
		ID:          n.Attr("id"),
		Placeholder: n.Attr("placeholder"),
		Required:    n.HasAttr("required"),
		Label:       s.resolveLabel(tree, n),
		Selector:    s.synthesizeSelector(n),
	}

	record.VarName = registry.Claim(firstNonEmpty(record.Label, record.Name, record.Placeholder, record.Type))

	return record, true
}

func (s *Service) processButton(n *domtree.Node, registry *NameRegistry) (record entity.ElementRecord, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Warn("button extraction fault, node dropped",
				zap.String(logg.Tag, n.Tag), zap.Any("panic", r))

			ok = false
		}
	}()

	text := collapseText(n.TextContent())
	if text == "" {
		text = n.Attr("value")
	}

	if text == "" {
		text = n.Attr("aria-label")
	}

	record = entity.ElementRecord{
		Kind:     entity.ElementKindButton,
		Type:     fieldType(n),
		Name:     n.Attr("name"),
		ID:       n.Attr("id"),
		Text:     text,
		Selector: s.synthesizeSelector(n),
	}

	record.VarName = registry.Claim(firstNonEmpty(text, record.Name, "button"))

	return record, true
}

func (s *Service) processLink(n *domtree.Node, registry *NameRegistry) (record entity.ElementRecord, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Warn("link extraction fault, node dropped", zap.Any("panic", r))

			ok = false
		}
	}()

	record = entity.ElementRecord{
		Kind:     entity.ElementKindLink,
		Text:     collapseText(n.TextContent()),
		Href:     n.Attr("href"),
		ID:       n.Attr("id"),
		Selector: s.synthesizeSelector(n),
	}

	record.VarName = registry.Claim(firstNonEmpty(record.Text, "link"))

	return record, true
}

func inputNodes(root *domtree.Node) []*domtree.Node {
	return root.FindAll(func(n *domtree.Node) bool {
		return n.Tag == "input" || n.Tag == "select" || n.Tag == "textarea"
	})
}

func buttonNodes(root *domtree.Node) []*domtree.Node {
	return root.FindAll(func(n *domtree.Node) bool {
		switch {
		case n.Tag == "button":
			return true
		case n.Tag == "input":
			t := strings.ToLower(n.Attr("type"))

			return t == "submit" || t == "button"
		default:
			return n.Attr("role") == "button"
		}
	})
}

// skipFieldType drops field types that carry no user-facing state: hidden
// inputs and submit controls (the latter are catalogued as buttons).
func skipFieldType(n *domtree.Node) bool {
	if n.Tag != "input" {
		return false
	}

	switch strings.ToLower(n.Attr("type")) {
	case "hidden", "submit", "button", "image", "reset":
		return true
	default:
		return false
	}
}

func fieldType(n *domtree.Node) string {
	if n.Tag == "input" {
		if t := strings.ToLower(n.Attr("type")); t != "" {
			return t
		}

		return "text"
	}

	return n.Tag
}

func insideForm(n *domtree.Node) bool {
	for _, anc := range n.Ancestors() {
		if anc.Tag == "form" {
			return true
		}
	}

	return false
}

func collapseText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}

	return ""
}
