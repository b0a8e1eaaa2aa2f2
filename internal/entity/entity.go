package entity

import (
	"time"

	"github.com/google/uuid"
)

// ElementKind discriminates the ElementRecord union. Callers switch on it and
// must handle every kind.
type ElementKind string

const (
	ElementKindInput  ElementKind = "input"
	ElementKindButton ElementKind = "button"
	ElementKindLink   ElementKind = "link"
)

// SelectorTier names the waterfall tier that produced a selector.
type SelectorTier string

const (
	TierTestID      SelectorTier = "test_id"
	TierCypressID   SelectorTier = "cypress_id"
	TierStableID    SelectorTier = "stable_id"
	TierName        SelectorTier = "name"
	TierAriaLabel   SelectorTier = "aria_label"
	TierPlaceholder SelectorTier = "placeholder"
	TierRole        SelectorTier = "role"
	TierClass       SelectorTier = "class"
	TierPosition    SelectorTier = "position"
	TierTagOnly     SelectorTier = "tag_only"
)

// SelectorStrategy is the single locator chosen for an element. Confidence is
// a fixed constant of the tier, in [0, 1].
type SelectorStrategy struct {
	Value      string       `json:"value"`
	Confidence float64      `json:"confidence"`
	Tier       SelectorTier `json:"tier"`
}

// ElementRecord describes one catalogued control. Which fields are populated
// depends on Kind: inputs carry Type/Name/Placeholder/Required, buttons carry
// Text, links carry Text/Href.
type ElementRecord struct {
	Kind        ElementKind      `json:"kind"`
	Type        string           `json:"type,omitempty"`
	Name        string           `json:"name,omitempty"`
	ID          string           `json:"id,omitempty"`
	Placeholder string           `json:"placeholder,omitempty"`
	Label       string           `json:"label,omitempty"`
	Text        string           `json:"text,omitempty"`
	Href        string           `json:"href,omitempty"`
	Required    bool             `json:"required,omitempty"`
	VarName     string           `json:"var_name,omitempty"`
	Selector    SelectorStrategy `json:"selector"`
}

// FormRecord groups the fields that belong to one form. A field appears either
// here or in PageAnalysisResult.StandaloneInputs, never both.
type FormRecord struct {
	ID     string          `json:"id,omitempty"`
	Name   string          `json:"name,omitempty"`
	Action string          `json:"action,omitempty"`
	Method string          `json:"method,omitempty"`
	Fields []ElementRecord `json:"fields"`
}

type Direction string

const (
	DirectionLTR Direction = "ltr"
	DirectionRTL Direction = "rtl"
)

// Metadata carries the aggregate page-intent flags and text directionality.
type Metadata struct {
	HasLogin    bool      `json:"has_login"`
	HasSignup   bool      `json:"has_signup"`
	HasSearch   bool      `json:"has_search"`
	HasCheckout bool      `json:"has_checkout"`
	Direction   Direction `json:"direction"`
	Language    string    `json:"language,omitempty"`
}

// PageAnalysisResult is the full catalog produced by one analysis pass. It is
// constructed fresh per call and carries no timestamps, so re-analyzing an
// unmodified tree yields an identical value.
type PageAnalysisResult struct {
	URL              string          `json:"url"`
	Title            string          `json:"title"`
	Forms            []FormRecord    `json:"forms"`
	Buttons          []ElementRecord `json:"buttons"`
	Links            []ElementRecord `json:"links"`
	StandaloneInputs []ElementRecord `json:"standalone_inputs"`
	Metadata         Metadata        `json:"metadata"`
}

type RunStatus string

const (
	RunStatusInProgress RunStatus = "in_progress"
	RunStatusCompleted  RunStatus = "completed"
	RunStatusFailed     RunStatus = "failed"
)

// Run is the use-case envelope around one inspection. The analysis result
// inside stays value-pure; lifecycle state lives here.
type Run struct {
	ID          uuid.UUID
	URL         string
	Status      RunStatus
	StartedAt   time.Time
	CompletedAt *time.Time
	Result      *PageAnalysisResult
	Text        string
	Error       string
}
