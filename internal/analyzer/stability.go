package analyzer

import (
	"fmt"
	"regexp"
)

// PatternTable classifies identifiers that look framework- or tooling-
// generated. The table is data driven so deployments can extend it as new
// generative-id conventions appear, without touching the classifier.
type PatternTable struct {
	patterns []*regexp.Regexp
}

var defaultIDPatterns = []string{
	// UUIDs anywhere in the identifier
	`[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`,
	// bare hex blobs (content hashes)
	`^[0-9a-f]{6,}$`,
	// framework auto-id conventions
	`^ember\d+$`,
	`^react-.*\d+`,
	`^:r[0-9a-z]+:$`,
	`^radix-`,
	`^mui-\d+`,
	`^ng-[0-9a-z]+`,
	`^vue-\d+`,
	`^svelte-[0-9a-z]+`,
	`^headlessui-`,
	`^downshift-\d+`,
	// word-dash-digits: input-127, field-3982
	`^[a-zA-Z]+[-_]\d+$`,
	// prefix plus hex tail: widget-4f2a9c (tail must carry a digit so plain
	// words of hex letters stay stable)
	`^[a-zA-Z]+[-_](\d[0-9a-f]{3,}|[0-9a-f]\d[0-9a-f]{2,}|[0-9a-f]{2}\d[0-9a-f]+|[0-9a-f]{3,}\d[0-9a-f]*)$`,
	// long digit runs tacked onto anything
	`\d{6,}$`,
	// short random alphanumeric suffixes with interleaved digits: btn-x7Qp2
	`[-_][a-zA-Z0-9]*\d[a-zA-Z0-9]*\d[a-zA-Z0-9]*$`,
}

// DefaultPatternTable returns the built-in generated-id pattern families.
func DefaultPatternTable() *PatternTable {
	t := &PatternTable{}

	for _, expr := range defaultIDPatterns {
		t.patterns = append(t.patterns, regexp.MustCompile(expr))
	}

	return t
}

// Extend compiles and appends externally supplied patterns. Invalid
// expressions are rejected without modifying the table.
func (t *PatternTable) Extend(exprs ...string) error {
	compiled := make([]*regexp.Regexp, 0, len(exprs))

	for _, expr := range exprs {
		if expr == "" {
			continue
		}

		re, err := regexp.Compile(expr)
		if err != nil {
			return fmt.Errorf("compile id pattern %q: %w", expr, err)
		}

		compiled = append(compiled, re)
	}

	t.patterns = append(t.patterns, compiled...)

	return nil
}

// IsUnstable reports whether the identifier matches any generated-id family.
// Hand-authored identifiers like "submit-button" match none of them.
func (t *PatternTable) IsUnstable(id string) bool {
	if id == "" {
		return true
	}

	for _, re := range t.patterns {
		if re.MatchString(id) {
			return true
		}
	}

	return false
}
