package analyzer

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	placeholderName = "field"
	digitPrefix     = "field_"
)

// NameRegistry tracks the symbol names issued during one analysis pass so
// labels that sanitize to the same name stay unique. It is created fresh per
// Analyze call; sharing one registry across concurrent passes would corrupt
// the uniqueness guarantee.
type NameRegistry struct {
	used map[string]struct{}
}

func NewNameRegistry() *NameRegistry {
	return &NameRegistry{used: make(map[string]struct{})}
}

// Claim converts label text into a unique, symbol-safe name and records it.
// Identical input against identical registry state always yields the same
// name.
func (r *NameRegistry) Claim(label string) string {
	name := sanitizeName(label)

	if name == "" {
		name = placeholderName
	}

	if unicode.IsDigit(rune(name[0])) {
		name = digitPrefix + name
	}

	candidate := name
	for i := 1; ; i++ {
		if _, taken := r.used[candidate]; !taken {
			break
		}

		candidate = fmt.Sprintf("%s_%d", name, i)
	}

	r.used[candidate] = struct{}{}

	return candidate
}

func sanitizeName(label string) string {
	var sb strings.Builder

	for _, ch := range label {
		if unicode.IsLetter(ch) || unicode.IsDigit(ch) {
			sb.WriteRune(unicode.ToLower(ch))
		} else {
			sb.WriteRune('_')
		}
	}

	out := sb.String()

	for strings.Contains(out, "__") {
		out = strings.ReplaceAll(out, "__", "_")
	}

	return strings.Trim(out, "_")
}
