package analyzer

import (
	"strings"

	"go.uber.org/zap"

	"page-analyzer/internal/domtree"
	"page-analyzer/internal/entity"
)

var rtlLanguages = map[string]bool{
	"ar":  true,
	"he":  true,
	"fa":  true,
	"ur":  true,
	"ps":  true,
	"sd":  true,
	"ckb": true,
	"dv":  true,
	"yi":  true,
	"ug":  true,
}

var (
	loginPhrases    = []string{"login", "log in", "sign in", "signin"}
	signupPhrases   = []string{"sign up", "signup", "register", "create account", "create an account"}
	checkoutPhrases = []string{"checkout", "check out", "cart", "payment", "billing"}
	cardHints       = []string{"cardnumber", "card_number", "card-number", "card number", "ccnumber", "cc-number", "creditcard"}
	confirmHints    = []string{"confirm", "repeat", "retype", "verification"}
)

// detectIntent aggregates the collected element set with the raw page text and
// URL into intent flags and text directionality. Any fault degrades to the
// all-false / ltr default.
func (s *Service) detectIntent(tree *domtree.Tree, result *entity.PageAnalysisResult) (meta entity.Metadata) {
	meta = entity.Metadata{Direction: entity.DirectionLTR}

	defer func() {
		if r := recover(); r != nil {
			s.logger.Warn("intent detection fault, using defaults", zap.Any("panic", r))

			meta = entity.Metadata{Direction: entity.DirectionLTR}
		}
	}()

	fields := collectFields(result)
	text := strings.ToLower(tree.VisibleText())
	url := strings.ToLower(result.URL)

	hasPassword := false
	hasEmail := false
	hasConfirm := false
	hasSearchField := false
	hasCardField := false

	for _, f := range fields {
		hint := strings.ToLower(f.Name + " " + f.Placeholder)

		switch {
		case f.Type == "password":
			hasPassword = true
		case f.Type == "email":
			hasEmail = true
		case f.Type == "search":
			hasSearchField = true
		}

		if strings.Contains(hint, "email") || strings.Contains(hint, "e-mail") {
			hasEmail = true
		}

		if containsAny(hint, confirmHints) {
			hasConfirm = true
		}

		if strings.Contains(hint, "search") {
			hasSearchField = true
		}

		if containsAny(hint, cardHints) {
			hasCardField = true
		}
	}

	meta.HasLogin = hasPassword && (hasEmail || containsAny(text, loginPhrases) || containsAny(url, loginPhrases))
	meta.HasSignup = hasPassword && (hasConfirm || containsAny(text, signupPhrases) || containsAny(url, signupPhrases))
	meta.HasSearch = hasSearchField || strings.Contains(text, "search")
	meta.HasCheckout = hasCardField || containsAny(text, checkoutPhrases) || containsAny(url, checkoutPhrases)

	meta.Direction = s.detectDirection(tree)
	meta.Language = rootLanguage(tree)

	return meta
}

// detectDirection walks the directionality cascade; the first decisive signal
// wins, ltr is the terminal default.
func (s *Service) detectDirection(tree *domtree.Tree) entity.Direction {
	if tree.Root != nil {
		switch strings.ToLower(tree.Root.Attr("dir")) {
		case "rtl":
			return entity.DirectionRTL
		case "ltr":
			return entity.DirectionLTR
		}
	}

	if lang := rootLanguage(tree); lang != "" && rtlLanguages[lang] {
		return entity.DirectionRTL
	}

	if tree.BodyDirection == "rtl" {
		return entity.DirectionRTL
	}

	if tree.BodyDirection == "ltr" {
		return entity.DirectionLTR
	}

	if tree.DocDirection == "rtl" {
		return entity.DirectionRTL
	}

	return entity.DirectionLTR
}

// rootLanguage returns the primary subtag of the root lang attribute, e.g.
// "ar" from lang="ar-EG".
func rootLanguage(tree *domtree.Tree) string {
	if tree.Root == nil {
		return ""
	}

	lang := strings.ToLower(strings.TrimSpace(tree.Root.Attr("lang")))
	if lang == "" {
		return ""
	}

	if primary, _, ok := strings.Cut(lang, "-"); ok {
		return primary
	}

	return lang
}

func collectFields(result *entity.PageAnalysisResult) []entity.ElementRecord {
	var out []entity.ElementRecord

	for _, form := range result.Forms {
		out = append(out, form.Fields...)
	}

	out = append(out, result.StandaloneInputs...)

	return out
}

func containsAny(haystack string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}

	return false
}
