package classlint

import "fmt"

// ValidationResult is the outcome of classifying one token. Results are
// constructed fresh per token and never mutated afterwards.
type ValidationResult struct {
	Valid   bool      `json:"valid"`
	Kind    ClassKind `json:"kind,omitempty"`
	Message string    `json:"message,omitempty"`
}

// InvalidClass pairs a failing token with its result, for callers that only
// care about failures.
type InvalidClass struct {
	Token  string           `json:"token"`
	Result ValidationResult `json:"result"`
}

// ValidateClassName classifies a single token. Failure is data, not an
// error: an unrecognized token yields Valid=false with a diagnostic message
// unless cfg.AllowUnknown is set, in which case it passes untyped with an
// informational message.
func ValidateClassName(token string, cfg *Config) ValidationResult {
	kind := GetClassType(token, cfg)
	if kind != KindNone {
		return ValidationResult{Valid: true, Kind: kind}
	}

	if cfg.allowUnknown() {
		return ValidationResult{
			Valid:   true,
			Kind:    KindNone,
			Message: fmt.Sprintf("%q does not match any known pattern (allowed by configuration)", token),
		}
	}

	return ValidationResult{Valid: false, Kind: KindNone, Message: diagnose(token)}
}

// ValidateClassString splits a class-attribute string on whitespace and
// validates each token, preserving input order.
func ValidateClassString(text string, cfg *Config) []ValidationResult {
	tokens := ParseClassString(text)
	results := make([]ValidationResult, len(tokens))
	for i, tok := range tokens {
		results[i] = ValidateClassName(tok, cfg)
	}
	return results
}

// GetInvalidClasses validates a class-attribute string and returns only the
// failing tokens, in input order.
func GetInvalidClasses(text string, cfg *Config) []InvalidClass {
	var invalid []InvalidClass
	for _, tok := range ParseClassString(text) {
		if result := ValidateClassName(tok, cfg); !result.Valid {
			invalid = append(invalid, InvalidClass{Token: tok, Result: result})
		}
	}
	return invalid
}

// ValidateCSSSelector extracts the class names from a CSS/SCSS selector and
// validates each, preserving order of appearance.
func ValidateCSSSelector(selector string, cfg *Config) []ValidationResult {
	tokens := ExtractClassSelectors(selector)
	results := make([]ValidationResult, len(tokens))
	for i, tok := range tokens {
		results[i] = ValidateClassName(tok, cfg)
	}
	return results
}
