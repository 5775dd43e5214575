package classlint

import (
	"fmt"
	"strings"
	"unicode"
)

// diagnose explains why a token failed classification. It pattern-matches
// the shape of the failure with heuristics that are separate from the
// grammars themselves, so a near-miss gets a targeted suggestion instead of
// a bare "no match". The returned message is always non-empty.
func diagnose(token string) string {
	var hints []string

	// "card__info" with no lone underscore anywhere is most likely a
	// malformed first-level element.
	if strings.Contains(token, "__") && !loneUnderscoreRe.MatchString(token) {
		collapsed := strings.Replace(token, "__", "_", 1)
		hints = append(hints, fmt.Sprintf("elements use a single underscore: did you mean %q", collapsed))
	}

	if hint, ok := statePrefixHint(token, "is"); ok {
		hints = append(hints, hint)
	}
	if hint, ok := statePrefixHint(token, "has"); ok {
		hints = append(hints, hint)
	}

	if hasUppercase(token) && !IsStateClass(token) {
		hints = append(hints, "class names other than state classes must be lowercase")
	}

	if tripleUnderscoreRe.MatchString(token) {
		hints = append(hints, "element nesting is capped at two levels (single then double underscore)")
	}

	if len(hints) == 0 {
		return fmt.Sprintf("%q does not match any recognized class pattern", token)
	}

	return fmt.Sprintf("%q is not a valid class name: %s", token, strings.Join(hints, ". "))
}

// statePrefixHint suggests the camelCase-corrected state form when a token
// starts with a state prefix but the next character is not uppercase
// ("isactive" -> "isActive").
func statePrefixHint(token, prefix string) (string, bool) {
	if !strings.HasPrefix(token, prefix) || len(token) <= len(prefix) {
		return "", false
	}

	rest := token[len(prefix):]
	first := rune(rest[0])
	if unicode.IsUpper(first) {
		return "", false
	}
	if !unicode.IsLetter(first) {
		return "", false
	}

	corrected := prefix + strings.ToUpper(rest[:1]) + rest[1:]
	return fmt.Sprintf("state classes are camelCase: did you mean %q", corrected), true
}

// hasUppercase reports whether the token contains any uppercase letter.
func hasUppercase(token string) bool {
	for _, r := range token {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}
