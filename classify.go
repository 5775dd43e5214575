package classlint

// ClassKind labels the grammar a token was classified under.
type ClassKind string

// Class kinds, from most to least syntactically distinctive.
const (
	KindState         ClassKind = "state"
	KindModifier      ClassKind = "modifier"
	KindNestedElement ClassKind = "nested-element"
	KindElement       ClassKind = "element"
	KindUtility       ClassKind = "utility"
	KindBlock         ClassKind = "block"

	// KindNone means no grammar matched.
	KindNone ClassKind = ""
)

// IsBlock reports whether the token is a valid block name: lowercase
// alphanumeric groups joined by single hyphens ("card", "nav-bar").
func IsBlock(token string) bool {
	return blockRe.MatchString(token)
}

// IsElement reports whether the token is a first-level element
// ("card_header").
func IsElement(token string) bool {
	return elementRe.MatchString(token)
}

// IsNestedElement reports whether the token is a second-level element
// ("card_header__title"). Three or more consecutive underscores never match.
func IsNestedElement(token string) bool {
	if tripleUnderscoreRe.MatchString(token) {
		return false
	}
	return nestedElementRe.MatchString(token)
}

// IsModifier reports whether the token is a block or element with a
// double-hyphen modifier suffix ("btn--primary").
func IsModifier(token string) bool {
	if tripleUnderscoreRe.MatchString(token) {
		return false
	}
	return modifierRe.MatchString(token)
}

// IsStateClass reports whether the token is a camelCase state class with an
// "is" or "has" prefix ("isActive", "hasChildren").
func IsStateClass(token string) bool {
	return stateRe.MatchString(token)
}

// IsUtilityClass reports whether the token matches the builtin utility
// catalog. Custom utilities from a Config are consulted by GetClassType,
// not by this predicate.
func IsUtilityClass(token string) bool {
	return matchesBuiltinUtility(token)
}

// classRule pairs a kind with its predicate. Rules are evaluated in order
// with first-match-wins, so the precedence is auditable as data.
type classRule struct {
	kind  ClassKind
	match func(token string, cfg *Config) bool
}

// classRules resolves tokens whose shape satisfies more than one grammar:
//
//  1. state: camelCase with a reserved prefix, too distinctive to be
//     swallowed by looser grammars;
//  2. modifier: double-hyphen marker;
//  3. nested element: double-underscore marker;
//  4. element: single-underscore marker;
//  5. utility: checked before block because the catalog deliberately
//     overlaps the block grammar's lexical shape ("flex", "mt-2");
//  6. block: the catch-all, lowest specificity.
var classRules = []classRule{
	{KindState, func(t string, _ *Config) bool { return IsStateClass(t) }},
	{KindModifier, func(t string, _ *Config) bool { return IsModifier(t) }},
	{KindNestedElement, func(t string, _ *Config) bool { return IsNestedElement(t) }},
	{KindElement, func(t string, _ *Config) bool { return IsElement(t) }},
	{KindUtility, func(t string, cfg *Config) bool { return cfg.matchesUtility(t) }},
	{KindBlock, func(t string, _ *Config) bool { return IsBlock(t) }},
}

// GetClassType maps a token to its class kind, or KindNone if no grammar
// matches. A nil cfg means defaults. Classification is pure: the same token
// and configuration always produce the same kind.
//
// Under Config.StrictBem, a utility match yields KindNone: the utility rule
// still consumes its slot, so a utility-shaped token is not re-offered to
// the block grammar.
func GetClassType(token string, cfg *Config) ClassKind {
	// No grammar may match a run of three or more underscores.
	if tripleUnderscoreRe.MatchString(token) {
		return KindNone
	}

	for _, rule := range classRules {
		if rule.match(token, cfg) {
			if rule.kind == KindUtility && cfg.strictBem() {
				return KindNone
			}
			return rule.kind
		}
	}
	return KindNone
}

// IsHcncClass reports strict structural-naming membership: true only for
// tokens whose kind is block, element, nested element, or modifier. State
// and utility tokens are valid kinds but not part of the structural family.
func IsHcncClass(token string) bool {
	switch GetClassType(token, nil) {
	case KindBlock, KindElement, KindNestedElement, KindModifier:
		return true
	}
	return false
}
