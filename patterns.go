package classlint

import "regexp"

// Pattern sources for the five naming grammars. They are exported as strings
// so external rule engines (editor plugins, stylelint-style wrappers) can
// consume the exact same grammars; the compiled forms below must stay
// byte-identical in semantics to these sources.
//
// A segment is one or more lowercase alphanumeric groups joined by single
// hyphens, starting with a lowercase letter. No leading/trailing hyphen, no
// double hyphen inside a segment.
const (
	segment = `[a-z][a-z0-9]*(?:-[a-z0-9]+)*`

	// BlockSource matches a standalone block: "card", "nav-bar".
	BlockSource = `^` + segment + `$`

	// ElementSource matches a first-level element: "card_header".
	// Exactly one single-underscore separator.
	ElementSource = `^` + segment + `_` + segment + `$`

	// NestedElementSource matches a second-level element:
	// "card_header__title". One single-underscore join followed by one
	// double-underscore join. Nesting stops at two levels.
	NestedElementSource = `^` + segment + `_` + segment + `__` + segment + `$`

	// ModifierSource matches a block or element followed by a double-hyphen
	// modifier: "btn--primary", "card_header--wide".
	ModifierSource = `^` + segment +
		`(?:_` + segment + `(?:__` + segment + `)?)?` +
		`--` + segment + `$`

	// StateSource matches a camelCase state token with a reserved prefix:
	// "isActive", "hasChildren". No hyphens or underscores anywhere.
	StateSource = `^(?:is|has)[A-Z][a-zA-Z0-9]*$`

	// AnyBEMSource is the alternation of the four structural grammars,
	// for rule engines that only need family membership.
	AnyBEMSource = `^(?:` + segment +
		`(?:_` + segment + `(?:__` + segment + `)?)?` +
		`(?:--` + segment + `)?)$`

	// AnyBEMOrStateSource additionally admits state tokens.
	AnyBEMOrStateSource = `^(?:` + segment +
		`(?:_` + segment + `(?:__` + segment + `)?)?` +
		`(?:--` + segment + `)?` +
		`|(?:is|has)[A-Z][a-zA-Z0-9]*)$`
)

// Compiled grammars. Built once at package init, read-only afterwards, safe
// for unrestricted concurrent use.
var (
	blockRe         = regexp.MustCompile(BlockSource)
	elementRe       = regexp.MustCompile(ElementSource)
	nestedElementRe = regexp.MustCompile(NestedElementSource)
	modifierRe      = regexp.MustCompile(ModifierSource)
	stateRe         = regexp.MustCompile(StateSource)

	// tripleUnderscoreRe flags three or more consecutive underscores, which
	// no grammar may ever match.
	tripleUnderscoreRe = regexp.MustCompile(`___`)

	// loneUnderscoreRe finds a single underscore that is not part of a
	// longer underscore run. Used by the diagnostics heuristics.
	loneUnderscoreRe = regexp.MustCompile(`(?:^|[^_])_(?:[^_]|$)`)
)
