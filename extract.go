package classlint

import (
	"regexp"
	"strings"
)

var (
	// selectorClassRe matches a dot-prefixed class identifier inside a
	// selector: "." followed by a letter or underscore, then letters,
	// digits, underscores, or hyphens.
	selectorClassRe = regexp.MustCompile(`\.([A-Za-z_][A-Za-z0-9_-]*)`)

	// selectorOpenRe matches a bare selector-opening line in SCSS:
	// optional "&", a selector run, optionally ending in an open brace.
	selectorOpenRe = regexp.MustCompile(`^(&?[.#]?[A-Za-z_&][A-Za-z0-9_.,#:&\s-]*?)\s*\{?\s*$`)
)

// ParseClassString splits a class-attribute-style string on runs of
// whitespace, discarding empty segments and preserving order.
func ParseClassString(text string) []string {
	return strings.Fields(text)
}

// ExtractClassSelectors returns the class names referenced by a CSS/SCSS
// selector, without the leading dot, in order of appearance. Duplicates are
// retained; element selectors, ids, and pseudo-classes are ignored.
func ExtractClassSelectors(selector string) []string {
	matches := selectorClassRe.FindAllStringSubmatch(selector, -1)
	classes := make([]string, 0, len(matches))
	for _, m := range matches {
		classes = append(classes, m[1])
	}
	return classes
}

// ClassOccurrence locates one resolved class token within SCSS source text.
// Line and Column are 1-based; Column points at the raw selector part the
// class was resolved from, not at the synthetic expansion.
type ClassOccurrence struct {
	Class  string
	Line   int
	Column int
}

// ExpandScssNesting resolves SCSS parent selectors ("&") line by line and
// returns the dot-stripped class selectors it encounters, in order.
//
// This is a heuristic, not a parser: it expects one selector opening per
// line and at most one closing brace per line. It keeps a stack of open
// selector contexts; a line that looks like a selector opening resolves a
// leading "&" against the nearest enclosing selector and pushes the result,
// and any line containing "}" pops one level. Inputs that don't fit the
// one-selector-per-line shape are silently misparsed; that is the documented
// scope of this function, not a defect.
func ExpandScssNesting(text string) []string {
	occs := ExpandScssNestingOccurrences(text)
	out := make([]string, 0, len(occs))
	for _, occ := range occs {
		out = append(out, occ.Class)
	}
	return out
}

// ExpandScssNestingOccurrences is ExpandScssNesting with source positions
// attached, for tools that report findings back against the file.
func ExpandScssNestingOccurrences(text string) []ClassOccurrence {
	var out []ClassOccurrence
	var stack []string

	for lineIdx, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)

		if line == "" || strings.HasPrefix(line, "//") || strings.HasPrefix(line, "/*") {
			continue
		}

		if strings.Contains(line, "}") {
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
			continue
		}

		if !looksLikeSelectorOpen(line) {
			continue
		}

		selector := strings.TrimSuffix(line, "{")
		selector = strings.TrimSpace(selector)

		// Comma-split at match time; each part resolves independently
		// against the enclosing context. Only the first resolved part is
		// pushed as the context for nested rules, matching the
		// single-selector-per-line heuristic.
		next := selector
		for i, part := range strings.Split(selector, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}

			col := strings.Index(raw, part) + 1
			resolved := resolveParent(part, stack)
			for _, class := range ExtractClassSelectors(resolved) {
				out = append(out, ClassOccurrence{
					Class:  class,
					Line:   lineIdx + 1,
					Column: col,
				})
			}

			if i == 0 {
				next = resolved
			}
		}
		stack = append(stack, next)
	}

	return out
}

// looksLikeSelectorOpen reports whether a trimmed line has the shape of a
// selector opening rather than a declaration or at-rule.
func looksLikeSelectorOpen(line string) bool {
	if strings.HasPrefix(line, "@") {
		return false
	}
	// "color: red;" is a declaration; "&:hover {" is a selector. A colon
	// only disqualifies the line when it isn't a pseudo-class reference.
	if strings.Contains(line, ":") && !strings.Contains(line, "&:") && !strings.Contains(line, " :") {
		if !strings.HasSuffix(line, "{") {
			return false
		}
	}
	if strings.Contains(line, ";") {
		return false
	}
	return selectorOpenRe.MatchString(line)
}

// resolveParent concatenates a leading "&" with the nearest enclosing
// selector on the stack. A selector without "&" is returned unchanged.
func resolveParent(selector string, stack []string) string {
	if !strings.HasPrefix(selector, "&") {
		return selector
	}
	if len(stack) == 0 {
		return strings.TrimPrefix(selector, "&")
	}
	return stack[len(stack)-1] + strings.TrimPrefix(selector, "&")
}
