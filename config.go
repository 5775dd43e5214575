package classlint

import (
	"fmt"
	"regexp"
)

// Config holds classification policy. The zero value is the default policy:
// no custom utilities, unknown tokens fail, utilities recognized.
//
// A Config is never mutated by the engine. Configs carrying CustomUtilities
// must be built with CompileConfig so the patterns are validated up front;
// a compiled Config is safe for unrestricted concurrent use.
type Config struct {
	// CustomUtilities is an ordered list of additional anchored regexp
	// sources that extend the builtin utility catalog. A token matching any
	// builtin or custom pattern classifies as a utility.
	CustomUtilities []string

	// AllowUnknown downgrades "no grammar matched" from a failure to a
	// passing, untyped result.
	AllowUnknown bool

	// StrictBem treats utility matches as non-matches: utility-shaped
	// tokens are rejected outright, without falling back to the block
	// grammar.
	StrictBem bool

	custom []*regexp.Regexp
}

// PatternError reports a custom utility source that failed to compile.
type PatternError struct {
	Source string // the offending pattern source
	Err    error  // the underlying regexp error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid custom utility pattern %q: %v", e.Source, e.Err)
}

func (e *PatternError) Unwrap() error { return e.Err }

// CompileConfig validates a configuration and eagerly compiles its custom
// utility patterns. A malformed source fails immediately with a
// *PatternError identifying it; nothing is silently skipped.
func CompileConfig(cfg Config) (*Config, error) {
	compiled := make([]*regexp.Regexp, 0, len(cfg.CustomUtilities))
	for _, src := range cfg.CustomUtilities {
		re, err := regexp.Compile(src)
		if err != nil {
			return nil, &PatternError{Source: src, Err: err}
		}
		compiled = append(compiled, re)
	}

	cfg.custom = compiled
	return &cfg, nil
}

// matchesUtility reports whether the token matches the builtin catalog or
// any custom pattern (logical OR across the whole set).
func (c *Config) matchesUtility(token string) bool {
	if matchesBuiltinUtility(token) {
		return true
	}
	if c == nil {
		return false
	}

	// Custom patterns take effect only through CompileConfig. A hand-built
	// Config has no compiled set, so its CustomUtilities are inert rather
	// than compiled (and possibly half-ignored) mid-classification.
	for _, re := range c.custom {
		if re.MatchString(token) {
			return true
		}
	}
	return false
}

// allowUnknown reports the AllowUnknown policy, treating nil as defaults.
func (c *Config) allowUnknown() bool { return c != nil && c.AllowUnknown }

// strictBem reports the StrictBem policy, treating nil as defaults.
func (c *Config) strictBem() bool { return c != nil && c.StrictBem }
