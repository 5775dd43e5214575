// Package classlint classifies and validates CSS class names against the
// HCNC naming grammar (block / element / nested element / modifier / state /
// utility) and extracts class tokens from markup, selectors, and SCSS.
//
// # Classification
//
// Classify a single token:
//
//	kind := classlint.GetClassType("card_header", nil) // classlint.KindElement
//
// Validate with configuration:
//
//	cfg, err := classlint.CompileConfig(classlint.Config{StrictBem: true})
//	result := classlint.ValidateClassName("mt-2", cfg)
//	// result.Valid == false: strict mode rejects utility-shaped tokens
//
// # Extraction
//
// Pull candidate tokens out of raw text:
//
//	classlint.ParseClassString("btn btn--primary")          // ["btn", "btn--primary"]
//	classlint.ExtractClassSelectors(".card:hover .card_info") // ["card", "card_info"]
//
// # CLI Tool
//
// classlint also provides a CLI tool. Install with:
//
//	go install github.com/yacobolo/classlint/cmd/classlint@latest
package classlint

// Public API is exported via classify.go, validate.go, and extract.go:
// - GetClassType(token string, cfg *Config) ClassKind
// - ValidateClassName(token string, cfg *Config) ValidationResult
// - ValidateClassString(text string, cfg *Config) []ValidationResult
// - GetInvalidClasses(text string, cfg *Config) []InvalidClass
// - ParseClassString(text string) []string
// - ExtractClassSelectors(selector string) []string
// - ValidateCSSSelector(selector string, cfg *Config) []ValidationResult
// - ExpandScssNesting(text string) []string
