package classlint

import lib "github.com/yacobolo/classlint"

// LinterName is reported in the FromLinter field of every issue.
const LinterName = "classlint"

// Issue represents a single naming violation in golangci-lint format, so
// existing issue consumers (editors, CI annotators) can ingest the output
// without a custom schema.
type Issue struct {
	FromLinter  string   `json:"FromLinter"`
	Text        string   `json:"Text"`
	Severity    string   `json:"Severity"`
	SourceLines []string `json:"SourceLines"`
	Pos         IssuePos `json:"Pos"`
}

// IssuePos specifies the exact location of an issue.
type IssuePos struct {
	Filename string `json:"Filename"`
	Line     int    `json:"Line"`
	Column   int    `json:"Column"` // 1-based, exact start of the offending token
}

// Issue severity constants.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = ""
)

// ScanConfig holds everything a batch scan needs.
type ScanConfig struct {
	// Root is the directory walked when Includes is empty. Defaults to ".".
	Root string

	// Includes is an optional list of doublestar glob patterns. When set,
	// discovery uses the globs instead of walking Root.
	Includes []string

	// Engine is the compiled classification policy applied to every token.
	// nil means defaults.
	Engine *lib.Config

	// Workers bounds scan concurrency. Zero or negative means one worker
	// per CPU.
	Workers int

	// UseColors forces colored output regardless of TTY detection.
	UseColors bool

	// PrintIssuedLines includes the offending source line under each issue.
	PrintIssuedLines bool

	// PrintLinterName appends "(classlint)" to each issue line.
	PrintLinterName bool
}

// ScanStats tracks file discovery and checking statistics.
type ScanStats struct {
	FilesDiscovered int `json:"files_discovered"`
	FilesScanned    int `json:"files_scanned"`
	FilesSkipped    int `json:"files_skipped"`
	TokensChecked   int `json:"tokens_checked"`
	InvalidTokens   int `json:"invalid_tokens"`
}

// FileReport is the outcome of checking a single file. A file that could
// not be read carries Err and no issues; one bad file never aborts the scan.
type FileReport struct {
	Path   string
	Tokens int
	Issues []Issue
	Err    error
}

// ScanResult aggregates a whole batch run. Files appear in discovery order
// regardless of which worker checked them.
type ScanResult struct {
	Files  []FileReport
	Issues []Issue
	Stats  ScanStats
}

// HasIssues reports whether any file produced a violation.
func (r *ScanResult) HasIssues() bool {
	return len(r.Issues) > 0
}

// Errs returns the per-file read errors, in file order.
func (r *ScanResult) Errs() []error {
	var errs []error
	for _, f := range r.Files {
		if f.Err != nil {
			errs = append(errs, f.Err)
		}
	}
	return errs
}

// OutputFormat represents the reporter output format.
type OutputFormat string

const (
	// OutputText prints issues in golangci-lint style (CI-friendly).
	OutputText OutputFormat = "text"
	// OutputJSON exports structured data for tooling integration.
	OutputJSON OutputFormat = "json"
)
