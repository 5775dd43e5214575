package classlint

import (
	"fmt"
	"io"
	"sort"
)

// Reporter formats scan results for a terminal.
type Reporter struct {
	w               io.Writer
	useColors       bool
	printLines      bool
	printLinterName bool
}

// NewReporter creates a reporter for the given scan configuration.
func NewReporter(w io.Writer, cfg ScanConfig) *Reporter {
	return &Reporter{
		w:               w,
		useColors:       shouldUseColors(cfg),
		printLines:      cfg.PrintIssuedLines,
		printLinterName: cfg.PrintLinterName,
	}
}

// UseColors returns whether colors are enabled.
func (r *Reporter) UseColors() bool {
	return r.useColors
}

// PrintIssues outputs issues in golangci-lint format, sorted by file, line,
// then column.
func (r *Reporter) PrintIssues(issues []Issue) {
	sorted := make([]Issue, len(issues))
	copy(sorted, issues)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Pos.Filename != sorted[j].Pos.Filename {
			return sorted[i].Pos.Filename < sorted[j].Pos.Filename
		}
		if sorted[i].Pos.Line != sorted[j].Pos.Line {
			return sorted[i].Pos.Line < sorted[j].Pos.Line
		}
		return sorted[i].Pos.Column < sorted[j].Pos.Column
	})

	for _, issue := range sorted {
		r.printIssue(issue)
	}
}

// printIssue formats a single issue: file:line:col: message (linter)
func (r *Reporter) printIssue(issue Issue) {
	location := fmt.Sprintf("%s:%d:%d:", issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column)

	linterSuffix := ""
	if r.printLinterName {
		linterSuffix = fmt.Sprintf(" (%s)", issue.FromLinter)
	}

	fmt.Fprintf(r.w, "%s %s%s\n",
		RenderStyle(StyleCyan, location, r.useColors),
		issue.Text,
		RenderStyle(StyleGray, linterSuffix, r.useColors))

	if r.printLines && len(issue.SourceLines) > 0 {
		for _, line := range issue.SourceLines {
			fmt.Fprintf(r.w, "\t%s\n", line)
		}
	}
}

// PrintSummary outputs the scan totals after the issue list.
func (r *Reporter) PrintSummary(result *ScanResult) {
	fmt.Fprintln(r.w, "")

	if readErrs := result.Errs(); len(readErrs) > 0 {
		for _, err := range readErrs {
			fmt.Fprintf(r.w, "%s %v\n", RenderStyle(StyleYellow, "warning:", r.useColors), err)
		}
		fmt.Fprintln(r.w, "")
	}

	if !result.HasIssues() {
		fmt.Fprintf(r.w, "%s %s checked in %s, no issues\n",
			RenderStyle(StyleGreen, "ok:", r.useColors),
			pluralizeCount(result.Stats.TokensChecked, "class token", "class tokens"),
			pluralizeCount(result.Stats.FilesScanned, "file", "files"))
		return
	}

	fmt.Fprintf(r.w, "%s in %s (%s checked, %s scanned)\n",
		RenderStyle(StyleRed, pluralizeCount(len(result.Issues), "issue", "issues"), r.useColors),
		pluralizeCount(countIssueFiles(result.Issues), "file", "files"),
		pluralizeCount(result.Stats.TokensChecked, "token", "tokens"),
		pluralizeCount(result.Stats.FilesScanned, "file", "files"))
}

// countIssueFiles counts the distinct files that produced issues.
func countIssueFiles(issues []Issue) int {
	files := make(map[string]struct{})
	for _, issue := range issues {
		files[issue.Pos.Filename] = struct{}{}
	}
	return len(files)
}

// pluralizeCount returns a formatted string with count and singular/plural
// form.
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
