package classlint

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput is the structured export schema.
type JSONOutput struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Summary   JSONSummary `json:"summary"`
	Stats     ScanStats   `json:"stats"`
	Issues    []JSONIssue `json:"issues"`
}

// JSONSummary contains high-level counts.
type JSONSummary struct {
	TotalIssues  int `json:"total_issues"`
	FilesScanned int `json:"files_scanned"`
	FileErrors   int `json:"file_errors"`
}

// JSONIssue represents a single issue in flat form.
type JSONIssue struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Linter   string `json:"linter"`
	Source   string `json:"source,omitempty"`
}

// WriteJSON writes the scan result as indented JSON.
func WriteJSON(w io.Writer, result *ScanResult) error {
	output := buildJSONOutput(result)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts a ScanResult to the export schema.
func buildJSONOutput(result *ScanResult) JSONOutput {
	jsonIssues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		jsonIssues[i] = JSONIssue{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Severity: issue.Severity,
			Message:  issue.Text,
			Linter:   issue.FromLinter,
			Source:   source,
		}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:  len(result.Issues),
			FilesScanned: result.Stats.FilesScanned,
			FileErrors:   len(result.Errs()),
		},
		Stats:  result.Stats,
		Issues: jsonIssues,
	}
}
