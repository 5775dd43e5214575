package classlint

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() *ScanResult {
	issues := []Issue{
		{
			FromLinter:  LinterName,
			Text:        `"Bad__One" is not a valid class name`,
			Severity:    SeverityError,
			SourceLines: []string{`<div class="Bad__One">`},
			Pos:         IssuePos{Filename: "b.html", Line: 3, Column: 13},
		},
		{
			FromLinter: LinterName,
			Text:       `"Worse___Two" is not a valid class name`,
			Severity:   SeverityError,
			Pos:        IssuePos{Filename: "a.css", Line: 7, Column: 2},
		},
	}
	return &ScanResult{
		Issues: issues,
		Files: []FileReport{
			{Path: "a.css", Tokens: 4, Issues: issues[1:]},
			{Path: "b.html", Tokens: 3, Issues: issues[:1]},
		},
		Stats: ScanStats{FilesScanned: 2, TokensChecked: 7, InvalidTokens: 2},
	}
}

func TestReporterPrintIssues(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, ScanConfig{PrintIssuedLines: true, PrintLinterName: true})
	// Colors depend on the test environment; force them off for stable output.
	r.useColors = false

	result := sampleResult()
	r.PrintIssues(result.Issues)
	out := buf.String()

	// Sorted by file first: a.css issue precedes b.html.
	assert.Regexp(t, `(?s)a\.css:7:2:.*b\.html:3:13:`, out)
	assert.Contains(t, out, "(classlint)")
	assert.Contains(t, out, `<div class="Bad__One">`)
}

func TestReporterPrintSummary(t *testing.T) {
	t.Run("with issues", func(t *testing.T) {
		var buf bytes.Buffer
		r := NewReporter(&buf, ScanConfig{})
		r.useColors = false

		r.PrintSummary(sampleResult())
		assert.Contains(t, buf.String(), "2 issues in 2 files")
		assert.Contains(t, buf.String(), "7 tokens checked")
	})

	t.Run("clean run", func(t *testing.T) {
		var buf bytes.Buffer
		r := NewReporter(&buf, ScanConfig{})
		r.useColors = false

		r.PrintSummary(&ScanResult{Stats: ScanStats{FilesScanned: 5, TokensChecked: 12}})
		assert.Contains(t, buf.String(), "no issues")
		assert.Contains(t, buf.String(), "12 class tokens")
	})
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleResult()))

	var out JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	assert.Equal(t, "1.0", out.Version)
	assert.NotEmpty(t, out.Timestamp)
	assert.Equal(t, 2, out.Summary.TotalIssues)
	assert.Equal(t, 2, out.Summary.FilesScanned)
	require.Len(t, out.Issues, 2)
	assert.Equal(t, "b.html", out.Issues[0].File)
	assert.Equal(t, 3, out.Issues[0].Line)
	assert.Equal(t, LinterName, out.Issues[0].Linter)
	assert.Equal(t, `<div class="Bad__One">`, out.Issues[0].Source)
}

func TestRenderStyle(t *testing.T) {
	assert.Equal(t, "plain", RenderStyle(StyleRed, "plain", false))
}
