package classlint

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lib "github.com/yacobolo/classlint"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestExtractAttrTokens(t *testing.T) {
	extract := scanExtensions[".jsx"]

	t.Run("className attribute", func(t *testing.T) {
		refs := extract(`<div className="card isActive">`)
		require.Len(t, refs, 2)
		assert.Equal(t, "card", refs[0].Token)
		assert.Equal(t, 1, refs[0].Line)
		assert.Equal(t, 17, refs[0].Column)
		assert.Equal(t, "isActive", refs[1].Token)
		assert.Equal(t, 22, refs[1].Column)
	})

	t.Run("className expression with string literal", func(t *testing.T) {
		refs := extract(`<div className={"card mt-2"}>`)
		require.Len(t, refs, 2)
		assert.Equal(t, "card", refs[0].Token)
		assert.Equal(t, "mt-2", refs[1].Token)
	})

	t.Run("multiple lines tracked", func(t *testing.T) {
		refs := extract("<div className=\"card\">\n<span class='btn--primary'>")
		require.Len(t, refs, 2)
		assert.Equal(t, 1, refs[0].Line)
		assert.Equal(t, 2, refs[1].Line)
	})

	t.Run("no class attributes", func(t *testing.T) {
		assert.Empty(t, extract(`const x = cardStyles;`))
	})

	t.Run("token prefixing an earlier one gets its own column", func(t *testing.T) {
		refs := extract(`<div className="btn-lg btn">`)
		require.Len(t, refs, 2)
		assert.Equal(t, "btn-lg", refs[0].Token)
		assert.Equal(t, 17, refs[0].Column)
		assert.Equal(t, "btn", refs[1].Token)
		assert.Equal(t, 24, refs[1].Column)
	})

	t.Run("repeated token columns advance", func(t *testing.T) {
		refs := extract(`<div className="card x card">`)
		require.Len(t, refs, 3)
		assert.Equal(t, 17, refs[0].Column)
		assert.Equal(t, "card", refs[2].Token)
		assert.Equal(t, 24, refs[2].Column)
	})
}

func TestExtractHTMLTokens(t *testing.T) {
	extract := scanExtensions[".html"]

	refs := extract(`<div class="card card_header"><p class="isActive"></p></div>`)
	require.Len(t, refs, 3)
	assert.Equal(t, "card", refs[0].Token)
	assert.Equal(t, "card_header", refs[1].Token)
	assert.Equal(t, "isActive", refs[2].Token)

	// className is a JSX-ism, not an HTML attribute.
	assert.Empty(t, extract(`<div className="card">`))
}

func TestExtractCSSTokens(t *testing.T) {
	src := `.card {
  color: red;
}
.card_header:hover,
.btn--primary {
  margin: .5em;
}
`
	refs := extractCSSTokens(src)
	require.Len(t, refs, 3)

	assert.Equal(t, "card", refs[0].Token)
	assert.Equal(t, 1, refs[0].Line)
	assert.Equal(t, 2, refs[0].Column)

	assert.Equal(t, "card_header", refs[1].Token)
	assert.Equal(t, 4, refs[1].Line)

	assert.Equal(t, "btn--primary", refs[2].Token)
	assert.Equal(t, 5, refs[2].Line)
}

func TestExtractScssTokens(t *testing.T) {
	src := `.card {
  &_header {
    font-weight: bold;
  }
}
`
	refs := extractScssTokens(src)
	require.Len(t, refs, 2)
	assert.Equal(t, "card", refs[0].Token)
	assert.Equal(t, 1, refs[0].Line)
	assert.Equal(t, "card_header", refs[1].Token)
	assert.Equal(t, 2, refs[1].Line)
}

func TestCheckFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("reports invalid tokens once each", func(t *testing.T) {
		path := writeFile(t, dir, "page.html",
			`<div class="card Bad__One"><span class="Bad__One"></span></div>`)

		rep := checkFile(path, nil)
		require.NoError(t, rep.Err)
		assert.Equal(t, 2, rep.Tokens) // card and Bad__One, deduplicated
		require.Len(t, rep.Issues, 1)

		issue := rep.Issues[0]
		assert.Equal(t, LinterName, issue.FromLinter)
		assert.Equal(t, SeverityError, issue.Severity)
		assert.Equal(t, path, issue.Pos.Filename)
		assert.Equal(t, 1, issue.Pos.Line)
		assert.Contains(t, issue.Text, "Bad__One")
	})

	t.Run("unreadable file carries error not issues", func(t *testing.T) {
		rep := checkFile(filepath.Join(dir, "missing.css"), nil)
		require.Error(t, rep.Err)
		assert.Empty(t, rep.Issues)
	})

	t.Run("unknown extension is a no-op", func(t *testing.T) {
		path := writeFile(t, dir, "notes.txt", `class="Bad__One"`)
		rep := checkFile(path, nil)
		require.NoError(t, rep.Err)
		assert.Zero(t, rep.Tokens)
	})
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "index.html", `<div class="card isActive"></div>`)
	writeFile(t, dir, "styles/main.css", ".card { color: red; }\n.Bad__One { color: blue; }\n")
	writeFile(t, dir, "app/view.tsx", `<div className="card_header mt-2">`)
	writeFile(t, dir, "node_modules/pkg/x.css", ".Totally__Wrong { }")
	writeFile(t, dir, ".hidden/y.css", ".Also__Wrong { }")
	writeFile(t, dir, "README.md", `class="Not__Scanned"`)

	result, err := Scan(ScanConfig{Root: dir})
	require.NoError(t, err)

	assert.Equal(t, 3, result.Stats.FilesScanned)
	assert.Equal(t, 6, result.Stats.TokensChecked)
	assert.Equal(t, 1, result.Stats.InvalidTokens)
	require.Len(t, result.Issues, 1)
	assert.Contains(t, result.Issues[0].Text, "Bad__One")
	assert.True(t, result.HasIssues())

	// Files are reported in sorted discovery order.
	require.Len(t, result.Files, 3)
	assert.Contains(t, result.Files[0].Path, "view.tsx")
	assert.Contains(t, result.Files[1].Path, "index.html")
	assert.Contains(t, result.Files[2].Path, "main.css")
}

func TestScanWithIncludes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.css", ".card { }")
	writeFile(t, dir, "b.html", `<div class="Bad__One">`)

	result, err := Scan(ScanConfig{
		Root:     dir,
		Includes: []string{filepath.Join(dir, "*.css")},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Stats.FilesScanned)
	assert.False(t, result.HasIssues())
}

func TestScanStrictBemEngine(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "page.html", `<div class="card mt-2">`)

	engine, err := lib.CompileConfig(lib.Config{StrictBem: true})
	require.NoError(t, err)

	result, err := Scan(ScanConfig{Root: dir, Engine: engine})
	require.NoError(t, err)
	require.Len(t, result.Issues, 1)
	assert.Contains(t, result.Issues[0].Text, "mt-2")
}
