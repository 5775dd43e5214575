package classlint

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"

	lib "github.com/yacobolo/classlint"
)

// tokenRef is one class token found in a source file, with its location.
type tokenRef struct {
	Token  string
	Line   int
	Column int    // 1-based
	Text   string // full source line for context
}

var (
	// classAttrRe matches class="..." / className='...' attributes in
	// markup and JSX, including the className={"..."} expression form.
	classAttrRe = regexp.MustCompile(`(?:className|class)\s*=\s*\{?\s*["']([^"']*)["']`)

	// htmlClassAttrRe matches only the plain HTML attribute.
	htmlClassAttrRe = regexp.MustCompile(`class\s*=\s*["']([^"']*)["']`)
)

// scanExtensions maps a file extension to its token extractor. Files with
// any other extension are skipped.
var scanExtensions = map[string]func(content string) []tokenRef{
	".js":   extractAttrTokens(classAttrRe),
	".jsx":  extractAttrTokens(classAttrRe),
	".ts":   extractAttrTokens(classAttrRe),
	".tsx":  extractAttrTokens(classAttrRe),
	".html": extractAttrTokens(htmlClassAttrRe),
	".htm":  extractAttrTokens(htmlClassAttrRe),
	".css":  extractCSSTokens,
	".scss": extractScssTokens,
	".sass": extractScssTokens,
}

// Scan discovers files, checks every class token against the configured
// policy, and aggregates the results. Files are checked concurrently by a
// bounded worker pool; results keep discovery order.
func Scan(cfg ScanConfig) (*ScanResult, error) {
	files, stats, err := discoverFiles(cfg)
	if err != nil {
		return nil, err
	}

	reports := make([]FileReport, len(files))

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(files) {
		workers = len(files)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				reports[i] = checkFile(files[i], cfg.Engine)
			}
		}()
	}
	for i := range files {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	result := &ScanResult{Files: reports, Stats: stats}
	for _, rep := range reports {
		result.Stats.TokensChecked += rep.Tokens
		result.Stats.InvalidTokens += len(rep.Issues)
		result.Issues = append(result.Issues, rep.Issues...)
	}
	return result, nil
}

// checkFile extracts the class tokens of one file and validates each
// distinct token. A read failure is recorded on the report, not returned.
func checkFile(path string, engine *lib.Config) FileReport {
	rep := FileReport{Path: path}

	extract, ok := scanExtensions[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return rep
	}

	content, err := os.ReadFile(path)
	if err != nil {
		rep.Err = fmt.Errorf("read %s: %w", path, err)
		return rep
	}

	// Distinct tokens only, first occurrence wins: a token repeated across
	// the file produces one issue at its first location.
	seen := make(map[string]bool)
	for _, ref := range extract(string(content)) {
		if seen[ref.Token] {
			continue
		}
		seen[ref.Token] = true
		rep.Tokens++

		result := lib.ValidateClassName(ref.Token, engine)
		if result.Valid {
			continue
		}

		rep.Issues = append(rep.Issues, Issue{
			FromLinter:  LinterName,
			Text:        result.Message,
			Severity:    SeverityError,
			SourceLines: []string{ref.Text},
			Pos: IssuePos{
				Filename: path,
				Line:     ref.Line,
				Column:   ref.Column,
			},
		})
	}

	return rep
}

// discoverFiles resolves the file set to scan. Globs take priority over the
// directory walk; either way the result is deduplicated, filtered through
// .gitignore, and sorted for deterministic worker input.
func discoverFiles(cfg ScanConfig) ([]string, ScanStats, error) {
	root := cfg.Root
	if root == "" {
		root = "."
	}

	gi := loadGitIgnore(root)

	var stats ScanStats
	seen := make(map[string]bool)
	var files []string

	keep := func(path string) {
		if seen[path] {
			return
		}
		seen[path] = true
		stats.FilesDiscovered++

		if shouldSkipFile(path, gi) {
			stats.FilesSkipped++
			return
		}
		files = append(files, path)
		stats.FilesScanned++
	}

	if len(cfg.Includes) > 0 {
		for _, pattern := range cfg.Includes {
			matches, err := doublestar.FilepathGlob(pattern)
			if err != nil {
				return nil, stats, fmt.Errorf("glob %q: %w", pattern, err)
			}
			for _, match := range matches {
				info, err := os.Stat(match)
				if err != nil || info.IsDir() {
					continue
				}
				keep(match)
			}
		}
	} else {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if skipDir(d.Name(), path, root) {
					return filepath.SkipDir
				}
				return nil
			}
			if _, ok := scanExtensions[strings.ToLower(filepath.Ext(path))]; ok {
				keep(path)
			}
			return nil
		})
		if err != nil {
			return nil, stats, fmt.Errorf("walk %s: %w", root, err)
		}
	}

	sort.Strings(files)
	return files, stats, nil
}

// skipDir excludes hidden directories and dependency trees from the walk.
func skipDir(name, path, root string) bool {
	if path == root {
		return false
	}
	if strings.HasPrefix(name, ".") {
		return true
	}
	return name == "node_modules"
}

// loadGitIgnore loads the root .gitignore. Absence is not an error.
func loadGitIgnore(root string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}
	return gi
}

// shouldSkipFile applies the two filter layers: extension allowlist, then
// .gitignore (relative paths only, so files outside the project are never
// matched against project ignore rules).
func shouldSkipFile(path string, gi *ignore.GitIgnore) bool {
	if _, ok := scanExtensions[strings.ToLower(filepath.Ext(path))]; !ok {
		return true
	}
	if gi != nil && !filepath.IsAbs(path) && gi.MatchesPath(path) {
		return true
	}
	return false
}

// extractAttrTokens builds a line-oriented extractor over a class attribute
// pattern. The captured attribute value is whitespace-split into tokens and
// each token is located back in the line for exact columns. The search
// position advances past each located token, so repeated tokens and tokens
// that prefix an earlier one ("btn" after "btn-lg") get their own columns.
func extractAttrTokens(re *regexp.Regexp) func(content string) []tokenRef {
	return func(content string) []tokenRef {
		var refs []tokenRef
		for lineIdx, line := range strings.Split(content, "\n") {
			for _, match := range re.FindAllStringSubmatchIndex(line, -1) {
				value := line[match[2]:match[3]]
				search := match[2]
				for _, token := range lib.ParseClassString(value) {
					col := search
					if idx := strings.Index(line[search:], token); idx >= 0 {
						col = search + idx
						search = col + len(token)
					}
					refs = append(refs, tokenRef{
						Token:  token,
						Line:   lineIdx + 1,
						Column: col + 1,
						Text:   strings.TrimSpace(line),
					})
				}
			}
		}
		return refs
	}
}

// extractCSSTokens tokenizes a stylesheet and collects every class selector
// (a '.' delimiter followed by an identifier). Class-like text inside
// strings or declarations never tokenizes that way, so no further filtering
// is needed.
func extractCSSTokens(content string) []tokenRef {
	lines := strings.Split(content, "\n")
	lexer := css.NewLexer(parse.NewInputString(content))

	var refs []tokenRef
	offset := 0
	line := 1
	lineStart := 0
	pendingDot := false

	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			break
		}

		if pendingDot && tt == css.IdentToken {
			srcLine := ""
			if line-1 < len(lines) {
				srcLine = strings.TrimSpace(lines[line-1])
			}
			refs = append(refs, tokenRef{
				Token:  string(text),
				Line:   line,
				Column: offset - lineStart + 1,
				Text:   srcLine,
			})
		}
		pendingDot = tt == css.DelimToken && len(text) > 0 && text[0] == '.'

		for i, b := range text {
			if b == '\n' {
				line++
				lineStart = offset + i + 1
			}
		}
		offset += len(text)
	}

	return refs
}

// extractScssTokens expands nested SCSS selectors and maps the resolved
// classes back to their source lines.
func extractScssTokens(content string) []tokenRef {
	lines := strings.Split(content, "\n")

	occs := lib.ExpandScssNestingOccurrences(content)
	refs := make([]tokenRef, 0, len(occs))
	for _, occ := range occs {
		srcLine := ""
		if occ.Line-1 < len(lines) {
			srcLine = strings.TrimSpace(lines[occ.Line-1])
		}
		refs = append(refs, tokenRef{
			Token:  occ.Class,
			Line:   occ.Line,
			Column: occ.Column,
			Text:   srcLine,
		})
	}
	return refs
}
