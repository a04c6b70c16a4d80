package scanner

import (
	"bufio"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/NishaKushwah2004/AccessWAI/internal/rules"
	"github.com/NishaKushwah2004/AccessWAI/internal/types"
)

// scanConcurrency bounds how many files are scanned at once. Files share
// no mutable state, so per-file scanning parallelizes safely.
const scanConcurrency = 4

// Scanner applies the rule catalog to source files
type Scanner struct {
	catalog *rules.Catalog
}

// New creates a scanner backed by the given catalog.
func New(catalog *rules.Catalog) *Scanner {
	return &Scanner{catalog: catalog}
}

// Scan evaluates every catalog rule against every line of every file.
// Output ordering is deterministic: file order as supplied, then ascending
// line number, then catalog registration order. A file whose content
// cannot be decoded is skipped; the rest of the run continues.
func (s *Scanner) Scan(files []types.SourceFile) []types.Issue {
	perFile := make([][]types.Issue, len(files))

	var g errgroup.Group
	g.SetLimit(scanConcurrency)
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			perFile[i] = s.scanFile(file)
			return nil
		})
	}
	// scanFile never errors; the group is used only to bound and join.
	_ = g.Wait()

	var issues []types.Issue
	for _, fileIssues := range perFile {
		issues = append(issues, fileIssues...)
	}
	return issues
}

// scanFile runs the catalog over one file's lines.
func (s *Scanner) scanFile(file types.SourceFile) []types.Issue {
	if !utf8.ValidString(file.Content) {
		return nil
	}

	lines, err := splitLines(file.Content)
	if err != nil {
		// Unsplittable content is treated like undecodable content:
		// surface nothing for this entry rather than a partial result.
		return nil
	}
	var issues []types.Issue

	for i, line := range lines {
		lineNum := i + 1
		for _, rule := range s.catalog.Rules() {
			if rule.Disabled {
				continue
			}

			ctx := rules.Context{LineNumber: lineNum}
			if rule.ContextWindow > 0 {
				ctx.Window = window(lines, i, rule.ContextWindow)
			}

			if rule.Match(line, ctx) {
				issues = append(issues, types.Issue{
					Severity:    rule.Severity,
					Type:        rule.Type,
					File:        file.Name,
					Line:        lineNum,
					Description: rule.Description,
					Suggestion:  rule.Suggestion,
					Code:        strings.TrimSpace(line),
				})
			}
		}
	}

	return issues
}

// splitLines splits content into lines, preserving empty lines so that
// line numbers stay 1-indexed against the original file. A line exceeding
// the buffer limit (minified bundles) fails the whole split so the caller
// can skip the entry instead of scanning a truncated file.
func splitLines(content string) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(strings.NewReader(content))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// window returns the bounded slice of lines centered on index i, covering
// up to n lines on each side.
func window(lines []string, i, n int) []string {
	lo := i - n
	if lo < 0 {
		lo = 0
	}
	hi := i + n + 1
	if hi > len(lines) {
		hi = len(lines)
	}
	return lines[lo:hi]
}
