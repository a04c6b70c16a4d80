package analyzer

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/NishaKushwah2004/AccessWAI/internal/config"
	"github.com/NishaKushwah2004/AccessWAI/internal/report"
	"github.com/NishaKushwah2004/AccessWAI/internal/rules"
	"github.com/NishaKushwah2004/AccessWAI/internal/scanner"
	"github.com/NishaKushwah2004/AccessWAI/internal/suggest"
	"github.com/NishaKushwah2004/AccessWAI/internal/types"
)

// ErrNoInputFiles is returned when the supplied file set is empty or none
// of the entries carry a supported extension. No AnalysisResult is
// produced in that case.
var ErrNoInputFiles = errors.New("no source files with supported extensions were provided")

// supportedExtensions are the textual web source types the catalog
// understands. Matching is case-insensitive.
var supportedExtensions = map[string]bool{
	".html": true,
	".jsx":  true,
	".js":   true,
	".tsx":  true,
	".ts":   true,
}

// SupportedFile reports whether the file name carries a supported extension.
func SupportedFile(name string) bool {
	return supportedExtensions[strings.ToLower(filepath.Ext(name))]
}

// Analyzer runs the full pipeline: scan, aggregate, score, suggest.
type Analyzer struct {
	scanner   *scanner.Scanner
	generator *suggest.Generator
}

// New creates an analyzer. The rule configuration at configPath (optional)
// is applied to the catalog before scanning. A nil completer selects the
// deterministic suggestion fallback.
func New(configPath string, completer suggest.Completer) (*Analyzer, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	catalog := rules.NewCatalog()
	if err := catalog.ApplyConfig(cfg); err != nil {
		return nil, err
	}

	return &Analyzer{
		scanner:   scanner.New(catalog),
		generator: suggest.NewGenerator(completer),
	}, nil
}

// Analyze runs one request-scoped analysis over the supplied files and
// returns a complete result, or ErrNoInputFiles. It never returns a
// partial result.
func (a *Analyzer) Analyze(ctx context.Context, files []types.SourceFile) (*types.AnalysisResult, error) {
	eligible := make([]types.SourceFile, 0, len(files))
	for _, file := range files {
		if SupportedFile(file.Name) {
			eligible = append(eligible, file)
		}
	}
	if len(eligible) == 0 {
		return nil, ErrNoInputFiles
	}

	issues := a.scanner.Scan(eligible)
	if issues == nil {
		issues = []types.Issue{}
	}

	summary := report.Summarize(issues)
	narrative, _ := a.generator.Generate(ctx, issues, summary)

	return &types.AnalysisResult{
		FilesAnalyzed:      len(eligible),
		Issues:             issues,
		Summary:            summary,
		AccessibilityScore: report.Score(summary),
		AISuggestions:      narrative,
	}, nil
}
