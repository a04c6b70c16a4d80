package cli

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/NishaKushwah2004/AccessWAI/internal/analyzer"
	"github.com/NishaKushwah2004/AccessWAI/internal/config"
	"github.com/NishaKushwah2004/AccessWAI/internal/suggest"
	"github.com/NishaKushwah2004/AccessWAI/internal/types"
)

var severityStyles = map[types.Severity]lipgloss.Style{
	types.SeverityCritical: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	types.SeverityHigh:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	types.SeverityMedium:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	types.SeverityLow:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// NewRootCommand creates and returns the root cobra command
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accesswai [path...]",
		Short: "Pattern-based accessibility scanner for web source files",
		Long: `AccessWAI scans HTML, JSX, JS, TSX and TS files for common
accessibility problems (missing alt text, unlabeled inputs, missing
language attributes, and more), scores the project 0-100, and produces
remediation recommendations.`,
		Args: cobra.ArbitraryArgs,
		RunE: runScan,
	}

	cmd.Flags().StringP("config", "c", "", "Path to rule configuration file (optional)")
	cmd.Flags().BoolP("verbose", "v", false, "Show low-severity issues")
	cmd.Flags().Bool("json", false, "Emit the analysis result as JSON")

	return cmd
}

func runScan(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	asJSON, _ := cmd.Flags().GetBool("json")

	paths := args
	if len(paths) == 0 {
		paths = []string{"."}
	}

	files, err := collectFiles(paths)
	if err != nil {
		return err
	}

	a, err := analyzer.New(configPath, newCompleter())
	if err != nil {
		return err
	}

	result, err := a.Analyze(cmd.Context(), files)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printReport(cmd, result, verbose)
	return nil
}

// newCompleter builds the AI capability when credentials are configured,
// otherwise returns nil so the analyzer uses the deterministic fallback
// without a network attempt.
func newCompleter() suggest.Completer {
	creds := config.AICredentialsFromEnv()
	if !creds.Configured() {
		return nil
	}
	client, err := suggest.NewAzureOpenAIClient(creds)
	if err != nil {
		return nil
	}
	return client
}

// collectFiles reads supported source files from the given paths. A
// directory is walked recursively; explicit file arguments are taken as-is
// if their extension is supported.
func collectFiles(paths []string) ([]types.SourceFile, error) {
	var files []types.SourceFile

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read input path: %w", err)
		}

		if !info.IsDir() {
			if analyzer.SupportedFile(path) {
				data, err := os.ReadFile(path)
				if err != nil {
					return nil, fmt.Errorf("failed to read %s: %w", path, err)
				}
				files = append(files, types.SourceFile{Name: path, Content: string(data)})
			}
			continue
		}

		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !analyzer.SupportedFile(p) {
				return nil
			}
			data, err := os.ReadFile(p)
			if err != nil {
				// Unreadable entries are skipped; the rest of the walk continues.
				return nil
			}
			files = append(files, types.SourceFile{Name: p, Content: string(data)})
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", path, err)
		}
	}

	return files, nil
}

func printReport(cmd *cobra.Command, result *types.AnalysisResult, verbose bool) {
	out := cmd.OutOrStdout()

	for _, issue := range result.Issues {
		// Skip low severity if not verbose
		if !verbose && issue.Severity == types.SeverityLow {
			continue
		}

		label := severityStyles[issue.Severity].Render(string(issue.Severity))
		fmt.Fprintf(out, "[%s] %s: %s\n", label, issue.Type, issue.Description)
		fmt.Fprintf(out, "  %s:%d: %s\n", issue.File, issue.Line, issue.Code)
	}

	fmt.Fprintf(out, "\nFiles analyzed: %d\n", result.FilesAnalyzed)
	fmt.Fprintf(out, "Issues: %d critical, %d high, %d medium, %d low\n",
		result.Summary.Critical, result.Summary.High, result.Summary.Medium, result.Summary.Low)
	fmt.Fprintf(out, "Accessibility score: %d/100\n", result.AccessibilityScore)
	fmt.Fprintf(out, "\n%s\n", result.AISuggestions)
}
