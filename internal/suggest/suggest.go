package suggest

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/NishaKushwah2004/AccessWAI/internal/report"
	"github.com/NishaKushwah2004/AccessWAI/internal/types"
)

// Strategy identifies which path produced a narrative.
type Strategy string

const (
	// StrategyAIBacked means the narrative came from the external
	// text-generation service verbatim.
	StrategyAIBacked Strategy = "ai"
	// StrategyDeterministic means the narrative came from the pure
	// fallback generator.
	StrategyDeterministic Strategy = "deterministic"
)

// Completer is the external text-generation capability. It is passed in
// explicitly so tests can substitute a stub without global setup.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

const (
	defaultTimeout = 30 * time.Second

	// maxSampleIssues caps how many full issues are embedded in the prompt.
	maxSampleIssues = 6
	// maxPriorityIssues caps the fallback's priority list.
	maxPriorityIssues = 3
)

// Generator produces the recommendation narrative for an issue list.
type Generator struct {
	completer Completer // nil when no AI capability is configured
	timeout   time.Duration
}

// NewGenerator creates a generator. A nil completer selects the
// deterministic fallback without attempting any call.
func NewGenerator(completer Completer) *Generator {
	return &Generator{
		completer: completer,
		timeout:   defaultTimeout,
	}
}

// Generate returns a non-empty narrative and the strategy that produced
// it. It never returns an error: every failure of the AI path (missing
// capability, network, timeout, empty response) resolves to the fallback.
func (g *Generator) Generate(ctx context.Context, issues []types.Issue, summary types.Summary) (string, Strategy) {
	if g.completer == nil {
		return Fallback(issues), StrategyDeterministic
	}

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	text, err := g.completer.Complete(callCtx, BuildPrompt(issues, summary))
	if err != nil || strings.TrimSpace(text) == "" {
		return Fallback(issues), StrategyDeterministic
	}

	return text, StrategyAIBacked
}

// BuildPrompt assembles the instruction sent to the AI service: severity
// counts, the distinct issue types present, and up to six sample issues.
func BuildPrompt(issues []types.Issue, summary types.Summary) string {
	var b strings.Builder

	b.WriteString("You are a web accessibility expert reviewing automated WCAG 2.1 scan results.\n\n")
	fmt.Fprintf(&b, "Total issues: %d\n", len(issues))
	fmt.Fprintf(&b, "Critical: %d, High: %d, Medium: %d, Low: %d\n\n", summary.Critical, summary.High, summary.Medium, summary.Low)

	b.WriteString("Issue types found:\n")
	for _, t := range distinctTypes(issues) {
		fmt.Fprintf(&b, "- %s\n", t)
	}

	samples := issues
	if len(samples) > maxSampleIssues {
		samples = samples[:maxSampleIssues]
	}
	b.WriteString("\nSample issues:\n")
	for _, issue := range samples {
		// Issues marshal cleanly; an encoding failure here is impossible
		// for plain string/int fields.
		data, _ := json.Marshal(issue)
		b.Write(data)
		b.WriteString("\n")
	}

	b.WriteString(`
Based on these results, provide:
1. An overall assessment of the project's accessibility health
2. The top 3 blockers to address first
3. Quick fixes that can be applied immediately
4. A long-term accessibility strategy
5. The WCAG 2.1 principles most affected
`)

	return b.String()
}

// distinctTypes returns the issue types present, in first-appearance order.
func distinctTypes(issues []types.Issue) []string {
	seen := make(map[string]bool)
	var out []string
	for _, issue := range issues {
		if !seen[issue.Type] {
			seen[issue.Type] = true
			out = append(out, issue.Type)
		}
	}
	return out
}

// Fallback is the deterministic narrative generator: a pure function of
// the issue list, byte-identical across runs for identical input.
func Fallback(issues []types.Issue) string {
	summary := report.Summarize(issues)

	var b strings.Builder
	b.WriteString(assessment(summary))
	b.WriteString("\n")

	if priority := priorityIssues(issues); len(priority) > 0 {
		b.WriteString("\nPriority Issues:\n")
		for i, issue := range priority {
			fmt.Fprintf(&b, "%d. [%s] %s (%s:%d)\n   %s\n   Fix: %s\n",
				i+1, issue.Severity, issue.Type, issue.File, issue.Line, issue.Description, issue.Suggestion)
		}
	}

	if wins := quickWins(issues); len(wins) > 0 {
		b.WriteString("\nQuick Wins:\n")
		for _, win := range wins {
			fmt.Fprintf(&b, "- %s\n", win)
		}
	}

	b.WriteString(`
Long-Term Recommendations:
- Adopt semantic HTML elements before reaching for ARIA attributes
- Add accessibility linting to the build pipeline so regressions fail fast
- Test with a screen reader and keyboard-only navigation on every release
- Schedule a manual audit against WCAG 2.1 AA once automated findings are resolved

Resources:
- WCAG 2.1 quick reference: https://www.w3.org/WAI/WCAG21/quickref/
- WebAIM tutorials: https://webaim.org/articles/
- The a11y project checklist: https://www.a11yproject.com/checklist/
`)

	return b.String()
}

// assessment selects the overall-health line. Decision order is fixed:
// no issues, then critical presence, then high, then everything else.
func assessment(summary types.Summary) string {
	switch {
	case summary.Total() == 0:
		return "Excellent! No accessibility issues were detected. Keep up the inclusive design work."
	case summary.Critical > 0:
		return fmt.Sprintf("Urgent attention needed: %d critical issue(s) are blocking assistive-technology users right now.", summary.Critical)
	case summary.High > 0:
		return fmt.Sprintf("Moderate accessibility problems found: %d high-severity issue(s) significantly degrade the experience for some users.", summary.High)
	default:
		return "The project is in reasonable shape; the remaining findings are minor improvements worth scheduling."
	}
}

// priorityIssues picks up to three issues, criticals first in scan order,
// then highs.
func priorityIssues(issues []types.Issue) []types.Issue {
	var priority []types.Issue
	for _, severity := range []types.Severity{types.SeverityCritical, types.SeverityHigh} {
		for _, issue := range issues {
			if issue.Severity == severity {
				priority = append(priority, issue)
				if len(priority) == maxPriorityIssues {
					return priority
				}
			}
		}
	}
	return priority
}

// quickWins lists remediation one-liners gated on the issue types present.
func quickWins(issues []types.Issue) []string {
	present := make(map[string]bool)
	for _, issue := range issues {
		present[issue.Type] = true
	}

	var wins []string
	if present["Missing Alt Text"] {
		wins = append(wins, "Add alt attributes to every <img>; describe the content, not the file name")
	}
	if present["Missing Form Label"] {
		wins = append(wins, "Pair each form input with a <label> or an aria-label")
	}
	if present["Missing Language Attribute"] {
		wins = append(wins, "Declare the page language on the <html> element")
	}
	if present["Button Without Text"] {
		wins = append(wins, "Give icon-only buttons an aria-label so their purpose is announced")
	}
	return wins
}
