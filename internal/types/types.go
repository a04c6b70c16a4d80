package types

// Severity ranks remediation urgency for an accessibility issue.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// Valid reports whether s is one of the four known severities.
func (s Severity) Valid() bool {
	switch s {
	case SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow:
		return true
	}
	return false
}

// SourceFile is one input file supplied by the extraction collaborator.
// It is ephemeral: not retained after scanning.
type SourceFile struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// Issue represents a single accessibility finding
type Issue struct {
	Severity    Severity `json:"severity"`
	Type        string   `json:"type"`
	File        string   `json:"file"`
	Line        int      `json:"line"`
	Description string   `json:"description"`
	Suggestion  string   `json:"suggestion"`
	Code        string   `json:"code"`
}

// Summary tallies issues by severity. The counts always add up to the
// length of the issue list they were derived from.
type Summary struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
}

// Total returns the number of issues the summary covers.
func (s Summary) Total() int {
	return s.Critical + s.High + s.Medium + s.Low
}

// AnalysisResult is the complete output of one analysis run, handed to
// the persistence collaborator unmodified.
type AnalysisResult struct {
	FilesAnalyzed      int     `json:"filesAnalyzed"`
	Issues             []Issue `json:"issues"`
	Summary            Summary `json:"summary"`
	AccessibilityScore int     `json:"accessibilityScore"`
	AISuggestions      string  `json:"aiSuggestions"`
}
