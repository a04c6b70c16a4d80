package report

import (
	"math"

	"github.com/NishaKushwah2004/AccessWAI/internal/types"
)

// Per-severity score deductions.
const (
	criticalWeight = 10.0
	highWeight     = 5.0
	mediumWeight   = 2.0
	lowWeight      = 0.5
)

// Summarize tallies issues by severity. The resulting counts always add
// up to len(issues).
func Summarize(issues []types.Issue) types.Summary {
	var summary types.Summary
	for _, issue := range issues {
		switch issue.Severity {
		case types.SeverityCritical:
			summary.Critical++
		case types.SeverityHigh:
			summary.High++
		case types.SeverityMedium:
			summary.Medium++
		case types.SeverityLow:
			summary.Low++
		}
	}
	return summary
}

// Score derives the 0-100 accessibility score from a summary:
// 100 minus weighted deductions, rounded half away from zero, floored
// at 0. Deductions are non-negative so the score never exceeds 100.
func Score(summary types.Summary) int {
	deduction := criticalWeight*float64(summary.Critical) +
		highWeight*float64(summary.High) +
		mediumWeight*float64(summary.Medium) +
		lowWeight*float64(summary.Low)

	score := int(math.Round(100 - deduction))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
