package domain

import (
	"fmt"

	m "github.com/codeclimate-community/codeclimate-clippy/internal/model"
)

const (
	// CategoryBugRisk is assigned to critical and blocker issues.
	CategoryBugRisk = "Bug Risk"
	// CategoryClarity is assigned to every other issue, with CategoryPerformance.
	CategoryClarity = "Clarity"
	// CategoryPerformance is assigned to every other issue, after CategoryClarity.
	CategoryPerformance = "Performance"
)

var levelSeverities = map[string]m.Severity{
	"note":                           m.SeverityInfo,
	"help":                           m.SeverityMinor,
	"warning":                        m.SeverityMajor,
	"error":                          m.SeverityCritical,
	"error: internal compiler error": m.SeverityBlocker,
}

// SeverityFromLevel maps a clippy level string to a Code Climate severity.
func SeverityFromLevel(level string) (m.Severity, error) {
	severity, ok := levelSeverities[level]
	if !ok {
		return 0, fmt.Errorf("%w: %q", m.ErrUnknownSeverity, level)
	}

	return severity, nil
}

// CategoriesFor returns the categories of an issue with the given severity.
func CategoriesFor(severity m.Severity) []string {
	switch severity {
	case m.SeverityCritical, m.SeverityBlocker:
		return []string{CategoryBugRisk}
	default:
		return []string{CategoryClarity, CategoryPerformance}
	}
}
