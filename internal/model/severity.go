package model

import "fmt"

// Severity is the Code Climate severity of an issue.
type Severity int

const (
	// SeverityInfo is used for linter notes.
	SeverityInfo Severity = iota
	// SeverityMinor is used for linter help messages.
	SeverityMinor
	// SeverityMajor is used for warnings.
	SeverityMajor
	// SeverityCritical is used for errors.
	SeverityCritical
	// SeverityBlocker is used for internal compiler errors.
	SeverityBlocker
)

var severityNames = map[Severity]string{
	SeverityInfo:     "info",
	SeverityMinor:    "minor",
	SeverityMajor:    "major",
	SeverityCritical: "critical",
	SeverityBlocker:  "blocker",
}

// IsValid reports whether s is one of the known severities.
func (s Severity) IsValid() bool {
	_, ok := severityNames[s]
	return ok
}

func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}

	return fmt.Sprintf("Severity(%d)", int(s))
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	name, ok := severityNames[s]
	if !ok {
		return nil, fmt.Errorf("unknown severity %d", int(s))
	}

	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	for severity, name := range severityNames {
		if name == string(text) {
			*s = severity
			return nil
		}
	}

	return fmt.Errorf("unknown severity %q", string(text))
}
