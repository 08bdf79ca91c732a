package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	m "github.com/codeclimate-community/codeclimate-clippy/internal/model"
)

// DecodeRecord decodes one JSON value of the linter output. It reports false
// for values that are not objects or have no "message" key; those carry no
// diagnostic and are not errors.
func DecodeRecord(raw json.RawMessage) (m.Record, bool, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return m.Record{}, false, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return m.Record{}, false, nil
	}

	if _, ok := fields["message"]; !ok {
		return m.Record{}, false, nil
	}

	var record m.Record
	if err := json.Unmarshal(trimmed, &record); err != nil {
		return m.Record{}, true, fmt.Errorf("%w: %w", m.ErrMalformedRecord, err)
	}

	return record, true, nil
}

// ParseIssue converts a compiler-message record into an Issue.
func ParseIssue(record m.Record) (m.Issue, error) {
	diagnostic, err := decodeDiagnostic(record)
	if err != nil {
		return m.Issue{}, err
	}

	checkName, err := parseCheckName(diagnostic)
	if err != nil {
		return m.Issue{}, err
	}

	description, err := parseDescription(diagnostic)
	if err != nil {
		return m.Issue{}, err
	}

	severity, err := parseSeverity(diagnostic)
	if err != nil {
		return m.Issue{}, err
	}

	location, err := parseLocation(record, diagnostic)
	if err != nil {
		return m.Issue{}, err
	}

	issue := m.NewIssue(checkName, description, CategoriesFor(severity), location, severity)
	if err := issue.Validate(); err != nil {
		return m.Issue{}, fmt.Errorf("%w: %w", m.ErrMalformedRecord, err)
	}

	return issue, nil
}

func decodeDiagnostic(record m.Record) (m.Diagnostic, error) {
	var diagnostic m.Diagnostic

	if len(record.Message) == 0 {
		return diagnostic, fmt.Errorf("%w: missing message", m.ErrMalformedRecord)
	}

	if err := json.Unmarshal(record.Message, &diagnostic); err != nil {
		return diagnostic, fmt.Errorf("%w: message: %w", m.ErrMalformedRecord, err)
	}

	return diagnostic, nil
}

// parseCheckName takes the check name from the first child message, where
// clippy puts the lint attribute (e.g. "#[deny(unused_io_amount)] on by default").
func parseCheckName(diagnostic m.Diagnostic) (string, error) {
	if len(diagnostic.Children) == 0 {
		return "", fmt.Errorf("%w: no children to take the check name from", m.ErrMalformedRecord)
	}

	return childMessage(diagnostic, 0)
}

func parseDescription(diagnostic m.Diagnostic) (string, error) {
	if diagnostic.Message == nil {
		return "", fmt.Errorf("%w: missing message.message", m.ErrMalformedRecord)
	}

	description := *diagnostic.Message

	if len(diagnostic.Children) >= 2 {
		tail, err := childMessage(diagnostic, 1)
		if err != nil {
			return "", err
		}

		description += ", " + tail
	}

	return description, nil
}

func childMessage(diagnostic m.Diagnostic, index int) (string, error) {
	var child m.DiagnosticChild
	if err := json.Unmarshal(diagnostic.Children[index], &child); err != nil {
		return "", fmt.Errorf("%w: children[%d]: %w", m.ErrMalformedRecord, index, err)
	}

	if child.Message == nil {
		return "", fmt.Errorf("%w: children[%d] has no message", m.ErrMalformedRecord, index)
	}

	return *child.Message, nil
}

func parseSeverity(diagnostic m.Diagnostic) (m.Severity, error) {
	if diagnostic.Level == nil {
		return 0, fmt.Errorf("%w: missing level", m.ErrMalformedRecord)
	}

	return SeverityFromLevel(*diagnostic.Level)
}

func parseLocation(record m.Record, diagnostic m.Diagnostic) (m.Location, error) {
	srcPath, err := sourcePath(record)
	if err != nil {
		return m.Location{}, err
	}

	if len(diagnostic.Spans) == 0 {
		return m.Location{}, fmt.Errorf("%w: no spans", m.ErrMalformedRecord)
	}

	var span m.DiagnosticSpan
	if err := json.Unmarshal(diagnostic.Spans[0], &span); err != nil {
		return m.Location{}, fmt.Errorf("%w: spans[0]: %w", m.ErrMalformedRecord, err)
	}

	if span.LineStart == nil || span.LineEnd == nil || span.ColumnStart == nil || span.ColumnEnd == nil {
		return m.Location{}, fmt.Errorf("%w: spans[0] is missing a line or column", m.ErrMalformedRecord)
	}

	return m.Location{
		Path: RelativePath(srcPath),
		Positions: m.Positions{
			Begin: m.Position{Line: *span.LineStart, Column: *span.ColumnStart},
			End:   m.Position{Line: *span.LineEnd, Column: *span.ColumnEnd},
		},
	}, nil
}

// RelativePath strips every occurrence of the mount prefix from a linter path.
func RelativePath(srcPath string) string {
	return strings.ReplaceAll(srcPath, m.MountPrefix, "")
}

func sourcePath(record m.Record) (string, error) {
	if record.Target == nil || record.Target.SrcPath == nil {
		return "", fmt.Errorf("%w: missing target.src_path", m.ErrMalformedRecord)
	}

	return *record.Target.SrcPath, nil
}
