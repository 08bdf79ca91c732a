package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validIssue() Issue {
	return NewIssue(
		"#[deny(unused_io_amount)] on by default",
		"handle written amount returned",
		[]string{"Bug Risk"},
		Location{
			Path: "tests/integration.rs",
			Positions: Positions{
				Begin: Position{Line: 237, Column: 5},
				End:   Position{Line: 239, Column: 18},
			},
		},
		SeverityCritical,
	)
}

func TestSeverity_MarshalText(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{SeverityInfo, "info"},
		{SeverityMinor, "minor"},
		{SeverityMajor, "major"},
		{SeverityCritical, "critical"},
		{SeverityBlocker, "blocker"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			text, err := tt.severity.MarshalText()
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(text))
			assert.Equal(t, tt.want, tt.severity.String())

			var back Severity
			require.NoError(t, back.UnmarshalText(text))
			assert.Equal(t, tt.severity, back)
		})
	}
}

func TestSeverity_Unknown(t *testing.T) {
	_, err := Severity(42).MarshalText()
	require.Error(t, err)
	assert.False(t, Severity(42).IsValid())

	var s Severity
	require.Error(t, s.UnmarshalText([]byte("Critical")))
}

func TestIssue_JSONShape(t *testing.T) {
	data, err := json.Marshal(validIssue())
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"type": "issue",
		"check_name": "#[deny(unused_io_amount)] on by default",
		"description": "handle written amount returned",
		"categories": ["Bug Risk"],
		"location": {
			"path": "tests/integration.rs",
			"positions": {
				"begin": {"line": 237, "column": 5},
				"end": {"line": 239, "column": 18}
			}
		},
		"severity": "critical"
	}`, string(data))
}

func TestIssue_RoundTrip(t *testing.T) {
	issue := validIssue()

	data, err := json.Marshal(issue)
	require.NoError(t, err)

	var back Issue
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, issue, back)
}

func TestIssue_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Issue)
		wantErr bool
	}{
		{"valid", func(*Issue) {}, false},
		{"wrong type", func(i *Issue) { i.Type = "finding" }, true},
		{"empty check name", func(i *Issue) { i.CheckName = "" }, true},
		{"empty description", func(i *Issue) { i.Description = "" }, true},
		{"no categories", func(i *Issue) { i.Categories = nil }, true},
		{"empty category", func(i *Issue) { i.Categories = []string{""} }, true},
		{"empty path", func(i *Issue) { i.Location.Path = "" }, true},
		{"zero line", func(i *Issue) { i.Location.Positions.Begin.Line = 0 }, true},
		{"zero column", func(i *Issue) { i.Location.Positions.End.Column = 0 }, true},
		{"unknown severity", func(i *Issue) { i.Severity = Severity(9) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issue := validIssue()
			tt.mutate(&issue)

			err := issue.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestDefaultEngineConfig(t *testing.T) {
	cfg := DefaultEngineConfig()
	assert.Equal(t, IncludePaths{"/code-copy/"}, cfg.IncludePaths)
	assert.False(t, cfg.Debug)
	assert.False(t, cfg.SkipMalformed)
	assert.Empty(t, cfg.LogFile)
}
