// Package model defines the data structures exchanged between the linter and the Code Climate engine.
package model

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// IssueType is the constant "type" of every record sent to the engine.
const IssueType = "issue"

// Position is a 1-indexed source coordinate.
type Position struct {
	Line   int64 `json:"line" validate:"min=1"`
	Column int64 `json:"column" validate:"min=1"`
}

// Positions is the span of an issue exactly as the linter reported it.
type Positions struct {
	Begin Position `json:"begin"`
	End   Position `json:"end"`
}

// Location anchors an issue to a project-relative file.
type Location struct {
	Path      string    `json:"path" validate:"required"`
	Positions Positions `json:"positions"`
}

// Issue is one Code Climate issue.
type Issue struct {
	Type        string   `json:"type" validate:"eq=issue"`
	CheckName   string   `json:"check_name" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Categories  []string `json:"categories" validate:"min=1,dive,required"`
	Location    Location `json:"location"`
	Severity    Severity `json:"severity"`
}

// NewIssue builds an Issue with its type already set.
func NewIssue(checkName, description string, categories []string, location Location, severity Severity) Issue {
	return Issue{
		Type:        IssueType,
		CheckName:   checkName,
		Description: description,
		Categories:  categories,
		Location:    location,
		Severity:    severity,
	}
}

var issueValidate = validator.New()

// Validate reports whether the issue satisfies the engine's schema.
func (i Issue) Validate() error {
	if err := issueValidate.Struct(i); err != nil {
		return fmt.Errorf("invalid issue: %w", err)
	}

	if !i.Severity.IsValid() {
		return fmt.Errorf("invalid issue: unknown severity %d", i.Severity)
	}

	return nil
}
