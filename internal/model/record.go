package model

import "encoding/json"

// MountPrefix is where the analysed project is mounted inside the container.
const MountPrefix = "/code-copy/"

// Record is one JSON value produced by `cargo clippy --message-format json`.
// Only the fields the adapter reads are declared.
type Record struct {
	Message json.RawMessage `json:"message,omitempty"`
	Target  *Target         `json:"target,omitempty"`
}

// Target describes the crate target a message belongs to.
type Target struct {
	SrcPath *string `json:"src_path"`
}

// Diagnostic is the decoded "message" object of a compiler-message record.
// Children and spans are kept raw so entries that are never read cannot fail
// the record.
type Diagnostic struct {
	Level    *string           `json:"level"`
	Message  *string           `json:"message"`
	Children []json.RawMessage `json:"children"`
	Spans    []json.RawMessage `json:"spans"`
}

// DiagnosticChild is a note or help entry attached to a diagnostic.
type DiagnosticChild struct {
	Message *string `json:"message"`
}

// DiagnosticSpan is a source span of a diagnostic.
type DiagnosticSpan struct {
	LineStart   *int64 `json:"line_start"`
	LineEnd     *int64 `json:"line_end"`
	ColumnStart *int64 `json:"column_start"`
	ColumnEnd   *int64 `json:"column_end"`
}
