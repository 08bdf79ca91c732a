package adapter

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	m "github.com/codeclimate-community/codeclimate-clippy/internal/model"
)

// IssueTerminator ends every issue document sent to the engine.
const IssueTerminator byte = 0x00

// IssueWriterAdapter sends issues to the Code Climate engine.
type IssueWriterAdapter interface {
	Write(ctx context.Context, issue m.Issue) error
	Flush(ctx context.Context) error
}

// StreamIssueWriterAdapter writes each issue as indented JSON followed by a
// single NUL byte.
type StreamIssueWriterAdapter struct {
	mu     sync.Mutex
	out    *bufio.Writer
	buffer bytes.Buffer
}

// NewStreamIssueWriterAdapter writes issues to w, buffered until Flush.
func NewStreamIssueWriterAdapter(w io.Writer) *StreamIssueWriterAdapter {
	return &StreamIssueWriterAdapter{out: bufio.NewWriter(w)}
}

// Write encodes one issue.
func (a *StreamIssueWriterAdapter) Write(ctx context.Context, issue m.Issue) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.buffer.Reset()

	encoder := json.NewEncoder(&a.buffer)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(issue); err != nil {
		return fmt.Errorf("failed to encode issue %q: %w", issue.CheckName, err)
	}

	// Encode ends the document with a newline; the engine expects NUL instead.
	document := bytes.TrimSuffix(a.buffer.Bytes(), []byte("\n"))

	if _, err := a.out.Write(document); err != nil {
		return fmt.Errorf("failed to write issue: %w", err)
	}

	if err := a.out.WriteByte(IssueTerminator); err != nil {
		return fmt.Errorf("failed to write issue terminator: %w", err)
	}

	return nil
}

// Flush writes buffered issues to the underlying writer.
func (a *StreamIssueWriterAdapter) Flush(_ context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.out.Flush(); err != nil {
		return fmt.Errorf("failed to flush issues: %w", err)
	}

	return nil
}
