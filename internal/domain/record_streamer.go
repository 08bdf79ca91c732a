package domain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// RecordStreamer splits the linter output into JSON values.
type RecordStreamer interface {
	// Stream decodes r as a concatenation of JSON values, with or without
	// whitespace between them. Values are sent in input order. A value that
	// fails to decode ends the stream and is reported on the error channel.
	// Both channels close when the stream ends or ctx is cancelled.
	Stream(ctx context.Context, r io.Reader) (<-chan json.RawMessage, <-chan error)
}

type recordStreamer struct{}

// NewRecordStreamer creates a RecordStreamer.
func NewRecordStreamer() RecordStreamer {
	return &recordStreamer{}
}

func (rs *recordStreamer) Stream(ctx context.Context, r io.Reader) (<-chan json.RawMessage, <-chan error) {
	values := make(chan json.RawMessage)
	errs := make(chan error, 1)

	go func() {
		defer close(values)
		defer close(errs)

		decoder := json.NewDecoder(r)
		count := 0

		for {
			var value json.RawMessage

			err := decoder.Decode(&value)
			if errors.Is(err, io.EOF) {
				slog.Debug("Linter output exhausted", "values", count)
				return
			}

			if err != nil {
				if ctx.Err() != nil {
					return
				}

				errs <- fmt.Errorf("decode value %d: %w", count, err)

				return
			}

			count++

			select {
			case <-ctx.Done():
				slog.Debug("Record streaming cancelled", "values", count)
				return
			case values <- value:
			}
		}
	}()

	return values, errs
}
