package model

import "errors"

var (
	// ErrSpawnFailed is returned when the linter cannot be started.
	ErrSpawnFailed = errors.New("spawn failed")
	// ErrBadConfig is returned when the engine configuration exists but is unusable.
	ErrBadConfig = errors.New("bad config")
	// ErrMalformedRecord is returned when a record lacks a required field or has it mistyped.
	ErrMalformedRecord = errors.New("malformed record")
	// ErrUnknownSeverity is returned for a linter level outside the known set.
	ErrUnknownSeverity = errors.New("unknown severity")
)
