package utils

import "errors"

var (
	ErrorRecordNotFound = errors.New("record not found")

	// ErrorInvalidReference marks a write that points at a nonexistent
	// related record; surfaced to the caller as a validation failure.
	ErrorInvalidReference = errors.New("referenced record does not exist")
)
