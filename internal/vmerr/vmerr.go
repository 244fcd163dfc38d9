// Package vmerr defines the error taxonomy for the simulator's input and
// backing-store failure modes.
package vmerr

import (
	"errors"
	"fmt"
)

// Sentinel kinds. Wrap these with fmt.Errorf("...: %w", ErrX) to attach
// context; callers type-check with errors.Is.
var (
	ErrMissingInput      = errors.New("no reference-sequence-file given")
	ErrFileNotFound      = errors.New("file not found")
	ErrMalformedToken    = errors.New("malformed address token")
	ErrBackingStoreShort = errors.New("backing store read returned fewer than 256 bytes")
)

// MalformedToken wraps ErrMalformedToken with the offending token for a
// precise diagnostic.
func MalformedToken(token string, cause error) error {
	if cause != nil {
		return fmt.Errorf("%w: %q: %v", ErrMalformedToken, token, cause)
	}
	return fmt.Errorf("%w: %q", ErrMalformedToken, token)
}

// FileNotFound wraps ErrFileNotFound with the path that could not be opened.
func FileNotFound(path string, cause error) error {
	return fmt.Errorf("%w: %s: %v", ErrFileNotFound, path, cause)
}

// BackingStoreShort wraps ErrBackingStoreShort with the page that failed.
func BackingStoreShort(page int, got int) error {
	return fmt.Errorf("%w: page %d: got %d bytes", ErrBackingStoreShort, page, got)
}
