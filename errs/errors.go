// Package errs defines the sentinel errors shared across pack12 packages.
//
// Callers can match these with errors.Is even when they are wrapped with
// additional context via fmt.Errorf and %w.
package errs

import "errors"

var (
	// ErrInvalidCapacity indicates a tracking structure was constructed with a
	// non-positive capacity.
	ErrInvalidCapacity = errors.New("capacity must be positive")

	// ErrInvalidBufferSize indicates a read buffer smaller than one 3-byte
	// sample group.
	ErrInvalidBufferSize = errors.New("read buffer must hold at least one 3-byte group")

	// ErrInvalidCompression indicates an unknown or unsupported compression type.
	ErrInvalidCompression = errors.New("invalid compression type")
)
