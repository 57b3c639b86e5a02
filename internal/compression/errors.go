package compression

import (
	"errors"
	"fmt"
)

// Compression error taxonomy. Every failure of an attempt maps to exactly
// one of these sentinels; wrapping preserves the underlying cause.
var (
	ErrNoFileSelected  = errors.New("no file selected")
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrLoad            = errors.New("failed to load input")
	ErrEncode          = errors.New("encoder produced no data")
	ErrSerialize       = errors.New("serializer produced no data")
	ErrTranscode       = errors.New("transcode session failed")
	ErrReadBack        = errors.New("failed to read transcoded output")
	ErrWrite           = errors.New("failed to write output")
)

// CompressionError carries the stage and file path of a failed attempt.
type CompressionError struct {
	Stage string
	Path  string
	Err   error
}

func (e *CompressionError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("compression %s failed for file %s: %v", e.Stage, e.Path, e.Err)
	}
	return fmt.Sprintf("compression %s failed: %v", e.Stage, e.Err)
}

func (e *CompressionError) Unwrap() error {
	return e.Err
}

// NewCompressionError creates a new compression error.
func NewCompressionError(stage, path string, err error) *CompressionError {
	return &CompressionError{
		Stage: stage,
		Path:  path,
		Err:   err,
	}
}
