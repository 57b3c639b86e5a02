package workflow

import (
	"errors"
	"fmt"

	"kompakt/internal/compression"
	"kompakt/internal/filetype"
)

// User-visible message texts.
const (
	msgNoFileSelected = "No file selected."
	msgUnsupported    = "Unsupported file type."
	msgSaved          = "File saved successfully!"
)

// failureMessage maps a compression error to its on-screen text.
func failureMessage(kind filetype.Kind, err error) string {
	switch {
	case errors.Is(err, compression.ErrNoFileSelected):
		return msgNoFileSelected
	case errors.Is(err, compression.ErrUnsupportedType):
		return msgUnsupported
	case errors.Is(err, compression.ErrLoad):
		if kind == filetype.PDF {
			return "Failed to load PDF."
		}
		return "Failed to load image."
	case errors.Is(err, compression.ErrEncode):
		return "Image compression failed."
	case errors.Is(err, compression.ErrSerialize):
		return "PDF compression failed."
	case errors.Is(err, compression.ErrTranscode):
		if kind == filetype.Audio {
			return "Audio compression failed."
		}
		return "Video compression failed."
	case errors.Is(err, compression.ErrReadBack):
		return "Failed to read compressed file."
	default:
		return "Compression failed."
	}
}

// writeFailureMessage includes the underlying I/O failure description.
func writeFailureMessage(err error) string {
	return fmt.Sprintf("Failed to save file: %v", err)
}
