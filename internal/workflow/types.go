package workflow

import (
	"context"
	"time"

	"kompakt/internal/compression"
	"kompakt/internal/filetype"
)

// MessageKind distinguishes transient error and success messages.
type MessageKind string

const (
	MessageError   MessageKind = "error"
	MessageSuccess MessageKind = "success"
)

// Message is a transient on-screen status. It self-clears at ExpiresAt;
// error and success messages are mutually exclusive.
type Message struct {
	Kind      MessageKind `json:"kind"`
	Text      string      `json:"text"`
	ExpiresAt time.Time   `json:"expires_at"`
}

// SelectedFile identifies the user-chosen path and its extension-derived
// type tag. Owned exclusively by the controller.
type SelectedFile struct {
	Path string `json:"path"`
	Name string `json:"name"`
	Ext  string `json:"ext"`
	Size int64  `json:"size"`
	Kind string `json:"kind"`
}

// UiState is the UI-observable state. Mutated only by the controller.
type UiState struct {
	Selected   *SelectedFile `json:"selected"`
	Processing bool          `json:"processing"`
	Progress   float64       `json:"progress"`
	Message    *Message      `json:"message"`
}

// Dialogs is the system dialog surface the controller drives.
type Dialogs interface {
	// OpenFile presents the open dialog; empty path means cancelled.
	OpenFile() (string, error)
	// SaveFile presents the save dialog with a suggested filename; empty
	// path means cancelled.
	SaveFile(suggestedName string) (string, error)
}

// Emitter pushes state snapshots to the UI.
type Emitter interface {
	Emit(event string, data any)
}

// Dispatcher routes a file to its compression strategy.
type Dispatcher interface {
	Compress(ctx context.Context, path string, kind filetype.Kind) compression.Outcome
	Submit(ctx context.Context, path string, kind filetype.Kind, done func(compression.Outcome))
}

// Attempt describes one finished compression attempt for the history log.
type Attempt struct {
	ID             string
	Filename       string
	Kind           filetype.Kind
	OriginalSize   int64
	CompressedSize int64
	Err            error
}

// Recorder receives finished attempts.
type Recorder interface {
	Record(attempt Attempt)
}
