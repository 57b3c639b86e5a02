package transport

import (
	"context"
	"testing"

	"kompakt/internal/workflow"
)

func TestNewDialogsHandler(t *testing.T) {
	ctx := context.Background()
	handler := NewDialogsHandler(ctx)

	if handler == nil {
		t.Fatal("Expected Dialogs instance, got nil")
	}

	// Verify it implements the interface
	var _ workflow.Dialogs = handler
}
