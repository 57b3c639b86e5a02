package transport

import (
	"context"

	wailsruntime "github.com/wailsapp/wails/v2/pkg/runtime"

	"kompakt/internal/filetype"
	"kompakt/internal/workflow"
)

type dialogsHandler struct {
	ctx context.Context
}

// NewDialogsHandler creates the Wails-backed dialog surface.
func NewDialogsHandler(ctx context.Context) workflow.Dialogs {
	return &dialogsHandler{
		ctx: ctx,
	}
}

func (h *dialogsHandler) OpenFile() (string, error) {
	selection, err := wailsruntime.OpenFileDialog(h.ctx, wailsruntime.OpenDialogOptions{
		Title: "Select a file to compress",
		Filters: []wailsruntime.FileFilter{
			{
				DisplayName: "Media and Documents (jpg, jpeg, png, mp4, mp3, mov, pdf)",
				Pattern:     filetype.DialogPattern(),
			},
		},
	})

	if err != nil {
		return "", err
	}

	return selection, nil
}

func (h *dialogsHandler) SaveFile(suggestedName string) (string, error) {
	selection, err := wailsruntime.SaveFileDialog(h.ctx, wailsruntime.SaveDialogOptions{
		Title:           "Save compressed file",
		DefaultFilename: suggestedName,
	})

	if err != nil {
		return "", err
	}

	return selection, nil
}
