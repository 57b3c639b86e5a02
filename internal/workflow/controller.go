package workflow

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"kompakt/internal/common"
	"kompakt/internal/compression"
	"kompakt/internal/filetype"
)

const (
	// messageTTL is the fixed lifetime of a transient message.
	messageTTL = 3 * time.Second

	// Staged progress values, emitted at the same points the UI shows them.
	progressStarted     = 0.2
	progressCompressing = 0.6
	progressFinalizing  = 0.9
	progressDone        = 1.0
)

// Controller owns the UI-observable state machine and sequences
// selection, validation, dispatch, the save prompt and transient message
// display. All state is mutated under the controller's lock; transcode
// completions arriving on worker goroutines are handed back through
// finish before touching state.
type Controller struct {
	ctx        context.Context
	dialogs    Dialogs
	dispatcher Dispatcher
	recorder   Recorder
	emitter    Emitter
	logger     *slog.Logger

	mu        sync.Mutex
	state     UiState
	attemptID string
	msgTTL    time.Duration
	msgTimer  *time.Timer
	msgGen    uint64
}

// NewController creates a workflow controller.
func NewController(ctx context.Context, dialogs Dialogs, dispatcher Dispatcher, recorder Recorder, emitter Emitter, logger *slog.Logger) *Controller {
	return &Controller{
		ctx:        ctx,
		dialogs:    dialogs,
		dispatcher: dispatcher,
		recorder:   recorder,
		emitter:    emitter,
		logger:     logger,
		msgTTL:     messageTTL,
	}
}

// GetState returns a snapshot of the current UI state.
func (c *Controller) GetState() UiState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// SelectFile presents the open dialog and records the selection. The
// extension is not validated here: classification failure is deferred to
// compression time.
func (c *Controller) SelectFile() error {
	c.mu.Lock()
	if c.state.Processing {
		c.mu.Unlock()
		return nil
	}
	c.mu.Unlock()

	path, err := c.dialogs.OpenFile()
	if err != nil {
		c.logger.Error("Open dialog failed", "error", err)
		return err
	}
	if path == "" {
		// Cancelled.
		return nil
	}

	var size int64
	if info, err := os.Stat(path); err == nil {
		size = info.Size()
	}

	ext := strings.TrimPrefix(filepath.Ext(path), ".")

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.Processing {
		return nil
	}
	c.state.Selected = &SelectedFile{
		Path: path,
		Name: filepath.Base(path),
		Ext:  ext,
		Size: size,
		Kind: filetype.Classify(ext).String(),
	}
	c.state.Progress = 0
	c.clearMessageLocked()
	c.emitLocked()

	c.logger.Info("File selected", "file", c.state.Selected.Name, "size", size)
	return nil
}

// RemoveFile resets selection, progress, the processing flag and any
// message to their initial values. An in-flight transcode is not
// aborted; its outcome is discarded when it arrives.
func (c *Controller) RemoveFile() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Selected = nil
	c.state.Processing = false
	c.state.Progress = 0
	c.attemptID = ""
	c.clearMessageLocked()
	c.emitLocked()
}

// Compress validates the selection, dispatches the matching strategy and
// sequences the save prompt or error display once the outcome arrives.
// A call with nothing selected surfaces an error message; a call while
// already processing is a silent no-op.
func (c *Controller) Compress() error {
	c.mu.Lock()
	if c.state.Processing {
		c.mu.Unlock()
		return nil
	}

	sel := c.state.Selected
	if sel == nil {
		c.setMessageLocked(MessageError, msgNoFileSelected)
		c.emitLocked()
		c.mu.Unlock()
		return compression.ErrNoFileSelected
	}

	kind := filetype.Classify(sel.Ext)
	if kind == filetype.Unsupported {
		c.setMessageLocked(MessageError, msgUnsupported)
		c.emitLocked()
		c.mu.Unlock()
		c.logger.Warn("Unsupported file type", "file", sel.Name, "ext", sel.Ext)
		return compression.ErrUnsupportedType
	}

	attemptID := common.GenerateUUID()
	c.attemptID = attemptID
	c.state.Processing = true
	c.state.Progress = progressStarted
	c.clearMessageLocked()
	c.emitLocked()
	c.mu.Unlock()

	c.logger.Info("Compression started", "file", sel.Name, "kind", kind.String())
	c.setProgress(progressCompressing)

	file := *sel
	if compression.IsAsync(kind) {
		c.dispatcher.Submit(c.ctx, file.Path, kind, func(outcome compression.Outcome) {
			c.finish(attemptID, file, kind, outcome)
		})
		return nil
	}

	outcome := c.dispatcher.Compress(c.ctx, file.Path, kind)
	c.finish(attemptID, file, kind, outcome)
	return nil
}

// finish receives the outcome of one attempt. It runs on the caller's
// goroutine for sync strategies and on the transcode worker for async
// ones; all state mutation happens under the lock.
func (c *Controller) finish(attemptID string, file SelectedFile, kind filetype.Kind, outcome compression.Outcome) {
	c.mu.Lock()
	current := c.attemptID == attemptID
	if current {
		c.state.Processing = false
		c.state.Progress = progressFinalizing
		c.attemptID = ""
		c.emitLocked()
	}
	c.mu.Unlock()

	c.record(attemptID, file, kind, outcome)

	if !current {
		// Selection was removed while the transcode ran.
		c.logger.Info("Discarding outcome of removed selection", "file", file.Name)
		return
	}

	if !outcome.Success() {
		c.logger.Error("Compression failed", "file", file.Name, "error", outcome.Err)
		c.mu.Lock()
		c.state.Progress = progressDone
		c.setMessageLocked(MessageError, failureMessage(kind, outcome.Err))
		c.emitLocked()
		c.mu.Unlock()
		return
	}

	c.logger.Info("Compression finished",
		"file", file.Name,
		"original_size", file.Size,
		"compressed_size", len(outcome.Data))
	c.promptSave(file, kind, outcome.Data)
}

// promptSave presents the save dialog and writes the result. Cancelling
// the dialog is a silent no-op.
func (c *Controller) promptSave(file SelectedFile, kind filetype.Kind, data []byte) {
	c.mu.Lock()
	c.state.Progress = progressDone
	c.emitLocked()
	c.mu.Unlock()

	suggested := suggestedName(file.Name, file.Path, kind)

	dest, err := c.dialogs.SaveFile(suggested)
	if err != nil {
		c.logger.Error("Save dialog failed", "error", err)
		c.mu.Lock()
		c.setMessageLocked(MessageError, writeFailureMessage(err))
		c.emitLocked()
		c.mu.Unlock()
		return
	}
	if dest == "" {
		// Cancelled: no message.
		c.mu.Lock()
		c.emitLocked()
		c.mu.Unlock()
		return
	}

	if err := os.WriteFile(dest, data, common.DefaultFileMode); err != nil {
		c.logger.Error("Failed to write output file", "dest", dest, "error", err)
		c.mu.Lock()
		c.setMessageLocked(MessageError, writeFailureMessage(err))
		c.emitLocked()
		c.mu.Unlock()
		return
	}

	c.logger.Info("File saved", "dest", dest, "size", len(data))
	c.mu.Lock()
	c.setMessageLocked(MessageSuccess, msgSaved)
	c.emitLocked()
	c.mu.Unlock()
}

func (c *Controller) record(attemptID string, file SelectedFile, kind filetype.Kind, outcome compression.Outcome) {
	if c.recorder == nil {
		return
	}

	attempt := Attempt{
		ID:           attemptID,
		Filename:     file.Name,
		Kind:         kind,
		OriginalSize: file.Size,
	}
	if outcome.Success() {
		attempt.CompressedSize = int64(len(outcome.Data))
	} else {
		attempt.Err = outcome.Err
	}
	c.recorder.Record(attempt)
}

// setMessageLocked replaces the transient message and restarts its
// expiry timer. Error and success messages can never coexist because a
// single slot holds whichever was set last.
func (c *Controller) setMessageLocked(kind MessageKind, text string) {
	if c.msgTimer != nil {
		c.msgTimer.Stop()
	}
	c.msgGen++
	gen := c.msgGen

	c.state.Message = &Message{
		Kind:      kind,
		Text:      text,
		ExpiresAt: time.Now().Add(c.msgTTL),
	}

	c.msgTimer = time.AfterFunc(c.msgTTL, func() {
		c.expireMessage(gen)
	})
}

// expireMessage clears the message set under generation gen. A newer
// message keeps its own timer and is left untouched.
func (c *Controller) expireMessage(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.msgGen != gen || c.state.Message == nil {
		return
	}
	c.state.Message = nil
	c.state.Progress = 0
	c.emitLocked()
}

func (c *Controller) clearMessageLocked() {
	if c.msgTimer != nil {
		c.msgTimer.Stop()
		c.msgTimer = nil
	}
	c.msgGen++
	c.state.Message = nil
}

func (c *Controller) setProgress(p float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.state.Processing {
		return
	}
	c.state.Progress = p
	c.emitLocked()
}

func (c *Controller) emitLocked() {
	if c.emitter == nil {
		return
	}
	c.emitter.Emit(common.EventUIState, c.state)
}

// suggestedName builds the save dialog's pre-filled filename:
// Compressed_<original-name>, with the extension the compressed copy
// actually carries (audio re-muxes to .m4a).
func suggestedName(name, path string, kind filetype.Kind) string {
	ext := compression.OutputExtension(path, kind)
	base := strings.TrimSuffix(name, filepath.Ext(name))
	return "Compressed_" + base + ext
}
