package transport

import (
	"context"

	"kompakt/internal/database"
	"kompakt/internal/workflow"
)

// WailsApp is the API surface bound to the frontend.
type WailsApp struct {
	ctx        context.Context
	controller *workflow.Controller
	db         *database.Database
	stats      *StatsManager
	status     map[string]interface{}
}

// NewWailsApp creates the transport facade over the workflow controller.
func NewWailsApp(ctx context.Context, controller *workflow.Controller, db *database.Database, stats *StatsManager, status map[string]interface{}) *WailsApp {
	return &WailsApp{
		ctx:        ctx,
		controller: controller,
		db:         db,
		stats:      stats,
		status:     status,
	}
}

// SelectFile opens the file dialog and returns the resulting state.
func (a *WailsApp) SelectFile() (workflow.UiState, error) {
	err := a.controller.SelectFile()
	return a.controller.GetState(), err
}

// RemoveFile clears the selection and all transient state.
func (a *WailsApp) RemoveFile() workflow.UiState {
	a.controller.RemoveFile()
	return a.controller.GetState()
}

// Compress starts a compression attempt for the current selection.
// Failures surface through the state's transient message.
func (a *WailsApp) Compress() workflow.UiState {
	a.controller.Compress()
	return a.controller.GetState()
}

// GetState returns the current UI state snapshot.
func (a *WailsApp) GetState() workflow.UiState {
	return a.controller.GetState()
}

// GetHistory returns recent compression attempts, newest first.
func (a *WailsApp) GetHistory() ([]HistoryEntry, error) {
	records, err := a.db.Recent()
	if err != nil {
		return nil, err
	}

	entries := make([]HistoryEntry, len(records))
	for i, rec := range records {
		entries[i] = HistoryEntry{
			ID:             rec.ID,
			Filename:       rec.Filename,
			Kind:           rec.Kind,
			OriginalSize:   rec.OriginalSize,
			CompressedSize: rec.CompressedSize,
			Ratio:          rec.Ratio,
			Status:         rec.Status,
			Error:          rec.Error,
			CreatedAt:      rec.CreatedAt.Format("2006-01-02 15:04:05"),
		}
	}
	return entries, nil
}

// GetStats returns current application statistics.
func (a *WailsApp) GetStats() AppStats {
	return a.stats.GetStats()
}

// GetAppStatus returns application status information.
func (a *WailsApp) GetAppStatus() map[string]interface{} {
	return a.status
}
