package container

import (
	"log/slog"
	"time"

	"kompakt/internal/database"
	"kompakt/internal/transport"
	"kompakt/internal/workflow"
)

// historyRecorder adapts the history database and stats manager to the
// workflow.Recorder interface.
type historyRecorder struct {
	db     *database.Database
	stats  *transport.StatsManager
	logger *slog.Logger
}

func (r *historyRecorder) Record(attempt workflow.Attempt) {
	rec := &database.CompressionRecord{
		ID:           attempt.ID,
		Filename:     attempt.Filename,
		Kind:         attempt.Kind.String(),
		OriginalSize: attempt.OriginalSize,
		CreatedAt:    time.Now(),
	}

	if attempt.Err != nil {
		rec.Status = database.StatusError
		rec.Error = attempt.Err.Error()
	} else {
		rec.Status = database.StatusCompleted
		rec.CompressedSize = attempt.CompressedSize
		if attempt.OriginalSize > 0 {
			rec.Ratio = float64(attempt.OriginalSize-attempt.CompressedSize) / float64(attempt.OriginalSize) * 100
		}
	}

	if err := r.db.Record(rec); err != nil {
		r.logger.Error("Failed to record compression attempt", "file", attempt.Filename, "error", err)
	}

	r.stats.RecordAttempt(rec.SavedBytes(), rec.Status == database.StatusCompleted)
}
