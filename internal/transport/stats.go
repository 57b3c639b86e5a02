package transport

import (
	"context"
	"sync"

	"kompakt/internal/common"
	"kompakt/internal/workflow"
)

// StatsManager tracks session and lifetime statistics. Lifetime totals
// are seeded from the history database at startup; session counters live
// in memory only.
type StatsManager struct {
	ctx     context.Context
	emitter workflow.Emitter

	mu    sync.Mutex
	stats AppStats
}

// NewStatsManager creates a stats manager seeded with lifetime totals.
func NewStatsManager(ctx context.Context, emitter workflow.Emitter, totalFiles, totalSaved int64) *StatsManager {
	return &StatsManager{
		ctx:     ctx,
		emitter: emitter,
		stats: AppStats{
			TotalFilesCompressed: totalFiles,
			TotalDataSaved:       totalSaved,
		},
	}
}

// RecordAttempt updates the counters for one completed attempt.
func (m *StatsManager) RecordAttempt(saved int64, success bool) {
	if !success {
		return
	}

	m.mu.Lock()
	m.stats.SessionFilesCompressed++
	m.stats.SessionDataSaved += saved
	m.stats.TotalFilesCompressed++
	m.stats.TotalDataSaved += saved
	snapshot := m.stats
	m.mu.Unlock()

	if m.emitter != nil {
		m.emitter.Emit(common.EventStatsUpdate, snapshot)
	}
}

// GetStats returns the current statistics.
func (m *StatsManager) GetStats() AppStats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stats
}
