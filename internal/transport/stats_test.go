package transport

import (
	"context"
	"testing"
)

type captureEmitter struct {
	events []string
}

func (e *captureEmitter) Emit(event string, data any) {
	e.events = append(e.events, event)
}

func TestStatsManagerSeededTotals(t *testing.T) {
	m := NewStatsManager(context.Background(), nil, 10, 2048)

	stats := m.GetStats()
	if stats.TotalFilesCompressed != 10 {
		t.Errorf("expected seeded total files 10, got %d", stats.TotalFilesCompressed)
	}
	if stats.TotalDataSaved != 2048 {
		t.Errorf("expected seeded total saved 2048, got %d", stats.TotalDataSaved)
	}
	if stats.SessionFilesCompressed != 0 {
		t.Errorf("session counters must start at zero, got %d", stats.SessionFilesCompressed)
	}
}

func TestStatsManagerRecordAttempt(t *testing.T) {
	emitter := &captureEmitter{}
	m := NewStatsManager(context.Background(), emitter, 0, 0)

	m.RecordAttempt(500, true)
	m.RecordAttempt(300, true)
	m.RecordAttempt(100, false) // failures don't count

	stats := m.GetStats()
	if stats.SessionFilesCompressed != 2 {
		t.Errorf("expected 2 session files, got %d", stats.SessionFilesCompressed)
	}
	if stats.SessionDataSaved != 800 {
		t.Errorf("expected 800 session bytes saved, got %d", stats.SessionDataSaved)
	}
	if stats.TotalFilesCompressed != 2 {
		t.Errorf("expected 2 total files, got %d", stats.TotalFilesCompressed)
	}
	if len(emitter.events) != 2 {
		t.Errorf("expected 2 stats events, got %d", len(emitter.events))
	}
}
