package database

import (
	"path/filepath"
	"testing"
	"time"
)

func newTestDatabase(t *testing.T) *Database {
	t.Helper()

	db, err := NewDatabase(filepath.Join(t.TempDir(), "history.sqlite3"))
	if err != nil {
		t.Fatalf("NewDatabase() error: %v", err)
	}
	return db
}

func TestRecordAndRecent(t *testing.T) {
	db := newTestDatabase(t)

	rec := &CompressionRecord{
		ID:             "attempt-1",
		Filename:       "photo.png",
		Kind:           "image",
		OriginalSize:   1000,
		CompressedSize: 400,
		Ratio:          60,
		Status:         StatusCompleted,
		CreatedAt:      time.Now(),
	}
	if err := db.Record(rec); err != nil {
		t.Fatalf("Record() error: %v", err)
	}

	records, err := db.Recent()
	if err != nil {
		t.Fatalf("Recent() error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Filename != "photo.png" {
		t.Errorf("expected filename photo.png, got %s", records[0].Filename)
	}
}

func TestRecentOrder(t *testing.T) {
	db := newTestDatabase(t)

	older := &CompressionRecord{ID: "a", Filename: "old.pdf", Status: StatusCompleted, CreatedAt: time.Now().Add(-time.Hour)}
	newer := &CompressionRecord{ID: "b", Filename: "new.pdf", Status: StatusCompleted, CreatedAt: time.Now()}

	if err := db.Record(older); err != nil {
		t.Fatalf("Record() error: %v", err)
	}
	if err := db.Record(newer); err != nil {
		t.Fatalf("Record() error: %v", err)
	}

	records, err := db.Recent()
	if err != nil {
		t.Fatalf("Recent() error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Filename != "new.pdf" {
		t.Errorf("expected newest record first, got %s", records[0].Filename)
	}
}

func TestTotalsSaved(t *testing.T) {
	db := newTestDatabase(t)

	records := []*CompressionRecord{
		{ID: "1", Filename: "a.png", OriginalSize: 1000, CompressedSize: 600, Status: StatusCompleted, CreatedAt: time.Now()},
		{ID: "2", Filename: "b.pdf", OriginalSize: 2000, CompressedSize: 1500, Status: StatusCompleted, CreatedAt: time.Now()},
		{ID: "3", Filename: "c.mov", OriginalSize: 5000, Status: StatusError, Error: "Video compression failed.", CreatedAt: time.Now()},
	}
	for _, rec := range records {
		if err := db.Record(rec); err != nil {
			t.Fatalf("Record() error: %v", err)
		}
	}

	count, saved, err := db.TotalsSaved()
	if err != nil {
		t.Fatalf("TotalsSaved() error: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 completed attempts, got %d", count)
	}
	if saved != 900 {
		t.Errorf("expected 900 bytes saved, got %d", saved)
	}
}

func TestSavedBytes(t *testing.T) {
	tests := []struct {
		name     string
		record   CompressionRecord
		expected int64
	}{
		{"completed", CompressionRecord{OriginalSize: 100, CompressedSize: 40, Status: StatusCompleted}, 60},
		{"failed", CompressionRecord{OriginalSize: 100, CompressedSize: 0, Status: StatusError}, 0},
		{"grew", CompressionRecord{OriginalSize: 100, CompressedSize: 120, Status: StatusCompleted}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.record.SavedBytes(); got != tt.expected {
				t.Errorf("SavedBytes() = %d, expected %d", got, tt.expected)
			}
		})
	}
}
