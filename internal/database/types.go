package database

import "time"

// CompressionRecord is one logged compression attempt.
type CompressionRecord struct {
	ID             string    `gorm:"primaryKey" json:"id"`
	Filename       string    `json:"filename"`
	Kind           string    `json:"kind"`
	OriginalSize   int64     `json:"original_size"`
	CompressedSize int64     `json:"compressed_size"`
	Ratio          float64   `json:"ratio"`
	Status         string    `json:"status"` // "completed" or "error"
	Error          string    `json:"error,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// SavedBytes returns how many bytes the attempt saved. Failed attempts
// and attempts that grew the file report zero.
func (r *CompressionRecord) SavedBytes() int64 {
	if r.Status != StatusCompleted {
		return 0
	}
	saved := r.OriginalSize - r.CompressedSize
	if saved < 0 {
		return 0
	}
	return saved
}

const (
	StatusCompleted = "completed"
	StatusError     = "error"
)
