package transport

// Transport layer types for the Wails API

// HistoryEntry is one compression attempt as shown to the frontend.
type HistoryEntry struct {
	ID             string  `json:"id"`
	Filename       string  `json:"filename"`
	Kind           string  `json:"kind"`
	OriginalSize   int64   `json:"original_size"`
	CompressedSize int64   `json:"compressed_size"`
	Ratio          float64 `json:"ratio"`
	Status         string  `json:"status"`
	Error          string  `json:"error,omitempty"`
	CreatedAt      string  `json:"created_at"`
}

// AppStats holds application statistics
type AppStats struct {
	TotalFilesCompressed   int64 `json:"total_files_compressed"`
	TotalDataSaved         int64 `json:"total_data_saved"`
	SessionFilesCompressed int   `json:"session_files_compressed"`
	SessionDataSaved       int64 `json:"session_data_saved"`
}
