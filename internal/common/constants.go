package common

const (
	// File operation constants
	DefaultFilePermissions = 0755
	DefaultFileMode        = 0644

	// Event names
	EventUIState     = "ui:state"
	EventStatsUpdate = "stats:update"
)
