package commands

const (
	// DefaultHistoryLimit caps 'history list' output.
	DefaultHistoryLimit = 20

	// TimestampFormat renders history timestamps.
	TimestampFormat = "2006-01-02 15:04:05"
)
