package domain

// PythonBinary returns the configured Python interpreter.
// Returns the default interpreter if not configured.
func (c *Config) PythonBinary() string {
	const defaultPython = "python3"

	if c.Engine.Python == "" {
		return defaultPython
	}
	return c.Engine.Python
}

// DefaultLanguage returns the language applied when a request omits one.
func (c *Config) DefaultLanguage() string {
	const defaultLanguage = "en"

	if c.Preferences.DefaultLanguage == "" {
		return defaultLanguage
	}
	return c.Preferences.DefaultLanguage
}

// IsHistoryEnabled checks if invocation history recording is enabled.
func (c *Config) IsHistoryEnabled() bool {
	return c.History.Enabled
}

// HistoryRetentionDays returns the number of days to retain history.
func (c *Config) HistoryRetentionDays() int {
	const defaultRetentionDays = 30

	if c.History.RetentionDays <= 0 {
		return defaultRetentionDays
	}
	return c.History.RetentionDays
}
