package domain

// Config mirrors ~/.birthchart/config.yaml.
type Config struct {
	ConfigFormatVersion string          `yaml:"config_format_version" json:"config_format_version"`
	Engine              EngineSettings  `yaml:"engine" json:"engine"`
	Preferences         Preferences     `yaml:"preferences" json:"preferences"`
	History             HistorySettings `yaml:"history" json:"history"`
}

// EngineSettings describes how to reach the PyJHora bridge.
type EngineSettings struct {
	Python     string `yaml:"python" json:"python"`
	Script     string `yaml:"script" json:"script"`
	PythonPath string `yaml:"python_path" json:"python_path"`
}

// Preferences captures user level toggles.
type Preferences struct {
	DefaultLanguage string `yaml:"default_language" json:"default_language"`
}

// HistorySettings controls the opt-in invocation history.
type HistorySettings struct {
	Enabled       bool `yaml:"enabled" json:"enabled"`
	RetentionDays int  `yaml:"retention_days" json:"retention_days"`
}
