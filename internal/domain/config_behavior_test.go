package domain

import "testing"

func TestPythonBinaryDefaultsToPython3(t *testing.T) {
	cfg := Config{}
	if got := cfg.PythonBinary(); got != "python3" {
		t.Fatalf("PythonBinary() = %q, want python3", got)
	}

	cfg.Engine.Python = "/opt/venv/bin/python"
	if got := cfg.PythonBinary(); got != "/opt/venv/bin/python" {
		t.Fatalf("PythonBinary() = %q, want configured interpreter", got)
	}
}

func TestDefaultLanguageFallsBackToEnglish(t *testing.T) {
	cfg := Config{}
	if got := cfg.DefaultLanguage(); got != "en" {
		t.Fatalf("DefaultLanguage() = %q, want en", got)
	}

	cfg.Preferences.DefaultLanguage = "ta"
	if got := cfg.DefaultLanguage(); got != "ta" {
		t.Fatalf("DefaultLanguage() = %q, want ta", got)
	}
}

func TestHistoryRetentionDaysIgnoresNonPositiveValues(t *testing.T) {
	tests := []struct {
		name string
		days int
		want int
	}{
		{name: "unset", days: 0, want: 30},
		{name: "negative", days: -7, want: 30},
		{name: "configured", days: 90, want: 90},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Config{History: HistorySettings{RetentionDays: tc.days}}
			if got := cfg.HistoryRetentionDays(); got != tc.want {
				t.Fatalf("HistoryRetentionDays() = %d, want %d", got, tc.want)
			}
		})
	}
}
