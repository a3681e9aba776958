package config

// DefaultConfig returns a Config populated with all default values.
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Path:       "~/.local/share/ppcalendar/db",
			Backend:    "csv",
			CSVFile:    "events.csv",
			SQLiteFile: "events.db",
		},
		Calendar: CalendarConfig{
			WeekStart: "monday",
			WeekRows:  6,
			Color:     "auto",
		},
		Highlight: DefaultHighlight(),
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}

// DefaultHighlight maps description keywords to color names.
func DefaultHighlight() map[string]string {
	return map[string]string{
		"birthday": "red",
		"рождения": "red",
		"python":   "blue",
		"rust":     "red",
	}
}
