package config

// LoggingConfig contains logging configuration for the CLI entry point.
// The report pipeline itself never reads this; it takes an injected
// *slog.Logger.
type LoggingConfig struct {
	Level    string `yaml:"level"`
	Format   string `yaml:"format"` // "json" or "text"
	Output   string `yaml:"output"` // "stdout", "file" or "both"
	FilePath string `yaml:"file_path"`
}

// DefaultLogging returns a stdout text logger at info level.
func DefaultLogging() LoggingConfig {
	return LoggingConfig{
		Level:  "info",
		Format: "text",
		Output: "stdout",
	}
}
