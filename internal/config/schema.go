package config

// Config represents the full sratask configuration
type Config struct {
	// Database configuration
	Database DatabaseConfig `yaml:"database" mapstructure:"database"`

	// AI assistant configuration
	AI AIConfig `yaml:"ai" mapstructure:"ai"`

	// HTTP API configuration
	Server ServerConfig `yaml:"server" mapstructure:"server"`

	// Board defaults
	Board BoardConfig `yaml:"board" mapstructure:"board"`
}

// DatabaseConfig configures the SQLite store
type DatabaseConfig struct {
	Path     string `yaml:"path" mapstructure:"path"`           // empty means ~/.sratask/sratask.db
	LogLevel string `yaml:"log_level" mapstructure:"log_level"` // silent, error, warn, info
}

// AIConfig configures the Gemini client
type AIConfig struct {
	APIKey         string `yaml:"api_key" mapstructure:"api_key"`
	Model          string `yaml:"model" mapstructure:"model"`
	BaseURL        string `yaml:"base_url" mapstructure:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds" mapstructure:"timeout_seconds"`
}

// ServerConfig configures the HTTP API
type ServerConfig struct {
	Addr string `yaml:"addr" mapstructure:"addr"`
}

// BoardConfig holds the initial view of the board
type BoardConfig struct {
	ViewMode        string `yaml:"view_mode" mapstructure:"view_mode"`
	SortBy          string `yaml:"sort_by" mapstructure:"sort_by"`
	LongPendingDays int    `yaml:"long_pending_days" mapstructure:"long_pending_days"`
	ReduceMotion    bool   `yaml:"reduce_motion" mapstructure:"reduce_motion"` // no animation in the interactive board
}
