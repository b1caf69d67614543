package config

import (
	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/board"
	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/models"
)

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			LogLevel: "silent",
		},
		AI: AIConfig{
			Model:          "gemini-2.5-flash",
			BaseURL:        "https://generativelanguage.googleapis.com/v1beta",
			TimeoutSeconds: 60,
		},
		Server: ServerConfig{
			Addr: "127.0.0.1:8080",
		},
		Board: BoardConfig{
			ViewMode:        string(board.ViewByClient),
			SortBy:          string(board.SortDefault),
			LongPendingDays: models.DefaultLongPendingDays,
		},
	}
}
