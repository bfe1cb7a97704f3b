package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/dgallion1/elementnamer/internal/segment"
	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	// Element table source (.csv or .html)
	TablePath string

	// Longest word accepted by the API; tree size grows quickly with length.
	MaxWordLength int
	// Most decompositions enumerated for one word, and most tree nodes built
	// for it. Ambiguous words grow both exponentially.
	MaxPaths     int
	MaxTreeNodes int

	// Auth for /api routes; empty disables it.
	APIKey string

	LogLevel       string
	MetricsEnabled bool
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first if present; real environment variables win.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Port: envOr("PORT", "8090"),

		TablePath: envOr("ELEMENT_TABLE", "data/elements.csv"),

		MaxWordLength: envInt("MAX_WORD_LENGTH", 64),
		MaxPaths:      envInt("MAX_PATHS", 1024),
		MaxTreeNodes:  envInt("MAX_TREE_NODES", 65536),

		APIKey: os.Getenv("ELEMENTNAMER_API_KEY"),

		LogLevel:       envOr("LOG_LEVEL", "info"),
		MetricsEnabled: envBool("METRICS_ENABLED", true),
	}

	if cfg.MaxWordLength <= 0 {
		cfg.MaxWordLength = 64
	}
	if cfg.MaxPaths <= 0 {
		cfg.MaxPaths = 1024
	}
	if cfg.MaxTreeNodes <= 0 {
		cfg.MaxTreeNodes = 65536
	}

	return cfg
}

// CheckWork reports whether decomposing word stays within MaxPaths and
// MaxTreeNodes. Both counts come from a linear pass, so the check is cheap
// even for words whose tree would not fit in memory.
func (c Config) CheckWork(word string, t segment.Lookup) error {
	if n := segment.CountPaths(word, t); n > uint64(c.MaxPaths) {
		return fmt.Errorf("too many decompositions: %d (max %d)", n, c.MaxPaths)
	}
	if n := segment.CountNodes(word, t); n > uint64(c.MaxTreeNodes) {
		return fmt.Errorf("decomposition tree too large: %d nodes (max %d)", n, c.MaxTreeNodes)
	}
	return nil
}

func (c Config) Validate() error {
	if c.TablePath == "" {
		return fmt.Errorf("ELEMENT_TABLE is required")
	}
	if c.MaxWordLength <= 0 {
		return fmt.Errorf("MAX_WORD_LENGTH must be positive, got %d", c.MaxWordLength)
	}
	if c.MaxPaths <= 0 {
		return fmt.Errorf("MAX_PATHS must be positive, got %d", c.MaxPaths)
	}
	if c.MaxTreeNodes <= 0 {
		return fmt.Errorf("MAX_TREE_NODES must be positive, got %d", c.MaxTreeNodes)
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return nil
}

// Level returns the slog level for LogLevel, defaulting to info.
func (c Config) Level() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
