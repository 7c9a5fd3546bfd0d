package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/abhisek/mathdrill/internal/practice"
	"github.com/abhisek/mathdrill/internal/problemgen"
)

// ErrInvalidDelay is returned when MATHDRILL_ADVANCE_DELAY is not a
// non-negative duration.
var ErrInvalidDelay = errors.New("invalid auto-advance delay")

// ErrInvalidGinMode is returned when GIN_MODE is not debug, release or test.
var ErrInvalidGinMode = errors.New("invalid gin mode")

// Config holds all application configuration.
type Config struct {
	Difficulty   problemgen.Difficulty
	Operation    problemgen.Operation
	AdvanceDelay time.Duration
	Addr         string
	GinMode      string
	LogLevel     string
	LogFormat    string
	// LogFile receives logs while the terminal UI owns the screen.
	// Empty disables TUI logging.
	LogFile string
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file is loaded if present; a missing one is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config using getenv to look up variables.
func FromEnv(getenv func(string) string) (*Config, error) {
	get := func(key, fallback string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return fallback
	}

	delay, err := parseDelay(get("MATHDRILL_ADVANCE_DELAY", practice.DefaultAdvanceDelay.String()))
	if err != nil {
		return nil, err
	}

	ginMode, err := parseGinMode(get("GIN_MODE", gin.ReleaseMode))
	if err != nil {
		return nil, err
	}

	return &Config{
		Difficulty:   problemgen.ParseDifficulty(get("MATHDRILL_DIFFICULTY", "medium")),
		Operation:    problemgen.ParseOperation(get("MATHDRILL_OPERATION", "addition")),
		AdvanceDelay: delay,
		Addr:         get("MATHDRILL_ADDR", "127.0.0.1:8080"),
		GinMode:      ginMode,
		LogLevel:     get("MATHDRILL_LOG_LEVEL", "info"),
		LogFormat:    get("MATHDRILL_LOG_FORMAT", "pretty"),
		LogFile:      get("MATHDRILL_LOG_FILE", ""),
	}, nil
}

// Settings returns the practice settings selected by the configuration.
func (c *Config) Settings() practice.Settings {
	return practice.Settings{Difficulty: c.Difficulty, Operation: c.Operation}
}

func parseDelay(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidDelay, s, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%w: %q is negative", ErrInvalidDelay, s)
	}
	return d, nil
}

// parseGinMode guards gin.SetMode, which panics on unknown modes.
func parseGinMode(s string) (string, error) {
	switch s {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		return s, nil
	default:
		return "", fmt.Errorf("%w: %q (want %s, %s or %s)", ErrInvalidGinMode, s,
			gin.DebugMode, gin.ReleaseMode, gin.TestMode)
	}
}
