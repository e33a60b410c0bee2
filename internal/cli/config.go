package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/mcoot/tictactoe-go/internal/model"
	"github.com/mcoot/tictactoe-go/internal/tui"
)

// Config holds CLI configuration
type Config struct {
	BotStrategy string
	LogFile     string
	LogLevel    string
	AnimDelay   time.Duration
	NoColor     bool
	Output      string
	Seed        uint64
	Seeded      bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	cfg := &Config{
		BotStrategy: getEnvOrDefault("TICTACTOE_BOT", model.DefaultBotStrategy),
		LogFile:     os.Getenv("TICTACTOE_LOG_FILE"),
		LogLevel:    getEnvOrDefault("TICTACTOE_LOG_LEVEL", "info"),
		AnimDelay:   getDurationEnvOrDefault("TICTACTOE_ANIM_DELAY", tui.DefaultAnimDelay),
		NoColor:     os.Getenv("NO_COLOR") != "",
		Output:      "text",
	}

	if seed, err := strconv.ParseUint(os.Getenv("TICTACTOE_SEED"), 10, 64); err == nil {
		cfg.Seed = seed
		cfg.Seeded = true
	}

	return cfg
}

// Validate checks values that flags and environment cannot constrain
func (c *Config) Validate() error {
	valid := false
	for _, s := range model.ValidBotStrategies() {
		if c.BotStrategy == s {
			valid = true
		}
	}
	if !valid {
		return fmt.Errorf("%w: %s", model.ErrUnknownStrategy, c.BotStrategy)
	}

	if c.Output != "text" && c.Output != "json" {
		return fmt.Errorf("unknown output format %q (want text or json)", c.Output)
	}
	if c.AnimDelay < 0 {
		return fmt.Errorf("animation delay must not be negative")
	}
	return nil
}

// NewLogger builds the application logger. The terminal belongs to the game,
// so logs go to LogFile as JSON or are discarded. The returned closer must be
// closed when the command finishes.
func (c *Config) NewLogger() (*slog.Logger, io.Closer, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}

	if c.LogFile == "" {
		return slog.New(slog.NewJSONHandler(io.Discard, nil)), io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, f, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getDurationEnvOrDefault(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
