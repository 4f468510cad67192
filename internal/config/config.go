package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr          string
	LogLevel          slog.Level
	OpenAIAPIKey      string
	OpenAIBaseURL     string
	OpenAIModel       string
	OpenAIMaxTokens   int
	LLMTimeout        time.Duration
	MailerLiteAPIKey  string
	MailerLiteGroupID string
	MailerLiteBaseURL string
	MailingTimeout    time.Duration
}

// Load reads an optional .env file, then the process environment.
// Variables already set in the environment win over the file.
func Load() (Config, error) {
	return LoadFile(".env")
}

// LoadFile is Load with an explicit dotenv path. A missing file is ignored.
func LoadFile(path string) (Config, error) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", path, err)
	}

	c := Config{
		HTTPAddr:          envOr("HTTP_ADDR", ":3000"),
		OpenAIAPIKey:      os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:     envOr("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		OpenAIModel:       envOr("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIMaxTokens:   600,
		LLMTimeout:        30 * time.Second,
		MailerLiteAPIKey:  os.Getenv("MAILERLITE_API_KEY"),
		MailerLiteGroupID: os.Getenv("MAILERLITE_GROUP_ID"),
		MailerLiteBaseURL: envOr("MAILERLITE_BASE_URL", "https://connect.mailerlite.com/api"),
		MailingTimeout:    10 * time.Second,
	}

	if v := os.Getenv("OPENAI_MAX_TOKENS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return Config{}, fmt.Errorf("invalid OPENAI_MAX_TOKENS %q", v)
		}
		c.OpenAIMaxTokens = n
	}

	var err error
	if c.LLMTimeout, err = durationOr("LLM_TIMEOUT", c.LLMTimeout); err != nil {
		return Config{}, err
	}
	if c.MailingTimeout, err = durationOr("MAILING_TIMEOUT", c.MailingTimeout); err != nil {
		return Config{}, err
	}

	level, err := parseLogLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, err
	}
	c.LogLevel = level

	if c.OpenAIAPIKey == "" {
		return Config{}, fmt.Errorf("OPENAI_API_KEY is required")
	}

	return c, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationOr(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL %q", s)
	}
}
