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

// Server configures cmd/wheeld.
type Server struct {
	HTTPAddr     string
	LogLevel     slog.Level
	LLMProvider  string
	LLMModel     string
	GroqAPIKey   string
	GroqBaseURL  string
	GeminiAPIKey string
	LLMTimeout   time.Duration
}

// Client configures cmd/wheel.
type Client struct {
	LogLevel    slog.Level
	APIURL      string
	Store       string
	StoreDSN    string
	SupabaseURL string
	SupabaseKey string
	WheelSize   int
}

// LoadServer reads the server configuration from the environment, after
// loading an optional .env file.
func LoadServer() (Server, error) {
	if err := loadDotEnv(); err != nil {
		return Server{}, err
	}

	c := Server{
		HTTPAddr:     envOr("HTTP_ADDR", ":8080"),
		LLMProvider:  strings.ToLower(envOr("LLM_PROVIDER", "groq")),
		LLMModel:     os.Getenv("LLM_MODEL"),
		GroqAPIKey:   os.Getenv("GROQ_API_KEY"),
		GroqBaseURL:  envOr("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		LLMTimeout:   10 * time.Second,
	}

	if v := os.Getenv("LLM_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Server{}, fmt.Errorf("invalid LLM_TIMEOUT %q: %w", v, err)
		}
		c.LLMTimeout = d
	}

	level, err := parseLogLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		return Server{}, err
	}
	c.LogLevel = level

	switch c.LLMProvider {
	case "groq":
		if c.LLMModel == "" {
			c.LLMModel = "llama3-8b-8192"
		}
		if c.GroqAPIKey == "" {
			return Server{}, fmt.Errorf("GROQ_API_KEY is required when LLM_PROVIDER=groq")
		}
	case "gemini":
		if c.GeminiAPIKey == "" {
			return Server{}, fmt.Errorf("GEMINI_API_KEY is required when LLM_PROVIDER=gemini")
		}
	default:
		return Server{}, fmt.Errorf("invalid LLM_PROVIDER %q", c.LLMProvider)
	}

	return c, nil
}

// LoadClient reads the CLI configuration from the environment, after
// loading an optional .env file.
func LoadClient() (Client, error) {
	if err := loadDotEnv(); err != nil {
		return Client{}, err
	}

	c := Client{
		APIURL:      envOr("WHEEL_API_URL", "http://localhost:8080"),
		Store:       strings.ToLower(envOr("WHEEL_STORE", "file")),
		StoreDSN:    os.Getenv("WHEEL_STORE_DSN"),
		SupabaseURL: os.Getenv("SUPABASE_URL"),
		SupabaseKey: os.Getenv("SUPABASE_KEY"),
		WheelSize:   500,
	}

	if v := os.Getenv("WHEEL_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Client{}, fmt.Errorf("invalid WHEEL_SIZE %q", v)
		}
		c.WheelSize = n
	}

	level, err := parseLogLevel(envOr("LOG_LEVEL", "warn"))
	if err != nil {
		return Client{}, err
	}
	c.LogLevel = level

	switch c.Store {
	case "memory", "file", "sqlite", "mysql", "supabase":
	default:
		return Client{}, fmt.Errorf("invalid WHEEL_STORE %q", c.Store)
	}

	return c, nil
}

// loadDotEnv loads .env from the working directory when present. Variables
// already set in the environment win.
func loadDotEnv() error {
	err := godotenv.Load()
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load .env: %w", err)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
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
