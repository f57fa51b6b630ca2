package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database   DatabaseConfig
	Server     ServerConfig
	Extraction ExtractionConfig
	Remote     RemoteConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds the peer HTTP API configuration.
type ServerConfig struct {
	HTTPAddr string
	// APIKey enables bearer auth on the peer API when non-empty.
	APIKey string
}

// ExtractionConfig holds orchestration configuration.
type ExtractionConfig struct {
	// LocalMode runs adapters in-process; otherwise jobs are delegated
	// to the remote peer.
	LocalMode    bool
	ProfilesPath string
	Workers      int
	QueueSize    int
	JobTimeout   time.Duration
}

// RemoteConfig holds the remote extraction peer client configuration.
type RemoteConfig struct {
	BaseURL string
	APIKey  string
	// ConnectTimeout bounds dialing; ReadTimeout bounds the full
	// request and is generous since remote inference can be slow.
	ConnectTimeout time.Duration
	ReadTimeout    time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			HTTPAddr: getEnv("HTTP_ADDR", ":8080"),
			APIKey:   getEnv("API_KEY", ""),
		},
		Extraction: ExtractionConfig{
			LocalMode:    getEnvAsBool("LOCAL_MODE", true),
			ProfilesPath: getEnv("PROFILES_PATH", "profiles.yaml"),
			Workers:      getEnvAsInt("EXTRACTION_WORKERS", 2),
			QueueSize:    getEnvAsInt("EXTRACTION_QUEUE_SIZE", 64),
			JobTimeout:   getEnvAsDuration("EXTRACTION_JOB_TIMEOUT", 30*time.Minute),
		},
		Remote: RemoteConfig{
			BaseURL:        getEnv("REMOTE_URL", ""),
			APIKey:         getEnv("REMOTE_API_KEY", ""),
			ConnectTimeout: getEnvAsDuration("REMOTE_CONNECT_TIMEOUT", 5*time.Second),
			ReadTimeout:    getEnvAsDuration("REMOTE_READ_TIMEOUT", 10*time.Minute),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// ValidateConfig validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Server.HTTPAddr == "" {
		return NewAppError("CONFIG_ERROR", "HTTP_ADDR is required", ErrInvalidInput)
	}
	if c.Extraction.ProfilesPath == "" {
		return NewAppError("CONFIG_ERROR", "PROFILES_PATH is required", ErrInvalidInput)
	}
	if !c.Extraction.LocalMode && c.Remote.BaseURL == "" {
		return NewAppError("CONFIG_ERROR", "REMOTE_URL is required when LOCAL_MODE=false", ErrInvalidInput)
	}
	return nil
}
