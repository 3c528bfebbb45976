package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

// Config struct holds all configuration values needed by the application.
// The struct tags (mapstructure) tell Viper how to map environment variables to struct fields.
type Config struct {
	ServerAddress   string        `mapstructure:"SERVER_ADDRESS"`    // Address where the server will run (e.g., "0.0.0.0:8080")
	GeminiAPIURL    string        `mapstructure:"GEMINI_API_URL"`    // Base URL of the Gemini REST API
	GeminiAPIKey    string        `mapstructure:"GEMINI_API_KEY"`    // API key for accessing Gemini
	GeminiModel     string        `mapstructure:"GEMINI_MODEL"`      // Model used for generateContent calls
	LLMBackend      string        `mapstructure:"LLM_BACKEND"`       // "http" (raw REST) or "sdk" (google genai SDK)
	LLMTimeout      time.Duration `mapstructure:"LLM_TIMEOUT"`       // 0 means no client-side timeout
	CacheCapacity   int           `mapstructure:"CACHE_CAPACITY"`    // 0 means unbounded
	CacheTTL        time.Duration `mapstructure:"CACHE_TTL"`         // 0 means entries never expire
	PDICacheEnabled bool          `mapstructure:"PDI_CACHE_ENABLED"` // Serve PDI searches from cache
	FrontendURL     string        `mapstructure:"FRONTEND_URL"`      // Allowed CORS origin, "*" when empty
	LogLevel        string        `mapstructure:"LOG_LEVEL"`
	GinMode         string        `mapstructure:"GIN_MODE"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
}

// Backends accepted by LLM_BACKEND.
const (
	BackendHTTP = "http"
	BackendSDK  = "sdk"
)

// defaults are registered before reading so that environment-only deployments
// (no app.env file) still unmarshal every key.
var defaults = map[string]any{
	"SERVER_ADDRESS":    "0.0.0.0:8080",
	"GEMINI_API_URL":    "https://generativelanguage.googleapis.com/v1beta",
	"GEMINI_API_KEY":    "",
	"GEMINI_MODEL":      "gemini-1.5-flash",
	"LLM_BACKEND":       BackendHTTP,
	"LLM_TIMEOUT":       "0s",
	"CACHE_CAPACITY":    0,
	"CACHE_TTL":         "0s",
	"PDI_CACHE_ENABLED": false,
	"FRONTEND_URL":      "",
	"LOG_LEVEL":         "info",
	"GIN_MODE":          "release",
	"SHUTDOWN_TIMEOUT":  "10s",
}

// LoadConfig loads environment variables from a file and environment into the Config struct.
// The app.env file is optional; values from the process environment take precedence.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()

	// Add the directory where the config file is located
	v.AddConfigPath(path)

	// Specify the name of the config file (without extension)
	v.SetConfigName("app")

	// Specify the file type. In this case, we're using a .env-style file
	v.SetConfigType("env")

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	// Automatically read in any environment variables that match the keys
	v.AutomaticEnv()

	// Read the config file; a missing file just means we run on env + defaults
	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return
		}
		err = nil
	}

	// Unmarshal the config values into the Config struct
	err = v.Unmarshal(&config)
	return
}
