package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port        string
	Environment string
}

// OpenAIConfig holds settings for the extraction model.
type OpenAIConfig struct {
	APIKey      string
	Model       string
	MaxTokens   int
	TimeoutSecs int
}

// OCRConfig holds Tesseract settings for the scanned-document fallback.
type OCRConfig struct {
	TessdataPrefix string
}

// UploadConfig holds file upload limits.
type UploadConfig struct {
	MaxFileSizeMB int64
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string
}

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	OpenAI OpenAIConfig
	OCR    OCRConfig
	Upload UploadConfig
	CORS   CORSConfig
}

// Load reads configuration from environment variables with the TAXAN_
// prefix. The model API key is required; its absence is a startup error,
// never a per-request one.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("TAXAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")

	v.SetDefault("openai.api_key", "")
	v.SetDefault("openai.model", "gpt-4")
	v.SetDefault("openai.max_tokens", 2000)
	v.SetDefault("openai.timeout_secs", 120)

	v.SetDefault("ocr.tessdata_prefix", "/usr/share/tesseract-ocr/5/tessdata/")

	v.SetDefault("upload.max_file_size_mb", 32)

	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":             "TAXAN_SERVER_PORT",
		"server.environment":      "TAXAN_SERVER_ENVIRONMENT",
		"openai.api_key":          "TAXAN_OPENAI_API_KEY",
		"openai.model":            "TAXAN_OPENAI_MODEL",
		"openai.max_tokens":       "TAXAN_OPENAI_MAX_TOKENS",
		"openai.timeout_secs":     "TAXAN_OPENAI_TIMEOUT_SECS",
		"ocr.tessdata_prefix":     "TAXAN_OCR_TESSDATA_PREFIX",
		"upload.max_file_size_mb": "TAXAN_UPLOAD_MAX_FILE_SIZE_MB",
		"cors.allowed_origins":    "TAXAN_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:        v.GetString("server.port"),
			Environment: v.GetString("server.environment"),
		},
		OpenAI: OpenAIConfig{
			APIKey:      v.GetString("openai.api_key"),
			Model:       v.GetString("openai.model"),
			MaxTokens:   v.GetInt("openai.max_tokens"),
			TimeoutSecs: v.GetInt("openai.timeout_secs"),
		},
		OCR: OCRConfig{
			TessdataPrefix: v.GetString("ocr.tessdata_prefix"),
		},
		Upload: UploadConfig{
			MaxFileSizeMB: v.GetInt64("upload.max_file_size_mb"),
		},
		CORS: CORSConfig{
			AllowedOrigins: corsOrigins,
		},
	}

	if cfg.OpenAI.APIKey == "" {
		return nil, errors.New("TAXAN_OPENAI_API_KEY is not set")
	}

	return cfg, nil
}
