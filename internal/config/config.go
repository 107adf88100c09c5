package config

import (
	"os"
	"strconv"
	"strings"
)

// PartitionConfig holds settings for the external partitioning pipeline.
// The processing parameters (strategy, PDF splitting, failure tolerance,
// concurrency) are operational parameters of the pipeline and are passed
// through unchanged; this service does not interpret them.
type PartitionConfig struct {
	APIKey              string
	Endpoint            string
	Strategy            string
	SplitPDFPage        bool
	SplitPDFAllowFailed bool
	SplitPDFConcurrency int
	TimeoutSec          int
}

// GenAIConfig holds settings for the external generative-model collaborator.
type GenAIConfig struct {
	APIKey         string
	Model          string
	Endpoint       string
	TimeoutSec     int
	MaxPromptBytes int
}

// UsersConfig holds settings for the external user-management collaborator.
type UsersConfig struct {
	BaseURL    string
	APIKey     string
	TimeoutSec int
}

// StorageConfig holds the local directories used for uploads and for
// partition output artifacts.
type StorageConfig struct {
	UploadDir string
	OutputDir string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables once at process start.
// Sensitive values are not hardcoded.
type AppConfig struct {
	Port           string
	AllowedOrigins []string
	Storage        StorageConfig
	Partition      PartitionConfig
	GenAI          GenAIConfig
	Users          UsersConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		Port:           getEnv("PORT", "8000"),
		AllowedOrigins: splitOrigins(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		Storage: StorageConfig{
			UploadDir: getEnv("UPLOAD_DIRECTORY", "./uploaded_documents"),
			OutputDir: getEnv("OUTPUT_DIRECTORY", "./output"),
		},
		Partition: PartitionConfig{
			APIKey:              getEnv("UNSTRUCTUREDIO_API_KEY", ""),
			Endpoint:            getEnv("UNSTRUCTUREDIO_ENDPOINT", "https://api.unstructured.io/general/v0/general"),
			Strategy:            getEnv("PARTITION_STRATEGY", "hi_res"),
			SplitPDFPage:        getEnvBool("PARTITION_SPLIT_PDF_PAGE", true),
			SplitPDFAllowFailed: getEnvBool("PARTITION_SPLIT_PDF_ALLOW_FAILED", true),
			SplitPDFConcurrency: getEnvInt("PARTITION_SPLIT_PDF_CONCURRENCY", 15),
			TimeoutSec:          getEnvInt("PARTITION_TIMEOUT_SEC", 120),
		},
		GenAI: GenAIConfig{
			APIKey:         getEnv("GEMINI_API_KEY", ""),
			Model:          getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
			Endpoint:       getEnv("GEMINI_ENDPOINT", "https://generativelanguage.googleapis.com/v1beta"),
			TimeoutSec:     getEnvInt("GEMINI_TIMEOUT_SEC", 60),
			MaxPromptBytes: getEnvInt("MAX_PROMPT_BYTES", 4_000_000),
		},
		Users: UsersConfig{
			BaseURL:    getEnv("SUPABASE_URL", ""),
			APIKey:     getEnv("SUPABASE_KEY", ""),
			TimeoutSec: getEnvInt("USERS_TIMEOUT_SEC", 15),
		},
	}
}

// splitOrigins parses a comma-separated origin list, trimming whitespace
// and dropping empty entries.
func splitOrigins(s string) []string {
	parts := strings.Split(s, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if o := strings.TrimSpace(p); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
