package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds runtime configuration loaded from environment variables.
type Config struct {
	DatabaseURL            string
	JWTSecret              string
	JWTIssuer              string
	TokenTTLSeconds        int64
	UploadPath             string
	CorsOrigins            []string
	Environment            string
	LoginRateWindowSeconds int
	LoginRateMax           int
	MetricsDiskPath        string
	MetricsSampleSeconds   int
}

func Load() Config {
	return Config{
		DatabaseURL:            mustEnv("DATABASE_URL"),
		JWTSecret:              mustEnv("JWT_SECRET"),
		JWTIssuer:              envOr("JWT_ISSUER", "abroberts"),
		TokenTTLSeconds:        int64(envOrInt("TOKEN_TTL_SECONDS", 86400)),
		UploadPath:             envOr("UPLOAD_PATH", "storage/uploads"),
		CorsOrigins:            parseCSV(envOr("CORS_ORIGINS", "")),
		Environment:            envOr("APP_ENV", "development"),
		LoginRateWindowSeconds: envOrInt("LOGIN_RATE_WINDOW_SECONDS", 900),
		LoginRateMax:           envOrInt("LOGIN_RATE_MAX", 5),
		MetricsDiskPath:        envOr("METRICS_DISK_PATH", "storage/uploads"),
		MetricsSampleSeconds:   envOrInt("METRICS_SAMPLE_INTERVAL", 30),
	}
}

// IsProduction reports whether error details should be withheld from clients.
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

func mustEnv(key string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		panic("missing env var: " + key)
	}
	return value
}

func envOr(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func envOrInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func parseCSV(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		value := strings.TrimSpace(part)
		if value != "" {
			items = append(items, value)
		}
	}
	return items
}
