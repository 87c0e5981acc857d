package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort    string
	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string
	DbParams   string

	JwtSecret   string
	JwtIssuer   string
	JwtTokenTTL time.Duration

	VoiceBaseURL  string
	VoiceAPIKey   string
	VoiceCallerID string

	// Daily trigger times in HH:MM, server-local wall clock.
	PriorityRefreshAt string
	OverdueSweepAt    string

	TrustedProxies []string
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppPort:    getEnv("APP_PORT", "8080"),
		DbHost:     getEnv("MYSQL_HOST", "db"),
		DbPort:     getEnv("MYSQL_PORT", "3306"),
		DbUser:     getEnv("MYSQL_USER", "taskcall"),
		DbPassword: getEnv("MYSQL_PASSWORD", "taskcall"),
		DbName:     getEnv("MYSQL_DATABASE", "taskcall"),
		DbParams:   getEnv("MYSQL_PARAMS", "parseTime=true&multiStatements=true"),

		JwtSecret:   getEnv("JWT_SECRET", ""),
		JwtIssuer:   getEnv("JWT_ISSUER", "taskcall"),
		JwtTokenTTL: getEnvDuration("JWT_TOKEN_TTL", 24*time.Hour),

		VoiceBaseURL:  getEnv("VOICE_BASE_URL", ""),
		VoiceAPIKey:   getEnv("VOICE_API_KEY", ""),
		VoiceCallerID: getEnv("VOICE_CALLER_ID", ""),

		PriorityRefreshAt: getEnv("PRIORITY_REFRESH_AT", "00:30"),
		OverdueSweepAt:    getEnv("OVERDUE_SWEEP_AT", "09:00"),

		TrustedProxies: parseTrustedProxies(os.Getenv("TRUSTED_PROXIES")),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func parseTrustedProxies(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	proxies := make([]string, 0, len(parts))
	for _, part := range parts {
		proxy := strings.TrimSpace(part)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}
