package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort        string
	DbHost         string
	DbPort         string
	DbUser         string
	DbPassword     string
	DbName         string
	DbParams       string
	TrustedProxies []string

	JwtSecret   string
	JwtTTL      time.Duration
	JwtIssuer   string
	BcryptCost  int
	SmtpHost    string
	SmtpPort    string
	SmtpUser    string
	SmtpPass    string
	MailFrom    string
	MailTimeout time.Duration
	DueSoonScan time.Duration
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppPort:        getEnv("APP_PORT", "8080"),
		DbHost:         getEnv("MYSQL_HOST", "db"),
		DbPort:         getEnv("MYSQL_PORT", "3306"),
		DbUser:         getEnv("MYSQL_USER", "taskman"),
		DbPassword:     getEnv("MYSQL_PASSWORD", "taskman"),
		DbName:         getEnv("MYSQL_DATABASE", "taskman"),
		DbParams:       getEnv("MYSQL_PARAMS", "parseTime=true&multiStatements=true"),
		TrustedProxies: parseTrustedProxies(os.Getenv("TRUSTED_PROXIES")),

		JwtSecret:   getEnv("JWT_SECRET", "change-me-in-production"),
		JwtTTL:      getDurationEnv("JWT_TTL", 24*time.Hour),
		JwtIssuer:   getEnv("JWT_ISSUER", "task-management-system"),
		BcryptCost:  getIntEnv("BCRYPT_COST", 12),
		SmtpHost:    getEnv("SMTP_HOST", "localhost"),
		SmtpPort:    getEnv("SMTP_PORT", "587"),
		SmtpUser:    getEnv("SMTP_USER", ""),
		SmtpPass:    getEnv("SMTP_PASSWORD", ""),
		MailFrom:    getEnv("MAIL_FROM", "no-reply@taskman.local"),
		MailTimeout: getDurationEnv("MAIL_TIMEOUT", 5*time.Second),
		DueSoonScan: getDurationEnv("DUE_SOON_SCAN_INTERVAL", 20*time.Minute),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
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
