package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	minSecretKeyLength = 32
	defaultDBPath      = "data/cyclenote.db"
)

var insecureSecretPlaceholders = map[string]struct{}{
	"change_me_in_production":                    {},
	"replace_with_at_least_32_random_characters": {},
}

type Config struct {
	Port         string
	DBPath       string
	SecretKey    string
	TimeZone     string
	LogLevel     string
	Environment  string
	CookieSecure bool

	TelegramBotToken  string
	TelegramChatID    int64
	ReminderDaysAhead int
	ReminderCron      string
}

// Load reads configuration from the environment. A .env file in the working directory,
// when present, fills in variables that are not already set.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		DBPath:       getEnv("DB_PATH", filepath.FromSlash(defaultDBPath)),
		TimeZone:     getEnv("TZ", "UTC"),
		LogLevel:     strings.ToLower(getEnv("LOG_LEVEL", "info")),
		Environment:  strings.ToLower(getEnv("ENVIRONMENT", "development")),
		ReminderCron: getEnv("REMINDER_CRON", "0 9 * * *"),

		TelegramBotToken: strings.TrimSpace(os.Getenv("TELEGRAM_BOT_TOKEN")),
	}

	secret, err := resolveSecretKey()
	if err != nil {
		return nil, err
	}
	cfg.SecretKey = secret

	if err := validatePort(cfg.Port); err != nil {
		return nil, err
	}

	cfg.CookieSecure, err = parseBoolEnv("COOKIE_SECURE", false)
	if err != nil {
		return nil, err
	}

	if raw := strings.TrimSpace(os.Getenv("TELEGRAM_CHAT_ID")); raw != "" {
		cfg.TelegramChatID, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
		}
	}

	cfg.ReminderDaysAhead = 2
	if raw := strings.TrimSpace(os.Getenv("REMINDER_DAYS_AHEAD")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return nil, fmt.Errorf("invalid REMINDER_DAYS_AHEAD %q", raw)
		}
		cfg.ReminderDaysAhead = parsed
	}

	return cfg, nil
}

// DatabasePath resolves DB_PATH for maintenance commands that do not need the
// server settings validated by Load.
func DatabasePath() string {
	_ = godotenv.Load()
	return getEnv("DB_PATH", filepath.FromSlash(defaultDBPath))
}

// Location resolves TZ. An unknown zone name is reported together with UTC as fallback.
func (cfg *Config) Location() (*time.Location, error) {
	return loadLocation(cfg.TimeZone)
}

// TimeZoneLocation resolves TZ for maintenance commands, with the same fallback as Location.
func TimeZoneLocation() (*time.Location, error) {
	_ = godotenv.Load()
	return loadLocation(getEnv("TZ", "UTC"))
}

func loadLocation(name string) (*time.Location, error) {
	location, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC, fmt.Errorf("invalid TZ %q: %w", name, err)
	}
	return location, nil
}

func (cfg *Config) RemindersEnabled() bool {
	return cfg.TelegramBotToken != "" && cfg.TelegramChatID != 0
}

func resolveSecretKey() (string, error) {
	secret := strings.TrimSpace(os.Getenv("SECRET_KEY"))
	if secret == "" {
		return "", errors.New("SECRET_KEY is not set")
	}
	if _, insecure := insecureSecretPlaceholders[strings.ToLower(secret)]; insecure {
		return "", errors.New("SECRET_KEY uses an insecure placeholder value")
	}
	if len(secret) < minSecretKeyLength {
		return "", fmt.Errorf("SECRET_KEY must be at least %d characters", minSecretKeyLength)
	}
	return secret, nil
}

func validatePort(raw string) error {
	port, err := strconv.Atoi(raw)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid PORT %q", raw)
	}
	return nil
}

func parseBoolEnv(key string, fallback bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return value, nil
}

func getEnv(key string, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}
