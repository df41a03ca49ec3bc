package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validSecret = "0123456789abcdef0123456789abcdef"

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "DB_PATH", "SECRET_KEY", "TZ", "LOG_LEVEL", "ENVIRONMENT", "COOKIE_SECURE",
		"TELEGRAM_BOT_TOKEN", "TELEGRAM_CHAT_ID", "REMINDER_DAYS_AHEAD", "REMINDER_CRON",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("SECRET_KEY", validSecret)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "UTC", cfg.TimeZone)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 2, cfg.ReminderDaysAhead)
	assert.Equal(t, "0 9 * * *", cfg.ReminderCron)
	assert.False(t, cfg.CookieSecure)
	assert.False(t, cfg.RemindersEnabled())
}

func TestLoadRejectsWeakSecrets(t *testing.T) {
	for _, secret := range []string{"", "change_me_in_production", "too-short-secret"} {
		clearEnv(t)
		t.Setenv("SECRET_KEY", secret)

		_, err := Load()
		assert.Error(t, err, "secret %q should be rejected", secret)
	}
}

func TestLoadParsesReminderSettings(t *testing.T) {
	clearEnv(t)
	t.Setenv("SECRET_KEY", validSecret)
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("TELEGRAM_CHAT_ID", "-100200300")
	t.Setenv("REMINDER_DAYS_AHEAD", "3")
	t.Setenv("COOKIE_SECURE", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, int64(-100200300), cfg.TelegramChatID)
	assert.Equal(t, 3, cfg.ReminderDaysAhead)
	assert.True(t, cfg.CookieSecure)
	assert.True(t, cfg.RemindersEnabled())
}

func TestLoadRejectsInvalidNumbers(t *testing.T) {
	cases := map[string]string{
		"PORT":                "not-a-port",
		"TELEGRAM_CHAT_ID":    "chat",
		"REMINDER_DAYS_AHEAD": "-1",
		"COOKIE_SECURE":       "maybe",
	}
	for key, value := range cases {
		clearEnv(t)
		t.Setenv("SECRET_KEY", validSecret)
		t.Setenv(key, value)

		_, err := Load()
		assert.Error(t, err, "%s=%q should be rejected", key, value)
	}
}

func TestLocationFallsBackToUTC(t *testing.T) {
	cfg := &Config{TimeZone: "UTC"}
	location, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", location.String())

	cfg.TimeZone = "Mars/Olympus"
	location, err = cfg.Location()
	assert.Error(t, err)
	assert.Equal(t, time.UTC, location)
}

func TestDatabasePathUsesEnvironment(t *testing.T) {
	clearEnv(t)
	assert.Equal(t, filepath.FromSlash(defaultDBPath), DatabasePath())

	t.Setenv("DB_PATH", "/tmp/custom.db")
	assert.Equal(t, "/tmp/custom.db", DatabasePath())
}

func TestTimeZoneLocationUsesEnvironment(t *testing.T) {
	clearEnv(t)
	location, err := TimeZoneLocation()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, location)

	t.Setenv("TZ", "Mars/Olympus")
	location, err = TimeZoneLocation()
	assert.Error(t, err)
	assert.Equal(t, time.UTC, location)
}
