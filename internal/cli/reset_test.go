package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/terraincognita07/cyclenote/internal/db"
	"github.com/terraincognita07/cyclenote/internal/services"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func openCLITestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "cyclenote-cli-test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return database
}

func registerCLIUser(t *testing.T, database *gorm.DB, email string) uint {
	t.Helper()

	authService := services.NewAuthService(db.NewRepositories(database).Users).WithHashCost(bcrypt.MinCost)
	user, err := authService.Register(email, "StrongPass1")
	if err != nil {
		t.Fatalf("register user: %v", err)
	}
	return user.ID
}

func TestGenerateTemporaryPasswordMinimumLength(t *testing.T) {
	t.Parallel()

	password, err := generateTemporaryPassword(4)
	if err != nil {
		t.Fatalf("generateTemporaryPassword returned error: %v", err)
	}
	if len(password) != 8 {
		t.Fatalf("generateTemporaryPassword minimum len = %d, want 8", len(password))
	}
}

func TestGenerateTemporaryPasswordPassesPolicy(t *testing.T) {
	t.Parallel()

	for attempt := 0; attempt < 20; attempt++ {
		password, err := generateTemporaryPassword(temporaryPasswordLength)
		if err != nil {
			t.Fatalf("generateTemporaryPassword returned error: %v", err)
		}
		if err := services.ValidatePasswordStrength(password); err != nil {
			t.Fatalf("password %q fails policy: %v", password, err)
		}
		for _, char := range password {
			if !strings.ContainsRune(temporaryPasswordAlphabet, char) {
				t.Fatalf("password %q contains char %q outside alphabet", password, char)
			}
		}
	}
}

func TestResetPasswordSetsTemporaryPassword(t *testing.T) {
	t.Parallel()

	database := openCLITestDatabase(t)
	registerCLIUser(t, database, "reset@example.com")

	var out bytes.Buffer
	if err := ResetPassword(database, ResetPasswordOptions{Email: " RESET@example.com ", Out: &out}); err != nil {
		t.Fatalf("ResetPassword returned error: %v", err)
	}

	_, temporary, found := strings.Cut(out.String(), "Temporary password: ")
	if !found {
		t.Fatalf("expected temporary password in output, got %q", out.String())
	}
	temporary = strings.TrimSpace(temporary)

	authService := services.NewAuthService(db.NewRepositories(database).Users)
	if _, err := authService.Authenticate("reset@example.com", temporary); err != nil {
		t.Fatalf("expected temporary password to authenticate: %v", err)
	}
	if _, err := authService.Authenticate("reset@example.com", "StrongPass1"); err == nil {
		t.Fatal("expected old password to stop working")
	}
}

func TestResetPasswordRejectsUnknownOrInvalidEmail(t *testing.T) {
	t.Parallel()

	database := openCLITestDatabase(t)
	if err := ResetPassword(database, ResetPasswordOptions{Email: "missing@example.com"}); err == nil {
		t.Fatal("expected unknown user to fail")
	}
	if err := ResetPassword(database, ResetPasswordOptions{Email: "not-an-email"}); err == nil {
		t.Fatal("expected invalid email to fail")
	}
}

func TestResetPasswordPromptNeedsTerminal(t *testing.T) {
	t.Parallel()

	database := openCLITestDatabase(t)
	registerCLIUser(t, database, "prompt@example.com")

	err := ResetPassword(database, ResetPasswordOptions{Email: "prompt@example.com", Prompt: true})
	if err == nil || err != errNotTerminal {
		t.Fatalf("expected errNotTerminal, got %v", err)
	}
}

func TestWriteUserStatsPrintsInsights(t *testing.T) {
	t.Parallel()

	database := openCLITestDatabase(t)
	userID := registerCLIUser(t, database, "stats@example.com")

	logService := services.NewLogService(db.NewRepositories(database).SymptomLogs)
	for _, day := range []time.Time{
		time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.January, 29, 0, 0, 0, 0, time.UTC),
	} {
		if _, err := logService.SaveLog(userID, day, services.LogInput{Flow: 3, Mood: 5}); err != nil {
			t.Fatalf("save log: %v", err)
		}
	}

	var out bytes.Buffer
	today := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
	if err := WriteUserStats(database, "stats@example.com", today, &out); err != nil {
		t.Fatalf("WriteUserStats returned error: %v", err)
	}

	payload := struct {
		Email string `json:"email"`
		Cycle struct {
			AvgCycleLength int    `json:"avg_cycle_length"`
			NextPeriodDate string `json:"next_period_date"`
		} `json:"cycle"`
		ChatContext string `json:"chat_context"`
	}{}
	if err := json.Unmarshal(out.Bytes(), &payload); err != nil {
		t.Fatalf("decode output %q: %v", out.String(), err)
	}
	if payload.Email != "stats@example.com" || payload.Cycle.AvgCycleLength != 28 || payload.Cycle.NextPeriodDate != "2026-02-26" {
		t.Fatalf("unexpected stats output %#v", payload)
	}
	if !strings.Contains(payload.ChatContext, "Average cycle length: 28 days") {
		t.Fatalf("unexpected chat context %q", payload.ChatContext)
	}

	if err := WriteUserStats(database, "nobody@example.com", today, &out); err == nil {
		t.Fatal("expected unknown user to fail")
	}
}
