package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/terraincognita07/cyclenote/internal/db"
	"github.com/terraincognita07/cyclenote/internal/services"
	"gorm.io/gorm"
)

type userStats struct {
	Email string `json:"email"`
	services.Insights
	ChatContext string `json:"chat_context"`
}

func RunStatsCommand(dbPath string, email string, today time.Time, out io.Writer) error {
	database, closeDatabase, err := openDatabase(dbPath)
	if err != nil {
		return err
	}
	defer closeDatabase()

	return WriteUserStats(database, email, today, out)
}

// WriteUserStats prints the cycle statistics and symptom patterns for one user as JSON.
func WriteUserStats(database *gorm.DB, email string, today time.Time, out io.Writer) error {
	repositories := db.NewRepositories(database)
	user, err := services.NewAuthService(repositories.Users).FindByEmail(email)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) || errors.Is(err, services.ErrAuthCredentialsInvalid) {
			return fmt.Errorf("user %q not found", email)
		}
		return fmt.Errorf("load user: %w", err)
	}

	insightsService := services.NewInsightsService(services.NewLogService(repositories.SymptomLogs))
	insights, err := insightsService.Overview(user.ID)
	if err != nil {
		return fmt.Errorf("compute insights: %w", err)
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(userStats{
		Email:       user.Email,
		Insights:    insights,
		ChatContext: services.BuildChatContext(insights, today),
	})
}
