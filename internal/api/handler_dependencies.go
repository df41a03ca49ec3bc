package api

import (
	"errors"
	"time"

	"github.com/terraincognita07/cyclenote/internal/db"
	"github.com/terraincognita07/cyclenote/internal/services"
	"gorm.io/gorm"
)

func NewHandler(database *gorm.DB, secret string, location *time.Location, cookieSecure bool) (*Handler, error) {
	if database == nil {
		return nil, errors.New("database is required")
	}
	if secret == "" {
		return nil, errors.New("secret key is required")
	}
	if location == nil {
		location = time.UTC
	}

	handler := &Handler{
		secretKey:    []byte(secret),
		location:     location,
		cookieSecure: cookieSecure,
		now:          time.Now,
		loginLimiter: newAttemptLimiter(),
	}
	return handler.withDependencies(database), nil
}

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.authService = services.NewAuthService(handler.repositories.Users)
	handler.logService = services.NewLogService(handler.repositories.SymptomLogs)
	handler.insightsService = services.NewInsightsService(handler.logService)
	handler.exportService = services.NewExportService(handler.logService)
	return handler
}

// today is the current calendar day in the handler's configured time zone.
func (handler *Handler) today() time.Time {
	return services.DateAtLocation(handler.now(), handler.location)
}
