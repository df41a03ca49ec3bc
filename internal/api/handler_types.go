package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/terraincognita07/cyclenote/internal/db"
	"github.com/terraincognita07/cyclenote/internal/services"
)

type Handler struct {
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
	now          func() time.Time
	loginLimiter *attemptLimiter

	repositories    *db.Repositories
	authService     *services.AuthService
	logService      *services.LogService
	insightsService *services.InsightsService
	exportService   *services.ExportService
}

const (
	authTokenTTL = 7 * 24 * time.Hour

	loginAttemptLimit  = 8
	loginAttemptWindow = 15 * time.Minute
)

type authClaims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}
