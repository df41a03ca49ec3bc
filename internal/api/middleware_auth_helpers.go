package api

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/terraincognita07/cyclenote/internal/models"
)

var errMissingToken = errors.New("missing auth token")

// requestToken prefers the session cookie and falls back to an Authorization bearer token.
func requestToken(c *fiber.Ctx) (string, error) {
	if token := strings.TrimSpace(c.Cookies(authCookieName)); token != "" {
		return token, nil
	}

	header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", errMissingToken
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", errMissingToken
	}
	return token, nil
}

func (handler *Handler) authenticateRequest(c *fiber.Ctx) (*models.User, error) {
	tokenValue, err := requestToken(c)
	if err != nil {
		return nil, err
	}

	claims := &authClaims{}
	token, err := jwt.ParseWithClaims(tokenValue, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return handler.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(time.Now()) {
		return nil, errors.New("token expired")
	}

	user, err := handler.authService.FindByID(claims.UserID)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
