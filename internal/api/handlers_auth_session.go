package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyclenote/internal/logger"
	"github.com/terraincognita07/cyclenote/internal/models"
	"github.com/terraincognita07/cyclenote/internal/services"
)

func (handler *Handler) Register(c *fiber.Ctx) error {
	credentials, err := parseCredentials(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user, err := handler.authService.Register(credentials.Email, credentials.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrWeakPassword):
			return apiError(c, fiber.StatusBadRequest, "weak password")
		case errors.Is(err, services.ErrAuthCredentialsInvalid):
			return apiError(c, fiber.StatusBadRequest, "invalid input")
		case errors.Is(err, services.ErrEmailAlreadyRegistered):
			return apiError(c, fiber.StatusConflict, "email already exists")
		default:
			return internalError(c, err, "failed to create account")
		}
	}

	logger.WithUser(user.ID).Info("account registered")
	return handler.startSession(c, &user, fiber.StatusCreated)
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	credentials, err := parseCredentials(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	limiterKey := loginLimiterKey(c, credentials.Email)
	now := handler.now()
	if handler.loginLimiter.blocked(limiterKey, now, loginAttemptLimit, loginAttemptWindow) {
		return apiError(c, fiber.StatusTooManyRequests, "too many login attempts")
	}

	user, err := handler.authService.Authenticate(credentials.Email, credentials.Password)
	if err != nil {
		if errors.Is(err, services.ErrAuthCredentialsInvalid) {
			handler.loginLimiter.recordFailure(limiterKey, now, loginAttemptWindow)
			return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
		}
		return internalError(c, err, "failed to sign in")
	}

	handler.loginLimiter.clear(limiterKey)
	return handler.startSession(c, &user, fiber.StatusOK)
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) CurrentUser(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(userResponse(user))
}

// startSession sets the auth cookie and also returns the token for clients that send
// it as a bearer header instead.
func (handler *Handler) startSession(c *fiber.Ctx, user *models.User, status int) error {
	token, err := handler.buildToken(user, authTokenTTL)
	if err != nil {
		return internalError(c, err, "failed to create session")
	}
	handler.setAuthCookie(c, token)

	return c.Status(status).JSON(fiber.Map{
		"token": token,
		"user":  userResponse(user),
	})
}

func userResponse(user *models.User) fiber.Map {
	return fiber.Map{
		"id":    user.ID,
		"email": user.Email,
	}
}
