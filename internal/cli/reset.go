package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/terraincognita07/cyclenote/internal/db"
	"github.com/terraincognita07/cyclenote/internal/services"
	"github.com/terraincognita07/cyclenote/internal/security"
	"gorm.io/gorm"
)

const (
	temporaryPasswordLength   = 12
	temporaryPasswordAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"
)

type ResetPasswordOptions struct {
	Email string
	// Prompt reads the new password from Terminal instead of generating one.
	Prompt   bool
	Terminal *os.File
	Out      io.Writer
}

func RunResetPasswordCommand(dbPath string, options ResetPasswordOptions) error {
	database, closeDatabase, err := openDatabase(dbPath)
	if err != nil {
		return err
	}
	defer closeDatabase()

	return ResetPassword(database, options)
}

func ResetPassword(database *gorm.DB, options ResetPasswordOptions) error {
	if options.Out == nil {
		options.Out = io.Discard
	}
	email := services.NormalizeAuthEmail(options.Email)
	if email == "" {
		return errors.New("a valid email is required")
	}

	authService := services.NewAuthService(db.NewRepositories(database).Users)
	user, err := authService.FindByEmail(email)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return fmt.Errorf("user %s not found", email)
		}
		return fmt.Errorf("load user: %w", err)
	}

	password, err := resolveNewPassword(options)
	if err != nil {
		return err
	}
	if err := authService.SetPassword(user.ID, password); err != nil {
		return fmt.Errorf("update user password: %w", err)
	}

	fmt.Fprintf(options.Out, "Password reset for %s\n", email)
	if !options.Prompt {
		fmt.Fprintf(options.Out, "Temporary password: %s\n", password)
	}
	return nil
}

func resolveNewPassword(options ResetPasswordOptions) (string, error) {
	if !options.Prompt {
		password, err := generateTemporaryPassword(temporaryPasswordLength)
		if err != nil {
			return "", fmt.Errorf("generate temporary password: %w", err)
		}
		return password, nil
	}

	password, err := promptNewPassword(options.Terminal, options.Out)
	if err != nil {
		return "", err
	}
	if err := services.ValidatePasswordStrength(password); err != nil {
		return "", errors.New("password needs at least 8 characters with upper case, lower case and a digit")
	}
	return password, nil
}

// generateTemporaryPassword retries until the result passes the login password policy.
func generateTemporaryPassword(length int) (string, error) {
	if length < 8 {
		length = 8
	}
	for {
		password, err := security.RandomString(length, temporaryPasswordAlphabet)
		if err != nil {
			return "", err
		}
		if services.ValidatePasswordStrength(password) == nil {
			return password, nil
		}
	}
}
