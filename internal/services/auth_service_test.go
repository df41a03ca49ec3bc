package services

import (
	"errors"
	"testing"

	"github.com/terraincognita07/cyclenote/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type stubAuthUserRepository struct {
	users  map[string]models.User
	nextID uint
}

func newStubAuthUserRepository() *stubAuthUserRepository {
	return &stubAuthUserRepository{users: map[string]models.User{}}
}

func (stub *stubAuthUserRepository) ExistsByNormalizedEmail(email string) (bool, error) {
	_, ok := stub.users[email]
	return ok, nil
}

func (stub *stubAuthUserRepository) FindByNormalizedEmail(email string) (models.User, error) {
	user, ok := stub.users[email]
	if !ok {
		return models.User{}, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (stub *stubAuthUserRepository) FindByID(userID uint) (models.User, error) {
	for _, user := range stub.users {
		if user.ID == userID {
			return user, nil
		}
	}
	return models.User{}, gorm.ErrRecordNotFound
}

func (stub *stubAuthUserRepository) Create(user *models.User) error {
	stub.nextID++
	user.ID = stub.nextID
	stub.users[user.Email] = *user
	return nil
}

func (stub *stubAuthUserRepository) UpdatePassword(userID uint, passwordHash string) error {
	for email, user := range stub.users {
		if user.ID == userID {
			user.PasswordHash = passwordHash
			stub.users[email] = user
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func TestAuthServiceRegisterAndAuthenticate(t *testing.T) {
	service := NewAuthService(newStubAuthUserRepository()).WithHashCost(bcrypt.MinCost)

	user, err := service.Register("  Owner@Example.com ", "StrongPass1")
	if err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}
	if user.Email != "owner@example.com" || user.ID == 0 {
		t.Fatalf("unexpected user %#v", user)
	}

	if _, err := service.Register("owner@example.com", "StrongPass1"); !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}

	authenticated, err := service.Authenticate("OWNER@example.com", "StrongPass1")
	if err != nil {
		t.Fatalf("Authenticate() unexpected error: %v", err)
	}
	if authenticated.ID != user.ID {
		t.Fatalf("expected user %d, got %d", user.ID, authenticated.ID)
	}

	if _, err := service.Authenticate("owner@example.com", "WrongPass1"); !errors.Is(err, ErrAuthCredentialsInvalid) {
		t.Fatalf("expected ErrAuthCredentialsInvalid for wrong password, got %v", err)
	}
	if _, err := service.Authenticate("missing@example.com", "StrongPass1"); !errors.Is(err, ErrAuthCredentialsInvalid) {
		t.Fatalf("expected ErrAuthCredentialsInvalid for unknown email, got %v", err)
	}
}

func TestAuthServiceRegisterValidatesInput(t *testing.T) {
	service := NewAuthService(newStubAuthUserRepository()).WithHashCost(bcrypt.MinCost)

	if _, err := service.Register("not-an-email", "StrongPass1"); !errors.Is(err, ErrAuthCredentialsInvalid) {
		t.Fatalf("expected ErrAuthCredentialsInvalid, got %v", err)
	}
	for _, password := range []string{"short1A", "alllowercase1", "ALLUPPERCASE1", "NoDigitsHere"} {
		if _, err := service.Register("weak@example.com", password); !errors.Is(err, ErrWeakPassword) {
			t.Fatalf("expected ErrWeakPassword for %q, got %v", password, err)
		}
	}
}

func TestAuthServiceSetPassword(t *testing.T) {
	service := NewAuthService(newStubAuthUserRepository()).WithHashCost(bcrypt.MinCost)
	user, err := service.Register("reset@example.com", "StrongPass1")
	if err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}

	if err := service.SetPassword(user.ID, "NewStrong2"); err != nil {
		t.Fatalf("SetPassword() unexpected error: %v", err)
	}
	if _, err := service.Authenticate("reset@example.com", "NewStrong2"); err != nil {
		t.Fatalf("expected new password to authenticate, got %v", err)
	}

	if _, err := service.FindByID(999); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := service.FindByEmail("nobody@example.com"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound by email, got %v", err)
	}
}
