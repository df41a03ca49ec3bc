package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/terraincognita07/cyclenote/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrUserNotFound           = errors.New("user not found")
	ErrCreateUserFailed       = errors.New("create user failed")
)

type AuthUserRepository interface {
	ExistsByNormalizedEmail(email string) (bool, error)
	FindByNormalizedEmail(email string) (models.User, error)
	FindByID(userID uint) (models.User, error)
	Create(user *models.User) error
	UpdatePassword(userID uint, passwordHash string) error
}

type AuthService struct {
	users AuthUserRepository
	cost  int
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users, cost: bcrypt.DefaultCost}
}

// WithHashCost lowers the bcrypt cost; tests use bcrypt.MinCost to stay fast.
func (service *AuthService) WithHashCost(cost int) *AuthService {
	service.cost = cost
	return service
}

func (service *AuthService) Register(emailRaw string, passwordRaw string) (models.User, error) {
	email, password, err := NormalizeCredentialsInput(emailRaw, passwordRaw)
	if err != nil {
		return models.User{}, err
	}
	if err := ValidatePasswordStrength(password); err != nil {
		return models.User{}, err
	}

	exists, err := service.users.ExistsByNormalizedEmail(email)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrCreateUserFailed, err)
	}
	if exists {
		return models.User{}, ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), service.cost)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrCreateUserFailed, err)
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := service.users.Create(&user); err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrCreateUserFailed, err)
	}
	return user, nil
}

// Authenticate returns ErrAuthCredentialsInvalid for both unknown emails and wrong passwords.
func (service *AuthService) Authenticate(emailRaw string, passwordRaw string) (models.User, error) {
	email, password, err := NormalizeCredentialsInput(emailRaw, passwordRaw)
	if err != nil {
		return models.User{}, err
	}

	user, err := service.users.FindByNormalizedEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrAuthCredentialsInvalid
		}
		return models.User{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrAuthCredentialsInvalid
	}
	return user, nil
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	user, err := service.users.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, ErrUserNotFound
	}
	return user, err
}

func (service *AuthService) FindByEmail(emailRaw string) (models.User, error) {
	email := NormalizeAuthEmail(emailRaw)
	if email == "" {
		return models.User{}, ErrAuthCredentialsInvalid
	}
	user, err := service.users.FindByNormalizedEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, ErrUserNotFound
	}
	return user, err
}

func (service *AuthService) SetPassword(userID uint, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), service.cost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return service.users.UpdatePassword(userID, string(hash))
}
