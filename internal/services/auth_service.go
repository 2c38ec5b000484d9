package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/synergyspace/idea-api/internal/auth"
	"github.com/synergyspace/idea-api/internal/models"
	"github.com/synergyspace/idea-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken        = errors.New("user already exists")
	ErrLoginRequired        = errors.New("login is empty")
	ErrPasswordRequired     = errors.New("password is empty")
	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// AuthService handles registration and credential verification.
type AuthService struct {
	userRepo repository.UserRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
	}
}

// RegisterInput represents the credential payload for registration.
type RegisterInput struct {
	Login    string
	Password string
}

// Register hashes the password and persists a new user. The username must not
// be taken; the unique index on users.username backs the pre-check under
// concurrent registrations.
func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	login := strings.TrimSpace(input.Login)
	if login == "" {
		return nil, ErrLoginRequired
	}
	if input.Password == "" {
		return nil, ErrPasswordRequired
	}

	if _, err := s.userRepo.FindByUsername(login); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	hashedPassword, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		Username:     login,
		PasswordHash: hashedPassword,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Login    string
	Password string
}

// Login verifies credentials and returns the authenticated user. An unknown
// username, empty password or hash mismatch all yield ErrInvalidCredentials.
func (s *AuthService) Login(input LoginInput) (*models.User, error) {
	if input.Password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.FindByUsername(input.Login)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !auth.CheckPassword(input.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}