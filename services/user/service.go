package user

import (
	"context"
	"errors"
	"fmt"

	userRepo "voyago/database/repository/user"
	"voyago/models"
	"voyago/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrEmailTaken signals a registration against an existing email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials signals a failed login.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Service handles account registration and authentication.
type Service interface {
	Register(ctx context.Context, input models.RegisterInput) (*models.User, error)
	Authenticate(ctx context.Context, input models.LoginInput) (*models.User, string, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// DefaultService is the production Service implementation.
type DefaultService struct {
	Repo   userRepo.UserRepository
	Tokens *utils.TokenIssuer
	Logger *zap.Logger
}

// Register creates a new account with a bcrypt-hashed password. The role
// defaults to guest when not supplied.
func (s *DefaultService) Register(ctx context.Context, input models.RegisterInput) (*models.User, error) {
	if _, err := s.Repo.GetByEmail(input.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, userRepo.ErrNotFound) {
		return nil, fmt.Errorf("check existing email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	role := input.Role
	switch role {
	case models.RoleGuest, models.RoleHost, models.RoleAdmin:
	default:
		role = models.RoleGuest
	}

	u := &models.User{
		ID:           uuid.New().String(),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PhoneNumber:  input.PhoneNumber,
		Role:         role,
		PasswordHash: string(hash),
	}
	if err := s.Repo.Create(u); err != nil {
		return nil, fmt.Errorf("persist user: %w", err)
	}

	s.Logger.Info("user registered", zap.String("user_id", u.ID))
	return u, nil
}

// Authenticate verifies the credentials and issues a signed token.
func (s *DefaultService) Authenticate(ctx context.Context, input models.LoginInput) (*models.User, string, error) {
	u, err := s.Repo.GetByEmail(input.Email)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("fetch user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(input.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.Tokens.Generate(u.ID, u.Email)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return u, token, nil
}

// GetByID fetches a user account.
func (s *DefaultService) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.Repo.GetByID(id)
}
