package user

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	userRepo "voyago/database/repository/user"
	"voyago/models"
	"voyago/utils"

	"go.uber.org/zap"
)

// ============================================
// Mocks
// ============================================

type mockUserRepo struct {
	users map[string]*models.User
}

func (m *mockUserRepo) Create(u *models.User) error {
	m.users[u.ID] = u
	return nil
}

func (m *mockUserRepo) GetByID(id string) (*models.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, userRepo.ErrNotFound)
	}
	return u, nil
}

func (m *mockUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", email, userRepo.ErrNotFound)
}

func newTestService() (*DefaultService, *mockUserRepo) {
	repo := &mockUserRepo{users: make(map[string]*models.User)}
	svc := &DefaultService{
		Repo:   repo,
		Tokens: utils.NewTokenIssuer("test-secret", time.Hour),
		Logger: zap.NewNop(),
	}
	return svc, repo
}

// ============================================
// Tests
// ============================================

func TestRegister_HashesPasswordAndDefaultsRole(t *testing.T) {
	svc, _ := newTestService()

	u, err := svc.Register(context.Background(), models.RegisterInput{
		FirstName: "Jane", LastName: "Doe",
		Email: "jane@example.com", Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if u.Role != models.RoleGuest {
		t.Errorf("expected default role guest, got %s", u.Role)
	}
	if u.PasswordHash == "" || u.PasswordHash == "correct horse" {
		t.Error("expected the password to be stored hashed")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newTestService()

	input := models.RegisterInput{
		FirstName: "Jane", LastName: "Doe",
		Email: "jane@example.com", Password: "correct horse",
	}
	if _, err := svc.Register(context.Background(), input); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}

	_, err := svc.Register(context.Background(), input)
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestRegister_UnknownRoleFallsBackToGuest(t *testing.T) {
	svc, _ := newTestService()

	u, err := svc.Register(context.Background(), models.RegisterInput{
		FirstName: "Jane", LastName: "Doe",
		Email: "jane@example.com", Password: "correct horse", Role: "superuser",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if u.Role != models.RoleGuest {
		t.Errorf("expected unknown role to fall back to guest, got %s", u.Role)
	}
}

func TestAuthenticate_Success(t *testing.T) {
	svc, _ := newTestService()

	registered, err := svc.Register(context.Background(), models.RegisterInput{
		FirstName: "Jane", LastName: "Doe",
		Email: "jane@example.com", Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	u, token, err := svc.Authenticate(context.Background(), models.LoginInput{
		Email: "jane@example.com", Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if u.ID != registered.ID {
		t.Errorf("expected user %s, got %s", registered.ID, u.ID)
	}
	if token == "" {
		t.Error("expected a signed token")
	}
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.Register(context.Background(), models.RegisterInput{
		FirstName: "Jane", LastName: "Doe",
		Email: "jane@example.com", Password: "correct horse",
	}); err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	_, _, err := svc.Authenticate(context.Background(), models.LoginInput{
		Email: "jane@example.com", Password: "wrong",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthenticate_UnknownEmail(t *testing.T) {
	svc, _ := newTestService()

	_, _, err := svc.Authenticate(context.Background(), models.LoginInput{
		Email: "nobody@example.com", Password: "whatever",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
