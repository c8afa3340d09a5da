package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"moodlens/internal/domain"
)

type mockUserRepo struct {
	usersByID    map[string]domain.User
	usersByEmail map[string]string
	createErr    error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		usersByID:    make(map[string]domain.User),
		usersByEmail: make(map[string]string),
	}
}

func (m *mockUserRepo) Create(_ context.Context, user domain.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.usersByID[user.ID] = user
	if user.Email != "" {
		m.usersByEmail[user.Email] = user.ID
	}
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (domain.User, error) {
	user, ok := m.usersByID[id]
	if !ok {
		return domain.User{}, pgx.ErrNoRows
	}
	return user, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (domain.User, error) {
	id, ok := m.usersByEmail[email]
	if !ok {
		return domain.User{}, pgx.ErrNoRows
	}
	return m.GetByID(context.Background(), id)
}

func TestUserService_CreateUser(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewUserService(zap.NewNop(), repo)

	user, err := svc.CreateUser(context.Background(), CreateUserInput{
		Email:       " Someone@Example.COM ",
		DisplayName: " Someone ",
		Password:    "hunter2hunter2",
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if user.Email != "someone@example.com" {
		t.Fatalf("expected normalized email, got %q", user.Email)
	}
	if user.DisplayName != "Someone" {
		t.Fatalf("expected trimmed display name, got %q", user.DisplayName)
	}
	if user.PasswordHash == "" || user.PasswordHash == "hunter2hunter2" {
		t.Fatalf("expected hashed password, got %q", user.PasswordHash)
	}
	if user.ID == "" {
		t.Fatalf("expected generated id")
	}
}

func TestUserService_CreateUserValidation(t *testing.T) {
	svc := NewUserService(zap.NewNop(), newMockUserRepo())

	if _, err := svc.CreateUser(context.Background(), CreateUserInput{
		Email:    "not-an-email",
		Password: "hunter2hunter2",
	}); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}

	if _, err := svc.CreateUser(context.Background(), CreateUserInput{
		Email:    "a@b.com",
		Password: "short",
	}); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("expected ErrWeakPassword, got %v", err)
	}
}

func TestUserService_Authenticate(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewUserService(zap.NewNop(), repo)

	created, err := svc.CreateUser(context.Background(), CreateUserInput{
		Email:    "a@b.com",
		Password: "hunter2hunter2",
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	user, err := svc.Authenticate(context.Background(), "A@B.com", "hunter2hunter2")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if user.ID != created.ID {
		t.Fatalf("expected same user, got %q vs %q", user.ID, created.ID)
	}

	if _, err := svc.Authenticate(context.Background(), "a@b.com", "wrong-password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials on bad password, got %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), "nobody@b.com", "hunter2hunter2"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials on unknown email, got %v", err)
	}
}

func TestUserService_GetUser(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewUserService(zap.NewNop(), repo)

	if _, err := svc.GetUser(context.Background(), "missing"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
