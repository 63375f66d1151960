package user

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, u *User) (int64, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRepository) FindByLogin(ctx context.Context, login string) (*User, error) {
	args := m.Called(ctx, login)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *mockRepository) FindByID(ctx context.Context, id int64) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

const testBio = "I have taught German to adult learners for a decade, ran my own study groups and built course material for every CEFR level."

func TestRegister_Tutor(t *testing.T) {
	repo := new(mockRepository)
	repo.On("FindByLogin", mock.Anything, "anna").Return(nil, ErrNotFound)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *User) bool {
		// The stored hash must verify against the plain password.
		return u.Login == "anna" &&
			u.Role == RoleTutor &&
			bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret-pass")) == nil
	})).Return(int64(5), nil)

	s := NewService(repo, slog.Default())
	id, err := s.Register(context.Background(), "anna", "secret-pass", RoleTutor, testBio)
	require.NoError(t, err)
	assert.Equal(t, int64(5), id)
	repo.AssertExpectations(t)
}

func TestRegister_ValidationFailures(t *testing.T) {
	tests := []struct {
		name     string
		login    string
		password string
		role     Role
		bio      string
	}{
		{"login too short", "ab", "secret-pass", RoleLearner, ""},
		{"login too long", strings.Repeat("a", 33), "secret-pass", RoleLearner, ""},
		{"password too short", "anna", "short", RoleLearner, ""},
		{"unknown role", "anna", "secret-pass", Role("owner"), ""},
		{"tutor with short bio", "anna", "secret-pass", RoleTutor, "too short"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockRepository)
			s := NewService(repo, slog.Default())

			_, err := s.Register(context.Background(), tt.login, tt.password, tt.role, tt.bio)
			assert.Error(t, err)
			// Validation fails before any repository access.
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestRegister_LoginTaken(t *testing.T) {
	repo := new(mockRepository)
	repo.On("FindByLogin", mock.Anything, "anna").Return(&User{ID: 1, Login: "anna"}, nil)

	s := NewService(repo, slog.Default())
	_, err := s.Register(context.Background(), "anna", "secret-pass", RoleLearner, "")
	assert.ErrorIs(t, err, ErrLoginTaken)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthenticate(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := &User{ID: 3, Login: "anna", PasswordHash: string(hash), Role: RoleTutor}

	repo := new(mockRepository)
	repo.On("FindByLogin", mock.Anything, "anna").Return(stored, nil)
	repo.On("FindByLogin", mock.Anything, "ghost").Return(nil, ErrNotFound)

	s := NewService(repo, slog.Default())

	u, err := s.Authenticate(context.Background(), "anna", "secret-pass")
	require.NoError(t, err)
	assert.Equal(t, int64(3), u.ID)

	_, err = s.Authenticate(context.Background(), "anna", "wrong-pass")
	assert.ErrorIs(t, err, ErrInvalidAuth)

	// An unknown login answers with the same error as a bad password.
	_, err = s.Authenticate(context.Background(), "ghost", "secret-pass")
	assert.ErrorIs(t, err, ErrInvalidAuth)
}
