package user

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"

	"tutorlink/internal/domain/course"
)

const (
	minLoginLen    = 3
	maxLoginLen    = 32
	minPasswordLen = 8
)

type Servicer interface {
	Register(ctx context.Context, login, password string, role Role, bio string) (int64, error)
	Authenticate(ctx context.Context, login, password string) (*User, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// Register creates an account. Tutors supply a bio that goes through the
// same long-text rule the profile form uses.
func (s *Service) Register(ctx context.Context, login, password string, role Role, bio string) (int64, error) {
	if len(login) < minLoginLen || len(login) > maxLoginLen {
		return 0, fmt.Errorf("login must be %d-%d characters", minLoginLen, maxLoginLen)
	}
	if len(password) < minPasswordLen {
		return 0, fmt.Errorf("password must be at least %d characters", minPasswordLen)
	}
	if !role.Valid() {
		return 0, ErrInvalidRole
	}
	if role == RoleTutor {
		if msg := course.ValidateBio(bio); msg != "" {
			return 0, errors.New(msg)
		}
	}

	if _, err := s.repo.FindByLogin(ctx, login); err == nil {
		return 0, ErrLoginTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	id, err := s.repo.Create(ctx, &User{
		Login:        login,
		PasswordHash: string(hash),
		Role:         role,
		Bio:          bio,
	})
	if err != nil {
		return 0, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("user registered", "login", login, "role", role)
	return id, nil
}

func (s *Service) Authenticate(ctx context.Context, login, password string) (*User, error) {
	u, err := s.repo.FindByLogin(ctx, login)
	if err != nil {
		return nil, ErrInvalidAuth
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidAuth
	}

	return u, nil
}
