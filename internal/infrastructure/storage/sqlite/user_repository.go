package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"

	"tutorlink/internal/domain/user"
)

type UserRepository struct {
	storage *Storage
	log     *slog.Logger
}

func NewUserRepository(storage *Storage, log *slog.Logger) *UserRepository {
	return &UserRepository{
		storage: storage,
		log:     log,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (int64, error) {
	res, err := r.storage.db.ExecContext(ctx,
		`INSERT INTO users (login, password_hash, role, bio) VALUES (?, ?, ?, ?)`,
		u.Login, u.PasswordHash, string(u.Role), u.Bio)
	if err != nil {
		return 0, fmt.Errorf("insert user: %w", err)
	}
	return res.LastInsertId()
}

func (r *UserRepository) FindByLogin(ctx context.Context, login string) (*user.User, error) {
	return r.findOne(ctx,
		`SELECT id, login, password_hash, role, bio, created_at FROM users WHERE login = ?`, login)
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*user.User, error) {
	return r.findOne(ctx,
		`SELECT id, login, password_hash, role, bio, created_at FROM users WHERE id = ?`, id)
}

func (r *UserRepository) findOne(ctx context.Context, query string, arg any) (*user.User, error) {
	var u user.User
	var role string
	err := r.storage.db.QueryRowContext(ctx, query, arg).
		Scan(&u.ID, &u.Login, &u.PasswordHash, &role, &u.Bio, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, user.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query user: %w", err)
	}
	u.Role = user.Role(role)
	return &u, nil
}
