package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) (int64, error)
	FindByLogin(ctx context.Context, login string) (*User, error)
	FindByID(ctx context.Context, id int64) (*User, error)
}
