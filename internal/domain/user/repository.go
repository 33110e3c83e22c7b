package user

import (
	"context"
)

type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (AdminUser, error)
	GetByID(ctx context.Context, id string) (AdminUser, error)
	// Create returns ErrUsernameExists when the username is taken.
	Create(ctx context.Context, newUser AdminUser) (AdminUser, error)
	Count(ctx context.Context) (int64, error)
}
