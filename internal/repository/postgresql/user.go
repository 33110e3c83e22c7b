package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/emptrack/emptrack-backend-go/internal/domain/user"
	"github.com/emptrack/emptrack-backend-go/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.AdminUser) (user.AdminUser, error) {
	q := GetQuerier(ctx, r.db)

	insertQuery := `
		INSERT INTO admin_users (id, username, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, username, password_hash, created_at, updated_at
	`

	var created user.AdminUser
	err := q.QueryRow(ctx, insertQuery, newRowID(), newUser.Username, newUser.PasswordHash).Scan(
		&created.ID,
		&created.Username,
		&created.PasswordHash,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return user.AdminUser{}, user.ErrUsernameExists
		}
		return user.AdminUser{}, database.Unavailable("create admin user", err)
	}

	return created, nil
}

// Count implements user.UserRepository.
func (r *userRepositoryImpl) Count(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM admin_users`).Scan(&total); err != nil {
		return 0, database.Unavailable("count admin users", err)
	}
	return total, nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.AdminUser, error) {
	if !isRowID(id) {
		return user.AdminUser{}, user.ErrUserNotFound
	}
	return r.getOne(ctx, "id", id)
}

// GetByUsername implements user.UserRepository.
func (r *userRepositoryImpl) GetByUsername(ctx context.Context, username string) (user.AdminUser, error) {
	return r.getOne(ctx, "username", username)
}

func (r *userRepositoryImpl) getOne(ctx context.Context, column string, value string) (user.AdminUser, error) {
	q := GetQuerier(ctx, r.db)

	selectQuery := `
		SELECT id, username, password_hash, created_at, updated_at
		FROM admin_users
		WHERE ` + column + ` = $1
	`

	var u user.AdminUser
	err := q.QueryRow(ctx, selectQuery, value).Scan(
		&u.ID,
		&u.Username,
		&u.PasswordHash,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.AdminUser{}, user.ErrUserNotFound
		}
		return user.AdminUser{}, database.Unavailable("get admin user", err)
	}

	return u, nil
}
