package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/transwerk/personal-backend-go/internal/domain/auth"
	"github.com/transwerk/personal-backend-go/internal/domain/user"
	"github.com/transwerk/personal-backend-go/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	var u user.User
	query := `
		SELECT id, email, password_hash, created_at
		FROM users
		WHERE email = $1
	`
	err := q.QueryRow(ctx, query, email).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, auth.ErrUserNotFound
		}
		return user.User{}, err
	}
	return u, nil
}

func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	var u user.User
	query := `
		SELECT id, email, password_hash, created_at
		FROM users
		WHERE id = $1
	`
	err := q.QueryRow(ctx, query, id).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, auth.ErrUserNotFound
		}
		return user.User{}, err
	}
	return u, nil
}
