package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/movielog/movielog/internal/domain"
)

// UsersRepository provides persistence helpers for user accounts.
type UsersRepository struct {
	pool *pgxpool.Pool
}

const userColumns = `id, name, password_hash, created_at`

// Create inserts a new user row. A name collision returns ErrDuplicate; the
// unique constraint on name is the authority, not a prior existence check.
func (r *UsersRepository) Create(ctx context.Context, name, passwordHash string) (domain.User, error) {
	const query = `
        INSERT INTO users (name, password_hash)
        VALUES ($1,$2)
        RETURNING ` + userColumns

	user, err := scanUser(r.pool.QueryRow(ctx, query, name, passwordHash))
	if err != nil {
		if isUniqueViolation(err) {
			return domain.User{}, ErrDuplicate
		}
		return domain.User{}, err
	}
	return user, nil
}

// GetByName fetches a user by their unique name.
func (r *UsersRepository) GetByName(ctx context.Context, name string) (domain.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE name = $1`
	user, err := scanUser(r.pool.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, ErrNotFound
		}
		return domain.User{}, err
	}
	return user, nil
}

// GetByID fetches a user by identifier.
func (r *UsersRepository) GetByID(ctx context.Context, id int64) (domain.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	user, err := scanUser(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, ErrNotFound
		}
		return domain.User{}, err
	}
	return user, nil
}

func scanUser(row pgx.Row) (domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Name, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		return domain.User{}, err
	}
	return user, nil
}
