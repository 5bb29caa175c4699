package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/movielog/movielog/internal/domain"
)

// RatingsRepository provides helpers for per-user movie ratings.
type RatingsRepository struct {
	pool *pgxpool.Pool
}

const ratingColumns = `id, movie_id, user_id, value, created_at, updated_at`

// Upsert inserts or updates the rating for a (movie, user) pair and reports
// whether it was newly created. The whole operation is one conditional write
// against the unique (movie_id, user_id) constraint, so two concurrent
// upserts for the same pair can never produce two rows; there is no
// check-then-act window. An unknown movie or user surfaces as ErrNotFound
// via the foreign keys.
func (r *RatingsRepository) Upsert(ctx context.Context, movieID, userID int64, value float32) (domain.Rating, bool, error) {
	const query = `
        INSERT INTO ratings (movie_id, user_id, value)
        VALUES ($1,$2,$3)
        ON CONFLICT (movie_id, user_id)
        DO UPDATE SET value = EXCLUDED.value, updated_at = now()
        RETURNING ` + ratingColumns + `, (xmax = 0) AS inserted`

	var rating domain.Rating
	var inserted bool
	err := r.pool.QueryRow(ctx, query, movieID, userID, value).Scan(
		&rating.ID,
		&rating.MovieID,
		&rating.UserID,
		&rating.Value,
		&rating.CreatedAt,
		&rating.UpdatedAt,
		&inserted,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.Rating{}, false, ErrNotFound
		}
		return domain.Rating{}, false, err
	}
	return rating, inserted, nil
}

// ListByMovie returns all ratings submitted for a movie.
func (r *RatingsRepository) ListByMovie(ctx context.Context, movieID int64) ([]domain.Rating, error) {
	const query = `SELECT ` + ratingColumns + ` FROM ratings WHERE movie_id = $1 ORDER BY id`

	rows, err := r.pool.Query(ctx, query, movieID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.Rating, 0)
	for rows.Next() {
		rating, err := scanRating(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, rating)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Get retrieves the rating a user gave a movie.
func (r *RatingsRepository) Get(ctx context.Context, movieID, userID int64) (domain.Rating, error) {
	const query = `SELECT ` + ratingColumns + ` FROM ratings WHERE movie_id = $1 AND user_id = $2`

	rating, err := scanRating(r.pool.QueryRow(ctx, query, movieID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Rating{}, ErrNotFound
		}
		return domain.Rating{}, err
	}
	return rating, nil
}

func scanRating(row pgx.Row) (domain.Rating, error) {
	var rating domain.Rating
	err := row.Scan(&rating.ID, &rating.MovieID, &rating.UserID, &rating.Value, &rating.CreatedAt, &rating.UpdatedAt)
	if err != nil {
		return domain.Rating{}, err
	}
	return rating, nil
}
