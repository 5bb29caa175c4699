package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/movielog/movielog/internal/domain"
)

// MoviesRepository provides persistence helpers for movie entities.
type MoviesRepository struct {
	pool *pgxpool.Pool
}

const movieColumns = `id, name, creator_id, created_at, viewed_at`

// MovieSortColumn enumerates the columns listings may be ordered by. Only
// these enumerated values ever reach SQL text; client input is mapped onto
// them before use.
type MovieSortColumn int

const (
	SortByID MovieSortColumn = iota
	SortByName
	SortByCreatedAt
	SortByViewedAt
)

func (c MovieSortColumn) sqlName() string {
	switch c {
	case SortByName:
		return "name"
	case SortByCreatedAt:
		return "created_at"
	case SortByViewedAt:
		return "viewed_at"
	default:
		return "id"
	}
}

// MovieSort is one key of a multi-key sort expression.
type MovieSort struct {
	Column     MovieSortColumn
	Descending bool
}

// MovieListOptions encapsulates sort and filter options for List.
type MovieListOptions struct {
	Sort []MovieSort
	// Viewed filters on viewed_at: true keeps watched rows, false keeps
	// unwatched rows, nil applies no filter.
	Viewed *bool
}

// Create inserts a new movie row stamped with its creator. Name collisions
// return ErrDuplicate.
func (r *MoviesRepository) Create(ctx context.Context, name string, creatorID int64) (domain.Movie, error) {
	const query = `
        INSERT INTO movies (name, creator_id)
        VALUES ($1,$2)
        RETURNING ` + movieColumns

	movie, err := scanMovie(r.pool.QueryRow(ctx, query, name, creatorID))
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Movie{}, ErrDuplicate
		}
		return domain.Movie{}, err
	}
	return movie, nil
}

// GetByID fetches a movie by its identifier.
func (r *MoviesRepository) GetByID(ctx context.Context, id int64) (domain.Movie, error) {
	const query = `SELECT ` + movieColumns + ` FROM movies WHERE id = $1`
	movie, err := scanMovie(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Movie{}, ErrNotFound
		}
		return domain.Movie{}, err
	}
	return movie, nil
}

// Update replaces the mutable fields of a movie. A nil viewedAt marks the
// movie unwatched again.
func (r *MoviesRepository) Update(ctx context.Context, id int64, name string, viewedAt *time.Time) (domain.Movie, error) {
	const query = `
        UPDATE movies
        SET name = $2, viewed_at = $3
        WHERE id = $1
        RETURNING ` + movieColumns

	movie, err := scanMovie(r.pool.QueryRow(ctx, query, id, name, viewedAt))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Movie{}, ErrNotFound
		}
		if isUniqueViolation(err) {
			return domain.Movie{}, ErrDuplicate
		}
		return domain.Movie{}, err
	}
	return movie, nil
}

// List returns all movies with the given sort and filter applied. Listings
// are not scoped to a user. Sort keys apply left to right, NULLS LAST in
// both directions; without keys the listing falls back to id order.
func (r *MoviesRepository) List(ctx context.Context, opts MovieListOptions) ([]domain.Movie, error) {
	query := strings.Builder{}
	query.WriteString("SELECT ")
	query.WriteString(movieColumns)
	query.WriteString(" FROM movies")

	if opts.Viewed != nil {
		if *opts.Viewed {
			query.WriteString(" WHERE viewed_at IS NOT NULL")
		} else {
			query.WriteString(" WHERE viewed_at IS NULL")
		}
	}

	order := make([]string, 0, len(opts.Sort)+1)
	for _, key := range opts.Sort {
		direction := " ASC NULLS LAST"
		if key.Descending {
			direction = " DESC NULLS LAST"
		}
		order = append(order, key.Column.sqlName()+direction)
	}
	if len(order) == 0 {
		order = append(order, "id ASC")
	}
	query.WriteString(" ORDER BY ")
	query.WriteString(strings.Join(order, ", "))

	rows, err := r.pool.Query(ctx, query.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.Movie, 0)
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, movie)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func scanMovie(row pgx.Row) (domain.Movie, error) {
	var movie domain.Movie
	err := row.Scan(&movie.ID, &movie.Name, &movie.CreatorID, &movie.CreatedAt, &movie.ViewedAt)
	if err != nil {
		return domain.Movie{}, err
	}
	return movie, nil
}
