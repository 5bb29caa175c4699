package domain

import "time"

// Movie represents the canonical movie entity in the database/service.
// ViewedAt is nil while the movie is unwatched.
type Movie struct {
	ID        int64
	Name      string
	CreatorID int64
	CreatedAt time.Time
	ViewedAt  *time.Time
}
