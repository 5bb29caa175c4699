package domain

import "time"

// Rating represents a single user's rating for a movie. At most one rating
// exists per (MovieID, UserID) pair.
type Rating struct {
	ID        int64
	MovieID   int64
	UserID    int64
	Value     float32
	CreatedAt time.Time
	UpdatedAt time.Time
}
