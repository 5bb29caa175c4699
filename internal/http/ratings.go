package httpserver

import (
	"errors"
	"net/http"

	"github.com/movielog/movielog/internal/domain"
	"github.com/movielog/movielog/internal/repository"
)

var allowedRatings = map[float32]struct{}{
	0.5: {}, 1.0: {}, 1.5: {}, 2.0: {}, 2.5: {},
	3.0: {}, 3.5: {}, 4.0: {}, 4.5: {}, 5.0: {},
}

type ratingRequest struct {
	Value float32 `json:"value"`
}

type ratingResponse struct {
	ID      int64   `json:"id"`
	Value   float32 `json:"value"`
	MovieID int64   `json:"movieId"`
	UserID  int64   `json:"userId"`
}

func (s *Server) handleListRatings(w http.ResponseWriter, r *http.Request) {
	id, err := movieIDParam(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	ratings, err := s.repo.Ratings.ListByMovie(r.Context(), id)
	if err != nil {
		s.logger.Printf("list ratings error: %v", err)
		s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list ratings")
		return
	}

	items := make([]ratingResponse, 0, len(ratings))
	for _, rating := range ratings {
		items = append(items, toRatingResponse(rating))
	}
	s.respondJSON(w, http.StatusOK, items)
}

func (s *Server) handleSubmitRating(w http.ResponseWriter, r *http.Request) {
	user, ok := actingUser(r)
	if !ok {
		s.respondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Missing or invalid authentication information")
		return
	}

	id, err := movieIDParam(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	var req ratingRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		s.respondDecodeError(w, err)
		return
	}
	if _, ok := allowedRatings[req.Value]; !ok {
		s.respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "value must be one of {0.5, 1.0, ..., 5.0}")
		return
	}

	_, created, err := s.repo.Ratings.Upsert(r.Context(), id, user.ID, req.Value)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.respondError(w, http.StatusNotFound, "NOT_FOUND", "Movie not found")
			return
		}
		s.logger.Printf("upsert rating error: %v", err)
		s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process rating")
		return
	}

	if created {
		s.respondJSON(w, http.StatusOK, "Rating created")
		return
	}
	s.respondJSON(w, http.StatusOK, "Rating updated")
}

func toRatingResponse(rating domain.Rating) ratingResponse {
	return ratingResponse{
		ID:      rating.ID,
		Value:   rating.Value,
		MovieID: rating.MovieID,
		UserID:  rating.UserID,
	}
}
