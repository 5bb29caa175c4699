package httpserver

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/movielog/movielog/internal/domain"
	"github.com/movielog/movielog/internal/repository"
)

type movieCreateRequest struct {
	Name string `json:"name"`
}

type movieUpdateRequest struct {
	Name     string  `json:"name"`
	ViewedAt *string `json:"viewedAt"`
}

type movieResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	CreatedAt string  `json:"createdAt"`
	ViewedAt  *string `json:"viewedAt"`
}

func (s *Server) handleListMovies(w http.ResponseWriter, r *http.Request) {
	opts := buildListOptions(r.URL.Query())

	movies, err := s.repo.Movies.List(r.Context(), opts)
	if err != nil {
		s.logger.Printf("list movies error: %v", err)
		s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list movies")
		return
	}

	items := make([]movieResponse, 0, len(movies))
	for _, movie := range movies {
		items = append(items, toMovieResponse(movie))
	}
	s.respondJSON(w, http.StatusOK, items)
}

func (s *Server) handleCreateMovie(w http.ResponseWriter, r *http.Request) {
	user, ok := actingUser(r)
	if !ok {
		s.respondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Missing or invalid authentication information")
		return
	}

	var req movieCreateRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		s.respondDecodeError(w, err)
		return
	}
	if req.Name == "" {
		s.respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "name is required")
		return
	}

	if _, err := s.repo.Movies.Create(r.Context(), req.Name, user.ID); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			s.respondError(w, http.StatusBadRequest, "DUPLICATE", "Failed to create movie (duplicate name?)")
			return
		}
		s.logger.Printf("create movie error: %v", err)
		s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create movie")
		return
	}

	s.respondJSON(w, http.StatusOK, "Movie created")
}

func (s *Server) handleGetMovie(w http.ResponseWriter, r *http.Request) {
	id, err := movieIDParam(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	movie, err := s.repo.Movies.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.respondError(w, http.StatusNotFound, "NOT_FOUND", "Movie not found")
			return
		}
		s.logger.Printf("get movie error: %v", err)
		s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch movie")
		return
	}

	s.respondJSON(w, http.StatusOK, toMovieResponse(movie))
}

func (s *Server) handleUpdateMovie(w http.ResponseWriter, r *http.Request) {
	id, err := movieIDParam(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	var req movieUpdateRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		s.respondDecodeError(w, err)
		return
	}
	if req.Name == "" {
		s.respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "name is required")
		return
	}

	viewedAt, err := parseViewedAt(req.ViewedAt)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "viewedAt must be an RFC 3339 or YYYY-MM-DDTHH:MM:SS timestamp")
		return
	}

	// Deliberately no ownership check: any authenticated user may edit any
	// movie.
	if _, err := s.repo.Movies.Update(r.Context(), id, req.Name, viewedAt); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			s.respondError(w, http.StatusNotFound, "NOT_FOUND", "Movie not found")
		case errors.Is(err, repository.ErrDuplicate):
			s.respondError(w, http.StatusBadRequest, "DUPLICATE", "Failed to update movie (duplicate name?)")
		default:
			s.logger.Printf("update movie error: %v", err)
			s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update movie")
		}
		return
	}

	s.respondJSON(w, http.StatusOK, "Movie updated")
}

func toMovieResponse(movie domain.Movie) movieResponse {
	resp := movieResponse{
		ID:        movie.ID,
		Name:      movie.Name,
		CreatedAt: movie.CreatedAt.UTC().Format(time.RFC3339),
	}
	if movie.ViewedAt != nil {
		viewed := movie.ViewedAt.UTC().Format(time.RFC3339)
		resp.ViewedAt = &viewed
	}
	return resp
}

func movieIDParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "movieID")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid movie id")
	}
	return id, nil
}

// parseViewedAt accepts RFC 3339 or a bare local timestamp; nil clears the
// viewed marker.
func parseViewedAt(raw *string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05"} {
		if parsed, err := time.Parse(layout, *raw); err == nil {
			return &parsed, nil
		}
	}
	return nil, fmt.Errorf("invalid timestamp %q", *raw)
}
