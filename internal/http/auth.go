package httpserver

import (
	"errors"
	"net/http"

	"github.com/movielog/movielog/internal/auth"
)

type credentialsRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type userResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		s.respondDecodeError(w, err)
		return
	}

	if _, err := s.auth.Register(r.Context(), req.Name, req.Password); err != nil {
		switch {
		case errors.Is(err, auth.ErrNameTaken):
			s.respondError(w, http.StatusBadRequest, "DUPLICATE", "Failed to create user (duplicate name?)")
		case errors.Is(err, auth.ErrInvalidInput):
			s.respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "name and password are required")
		default:
			s.logger.Printf("register error: %v", err)
			s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create user")
		}
		return
	}

	s.respondJSON(w, http.StatusOK, "User created")
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		s.respondDecodeError(w, err)
		return
	}

	token, err := s.auth.Login(r.Context(), req.Name, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			s.respondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Wrong name or password.")
			return
		}
		s.logger.Printf("login error: %v", err)
		s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to log in")
		return
	}

	s.respondJSON(w, http.StatusOK, tokenResponse{Token: token})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	user, ok := actingUser(r)
	if !ok {
		s.respondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Missing or invalid authentication information")
		return
	}
	s.respondJSON(w, http.StatusOK, userResponse{ID: user.ID, Name: user.Name})
}
