package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"eventsite/internal/domain"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// statusFor maps domain errors to HTTP statuses.
func statusFor(err error) int {
	switch {
	case domain.IsNotFound(err):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrRegistrationExists), errors.Is(err, domain.ErrEventFull):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidRegistration), errors.Is(err, domain.ErrEventNotSaved),
		errors.Is(err, domain.ErrEventRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// errorMessage returns the translated, user-facing text for err.
func (s *Server) errorMessage(locale string, err error) (string, string) {
	code := domain.Code(err)
	if code == "" {
		return "internal", s.translator.T(locale, "error.internal", nil)
	}
	return code, s.translator.T(locale, "error."+code, nil)
}

func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.log.Error().Err(err).Str("path", r.URL.Path).Msg("❌ request failed")
	}
	code, msg := s.errorMessage(viewerFrom(r.Context()).Locale, err)
	respondJSON(w, status, errorResponse{Code: code, Message: msg})
}

func (s *Server) respondBadRequest(w http.ResponseWriter, msg string) {
	respondJSON(w, http.StatusBadRequest, errorResponse{Code: "bad_request", Message: msg})
}
