package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"codefix-quiz-service/internal/app"
	"codefix-quiz-service/internal/domain"
)

// LeaderboardHandler exposes the leaderboard REST surface.
type LeaderboardHandler struct {
	service *app.LeaderboardService
}

func NewLeaderboardHandler(service *app.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{service: service}
}

type errorResponse struct {
	Error string `json:"error"`
}

type successResponse struct {
	Success bool `json:"success"`
}

// HandleLeaderboard serves GET (full ranked list) and POST (score submission).
func (h *LeaderboardHandler) HandleLeaderboard(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r, "")
	case http.MethodPost:
		h.submit(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
	}
}

// HandleLanguageLeaderboard serves GET with an exact, case-sensitive
// language filter.
func (h *LeaderboardHandler) HandleLanguageLeaderboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}
	h.list(w, r, r.PathValue("language"))
}

func (h *LeaderboardHandler) list(w http.ResponseWriter, r *http.Request, language string) {
	entries, err := h.service.List(r.Context(), language)
	if err != nil {
		log.Printf("leaderboard read failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to fetch leaderboard"})
		return
	}
	if entries == nil {
		entries = []domain.LeaderboardEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *LeaderboardHandler) submit(w http.ResponseWriter, r *http.Request) {
	var sub app.ScoreSubmission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	if _, err := h.service.Submit(r.Context(), sub); err != nil {
		if isValidationError(err) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		log.Printf("leaderboard save failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to save score"})
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

func isValidationError(err error) bool {
	for _, sentinel := range []error{
		domain.ErrNameRequired,
		domain.ErrLanguageRequired,
		domain.ErrInvalidEmail,
		domain.ErrEmailDomainNotAllowed,
		domain.ErrInvalidScore,
		domain.ErrInvalidQuestionCount,
		domain.ErrInvalidCompletionTime,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}
