package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	domaingames "today-games-service/internal/domain/games"
	"today-games-service/internal/http/middleware"
	"today-games-service/internal/logging"
)

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message, details string, logger *slog.Logger) {
	writeJSON(w, status, domaingames.ErrorResponse{
		Error:     message,
		Details:   details,
		RequestID: middleware.RequestIDFromContext(r.Context()),
	}, logger)
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
