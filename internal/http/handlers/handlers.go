package handlers

import (
	"context"
	"log/slog"
	"net/http"

	domaingames "today-games-service/internal/domain/games"
	"today-games-service/internal/http/middleware"
	"today-games-service/internal/logging"
	"today-games-service/internal/providers"
)

// GamesService produces the day's game list.
type GamesService interface {
	Today(ctx context.Context) (domaingames.TodayResponse, error)
}

// Handler wires HTTP routes to the games service.
type Handler struct {
	svc    GamesService
	logger *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(svc GamesService, logger *slog.Logger) *Handler {
	return &Handler{
		svc:    svc,
		logger: logger,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case middleware.PathHealth:
		h.Health(w, r)
	case middleware.PathTodayGames:
		h.TodayGames(w, r)
	default:
		writeError(w, r, http.StatusNotFound, "not found", "", h.logger)
	}
}

// Health reports liveness. It never fails for GET.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", "", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// TodayGames fetches the full table and responds with today's games.
func (h *Handler) TodayGames(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", "", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	resp, err := h.svc.Today(r.Context())
	if err != nil {
		status, message, details := errorResponseFor(err)
		logging.Error(logger, "today games failed", err,
			slog.String(logging.FieldErrorKind, string(providers.KindOf(err))),
			slog.Int(logging.FieldStatusCode, status),
		)
		writeError(w, r, status, message, details, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, resp, h.logger)
}
