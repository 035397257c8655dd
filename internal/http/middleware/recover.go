package middleware

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	domaingames "today-games-service/internal/domain/games"
	"today-games-service/internal/logging"
)

// Recover turns a handler panic into a 500 JSON error envelope.
func Recover(baseLogger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger := logging.FromContext(r.Context(), baseLogger)
			logging.Error(logger, "handler panic", nil,
				slog.Any("panic", rec),
				slog.String("stack", string(debug.Stack())),
			)

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(domaingames.ErrorResponse{
				Error:     fmt.Sprint(rec),
				RequestID: RequestIDFromContext(r.Context()),
			})
		}()

		next.ServeHTTP(w, r)
	})
}
