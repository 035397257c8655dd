package http

import (
	nethttp "net/http"

	"today-games-service/internal/http/handlers"
	"today-games-service/internal/http/middleware"
)

// NewRouter registers HTTP routes on a ServeMux. Unknown paths fall through to
// the handler so they still get a JSON 404.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc(middleware.PathHealth, handler.Health)
	mux.HandleFunc(middleware.PathTodayGames, handler.TodayGames)
	mux.Handle("/", handler)
	return mux
}
