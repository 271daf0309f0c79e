package server

import (
	"fmt"
	"net/http"
)

// IndexHandler returns a plain-text pointer at the useful routes.
func (s *Server) IndexHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintf(w, "%s server active. %s • %s • %s\n",
			s.config.GetAppName(), RouteHealth, RouteRealtimeEphemeral, RouteTikTokLogin)
	}
}

// PreflightHandler terminates OPTIONS requests that CorsMiddleware passed
// through (same-origin callers send no Origin header); cross-origin
// preflights are answered inside the middleware itself.
func (s *Server) PreflightHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}
}

// HealthHandler reports liveness.
func (s *Server) HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	}
}
