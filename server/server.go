package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/decipheralgo/go-realtime-server/internal/config"
	"github.com/decipheralgo/go-realtime-server/persona"
	"github.com/decipheralgo/go-realtime-server/server/statestore"
	"github.com/decipheralgo/go-realtime-server/upstream"
	"github.com/rs/zerolog"
)

// Server is the HTTP boundary. All mutable state (OAuth state store, persona
// composer) is injected so tests can build isolated instances per case and a
// future deployment can swap in a shared external store.
type Server struct {
	env        string // Environment (e.g., "DEV", "production")
	mux        *http.ServeMux
	routes     []string
	config     config.Config
	logger     zerolog.Logger
	oauthState statestore.Repo
	persona    *persona.Composer
	realtime   *upstream.RealtimeClient
	tiktok     *upstream.TikTokClient
}

func New(cfg config.Config, logger zerolog.Logger, oauthState statestore.Repo, composer *persona.Composer, realtime *upstream.RealtimeClient, tiktok *upstream.TikTokClient) *Server {
	s := &Server{
		mux:        http.NewServeMux(),
		config:     cfg,
		logger:     logger,
		oauthState: oauthState,
		persona:    composer,
		realtime:   realtime,
		tiktok:     tiktok,
	}
	s.env = cfg.GetEnv()

	s.initRoutes()
	s.logRoutes()

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)

		if len(parts) > 1 {
			logRoute(parts[0], parts[1])
		} else {
			logRoute("", parts[0])
		}
	}
}

func logRoute(method, path string) {
	var displayMethod string
	paddedMethod := fmt.Sprintf(" %-7s", method)
	if color, ok := methodColors[method]; ok {
		displayMethod = color + paddedMethod + ResetColor
	} else {
		displayMethod = Gray + paddedMethod + ResetColor
	}
	log.Printf("[%-19s] %s\n", displayMethod, path)
}

// writeJSON encodes v with the right content type. Encoding failures are
// logged, not surfaced; headers are already gone by then.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error().Err(err).Msg("encoding response")
	}
}

// writeUpstreamBody forwards an upstream response body verbatim.
func (s *Server) writeUpstreamBody(w http.ResponseWriter, status int, contentType string, body []byte) {
	if contentType == "" {
		contentType = "application/json; charset=utf-8"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// respondUpstreamError applies the propagation policy: upstream rejections
// keep their own status and body, network-level failures become a generic
// 500 with details logged, never exposed.
func (s *Server) respondUpstreamError(w http.ResponseWriter, r *http.Request, err error) {
	var upErr *upstream.Error
	if errors.As(err, &upErr) {
		s.writeUpstreamBody(w, upErr.StatusCode, upErr.ContentType, upErr.Body)
		return
	}
	zerolog.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("upstream call failed")
	s.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "upstream request failed"})
}
