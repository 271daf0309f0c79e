package server

import (
	"errors"
	"net/http"

	"github.com/decipheralgo/go-realtime-server/persona"
	"github.com/decipheralgo/go-realtime-server/upstream"
)

// RealtimeEphemeralHandler mints a short-lived session credential for the
// browser client. Voice, model, and spice come from the query with
// configured defaults; the composed persona instructions are baked into the
// minted session so the client never sees them.
func (s *Server) RealtimeEphemeralHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		voice := r.URL.Query().Get("voice")
		if voice == "" {
			voice = s.config.GetDefaultVoice()
		}
		model := r.URL.Query().Get("model")
		if model == "" {
			model = s.config.GetDefaultModel()
		}
		spice := persona.ParseSpice(r.URL.Query().Get("spice"), s.persona.DefaultLevel())

		credential, err := s.realtime.MintSession(r.Context(), upstream.SessionRequest{
			Model:        model,
			Voice:        voice,
			Instructions: s.persona.Compose(spice),
		})
		if err != nil {
			if errors.Is(err, upstream.ErrMissingCredentials) {
				s.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Missing OPENAI_API_KEY env var"})
				return
			}
			s.respondUpstreamError(w, r, err)
			return
		}

		s.writeJSON(w, http.StatusOK, credential)
	}
}
