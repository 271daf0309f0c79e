package server

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"github.com/decipheralgo/go-realtime-server/upstream"
	"github.com/rs/zerolog"
)

const tiktokEnvMissingMsg = "TikTok env missing. Set TIKTOK_CLIENT_KEY, TIKTOK_CLIENT_SECRET, TIKTOK_REDIRECT_URI."

// maskedSentinel is rendered in place of a token that was never returned.
const maskedSentinel = "<none>"

// maskToken renders a human-safe preview of a token: first 6 and last 4
// characters with a fixed separator. Tokens too short to mask safely are
// elided entirely; the middle characters are never reproduced.
func maskToken(token string) string {
	if token == "" {
		return maskedSentinel
	}
	if len(token) < 10 {
		return "..."
	}
	return token[:6] + "..." + token[len(token)-4:]
}

var callbackTemplate = template.Must(template.New("callback").Parse(`<html>
  <body style="font-family: -apple-system, system-ui; padding: 24px;">
    <h2>TikTok Connected</h2>
    <p>Access Token: <code>{{.AccessToken}}</code></p>
    <p>Refresh Token: <code>{{.RefreshToken}}</code></p>
    <p>You can close this tab and return to the app.</p>
  </body>
</html>
`))

// TikTokLoginHandler starts the three-legged flow: issue a fresh state
// token, then redirect the user to TikTok's consent screen.
func (s *Server) TikTokLoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.tiktok.Configured() {
			http.Error(w, tiktokEnvMissingMsg, http.StatusInternalServerError)
			return
		}

		state, err := s.oauthState.Issue()
		if err != nil {
			zerolog.Ctx(r.Context()).Error().Err(err).Msg("issuing oauth state")
			http.Error(w, "failed to start login", http.StatusInternalServerError)
			return
		}

		authURL, err := s.tiktok.AuthCodeURL(state)
		if err != nil {
			http.Error(w, tiktokEnvMissingMsg, http.StatusInternalServerError)
			return
		}
		http.Redirect(w, r, authURL, http.StatusFound)
	}
}

// TikTokCallbackHandler completes the flow. The state must be one this
// process issued and not yet consumed; only then is the code exchanged.
// Token material is echoed back masked, never in full.
func (s *Server) TikTokCallbackHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		if errParam := query.Get("error"); errParam != "" {
			http.Error(w, fmt.Sprintf("Authorization failed: %s - %s", errParam, query.Get("error_description")), http.StatusBadRequest)
			return
		}

		code := query.Get("code")
		state := query.Get("state")
		if code == "" || state == "" || !s.oauthState.Consume(state) {
			http.Error(w, "Invalid or expired OAuth state.", http.StatusBadRequest)
			return
		}

		token, err := s.tiktok.Exchange(r.Context(), code)
		if err != nil {
			var upErr *upstream.Error
			if errors.As(err, &upErr) {
				// The exchange failed upstream; forward its body but flag the
				// whole callback as a server-side failure.
				s.writeUpstreamBody(w, http.StatusInternalServerError, upErr.ContentType, upErr.Body)
				return
			}
			if errors.Is(err, upstream.ErrMissingCredentials) {
				http.Error(w, tiktokEnvMissingMsg, http.StatusInternalServerError)
				return
			}
			zerolog.Ctx(r.Context()).Error().Err(err).Msg("token exchange failed")
			s.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "token exchange failed"})
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = callbackTemplate.Execute(w, map[string]string{
			"AccessToken":  maskToken(token.AccessToken),
			"RefreshToken": maskToken(token.RefreshToken),
		})
	}
}

// TikTokMeHandler proxies the user-info endpoint with a caller-supplied
// bearer token.
func (s *Server) TikTokMeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accessToken := r.URL.Query().Get("access_token")
		if accessToken == "" {
			s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Missing access_token"})
			return
		}

		body, err := s.tiktok.UserInfo(r.Context(), accessToken)
		if err != nil {
			s.respondUpstreamError(w, r, err)
			return
		}
		s.writeUpstreamBody(w, http.StatusOK, "application/json; charset=utf-8", body)
	}
}

// TikTokVideosHandler proxies a page of the caller's video list.
func (s *Server) TikTokVideosHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accessToken := r.URL.Query().Get("access_token")
		if accessToken == "" {
			s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Missing access_token"})
			return
		}

		body, err := s.tiktok.ListVideos(r.Context(), accessToken, r.URL.Query().Get("cursor"))
		if err != nil {
			s.respondUpstreamError(w, r, err)
			return
		}
		s.writeUpstreamBody(w, http.StatusOK, "application/json; charset=utf-8", body)
	}
}
