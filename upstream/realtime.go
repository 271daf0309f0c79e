package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/decipheralgo/go-realtime-server/internal/config"
)

const defaultSessionsURL = "https://api.openai.com/v1/realtime/sessions"

// SessionRequest is the payload for minting an ephemeral realtime session.
type SessionRequest struct {
	Model        string `json:"model"`
	Voice        string `json:"voice"`
	Instructions string `json:"instructions"`
}

// SessionCredential is the relevant slice of the upstream session response:
// the short-lived client secret relayed verbatim to the caller. The secret's
// shape is upstream-defined, so it stays raw JSON.
type SessionCredential struct {
	ClientSecret json.RawMessage `json:"client_secret"`
}

// RealtimeClient mints ephemeral session credentials so browser clients can
// open a realtime voice session without ever seeing the long-lived API key.
type RealtimeClient struct {
	http        HTTPClient
	config      config.RealtimeConfig
	sessionsURL string
}

func NewRealtimeClient(cfg config.RealtimeConfig, client HTTPClient) *RealtimeClient {
	return &RealtimeClient{
		http:        client,
		config:      cfg,
		sessionsURL: defaultSessionsURL,
	}
}

// MintSession exchanges the long-lived API key for a short-lived client
// secret. Returns ErrMissingCredentials when no API key is configured, or
// *Error carrying the upstream status and body on rejection.
func (c *RealtimeClient) MintSession(ctx context.Context, req SessionRequest) (*SessionCredential, error) {
	apiKey := c.config.GetOpenAIAPIKey()
	if apiKey == "" {
		return nil, fmt.Errorf("realtime session: %w", ErrMissingCredentials)
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encoding session request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.sessionsURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("building session request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("calling realtime sessions endpoint: %w", err)
	}

	body, err := readBody(resp)
	if err != nil {
		return nil, err
	}

	var credential SessionCredential
	if err := json.Unmarshal(body, &credential); err != nil {
		return nil, fmt.Errorf("decoding session response: %w", err)
	}
	return &credential, nil
}
