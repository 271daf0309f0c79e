// Package upstream wraps the outbound calls this service makes: minting
// ephemeral sessions against the realtime voice API and the TikTok OAuth
// token/resource endpoints. Non-2xx responses are surfaced as *Error so the
// HTTP boundary can forward the upstream's status and body verbatim.
package upstream

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrMissingCredentials is returned when a call needs a credential that was
// never configured. Handlers translate it into a fixed 500, never a crash.
var ErrMissingCredentials = errors.New("missing upstream credentials")

// HTTPClient is the seam through which all resource requests leave the
// process; tests swap in a stub that records or refuses calls.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewHTTPClient returns the default client used in production.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: 30 * time.Second}
}

// Error carries a non-2xx upstream response. The body is the upstream's own
// payload (JSON or raw text) and is relayed to the caller unchanged; this
// service never invents an error body for upstream failures.
type Error struct {
	StatusCode  int
	Body        []byte
	ContentType string
}

func (e *Error) Error() string {
	return fmt.Sprintf("upstream returned status %d", e.StatusCode)
}

// readBody drains a response and converts non-2xx statuses into *Error.
func readBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading upstream response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{
			StatusCode:  resp.StatusCode,
			Body:        body,
			ContentType: resp.Header.Get("Content-Type"),
		}
	}
	return body, nil
}
