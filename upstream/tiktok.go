package upstream

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/decipheralgo/go-realtime-server/internal/config"
	"golang.org/x/oauth2"
)

const (
	defaultUserInfoURL  = "https://open.tiktokapis.com/v2/user/info/"
	defaultVideoListURL = "https://open.tiktokapis.com/v2/video/list/"

	userInfoFields  = "open_id,union_id,avatar_url,display_name"
	videoListFields = "video_id,create_time,duration,title,share_url,embed_html"
	videoListMax    = "20"
)

// tiktokEndpoint is TikTok's OAuth v2 endpoint pair.
var tiktokEndpoint = oauth2.Endpoint{
	AuthURL:   "https://www.tiktok.com/v2/auth/authorize/",
	TokenURL:  "https://open.tiktokapis.com/v2/oauth/token/",
	AuthStyle: oauth2.AuthStyleInParams,
}

// TikTokClient performs the three-legged OAuth flow and the authenticated
// resource calls against TikTok's open API. Tokens pass through to the
// caller; nothing is persisted here.
type TikTokClient struct {
	http         HTTPClient
	oauthHTTP    *http.Client
	config       config.OAuthConfig
	endpoint     oauth2.Endpoint
	userInfoURL  string
	videoListURL string
}

func NewTikTokClient(cfg config.OAuthConfig, client HTTPClient) *TikTokClient {
	return &TikTokClient{
		http:         client,
		oauthHTTP:    oauthHTTPClient(client),
		config:       cfg,
		endpoint:     tiktokEndpoint,
		userInfoURL:  defaultUserInfoURL,
		videoListURL: defaultVideoListURL,
	}
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// oauthHTTPClient adapts the injected seam for the oauth2 package, which
// only accepts an *http.Client through its context key. Stubbed seams are
// wrapped as a transport so tests can intercept the token exchange like any
// other outbound call.
func oauthHTTPClient(client HTTPClient) *http.Client {
	if hc, ok := client.(*http.Client); ok {
		return hc
	}
	return &http.Client{Transport: roundTripperFunc(client.Do)}
}

// OverrideEndpoints repoints the client at alternative URLs. Tests use this
// to stand in httptest servers for TikTok.
func (c *TikTokClient) OverrideEndpoints(endpoint oauth2.Endpoint, userInfoURL, videoListURL string) {
	c.endpoint = endpoint
	c.userInfoURL = userInfoURL
	c.videoListURL = videoListURL
}

// Configured reports whether the OAuth credentials are all present.
func (c *TikTokClient) Configured() bool {
	return c.config.GetTikTokClientKey() != "" &&
		c.config.GetTikTokClientSecret() != "" &&
		c.config.GetTikTokRedirectURI() != ""
}

func (c *TikTokClient) oauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     c.config.GetTikTokClientKey(),
		ClientSecret: c.config.GetTikTokClientSecret(),
		RedirectURL:  c.config.GetTikTokRedirectURI(),
		Scopes:       c.config.GetTikTokScopes(),
		Endpoint:     c.endpoint,
	}
}

// clientKeyParam carries TikTok's nonstandard name for the client id.
func (c *TikTokClient) clientKeyParam() oauth2.AuthCodeOption {
	return oauth2.SetAuthURLParam("client_key", c.config.GetTikTokClientKey())
}

// AuthCodeURL builds the consent redirect for the given state token. TikTok
// reads the client id from "client_key" and wants scopes comma-separated, so
// both are overridden on top of the standard parameters.
func (c *TikTokClient) AuthCodeURL(state string) (string, error) {
	if !c.Configured() {
		return "", fmt.Errorf("tiktok authorize: %w", ErrMissingCredentials)
	}
	cfg := c.oauthConfig()
	return cfg.AuthCodeURL(state,
		c.clientKeyParam(),
		oauth2.SetAuthURLParam("scope", strings.Join(cfg.Scopes, ",")),
	), nil
}

// Exchange swaps an authorization code for a token pair. Upstream rejections
// come back as *Error with the upstream's status and body intact.
func (c *TikTokClient) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	if !c.Configured() {
		return nil, fmt.Errorf("tiktok token exchange: %w", ErrMissingCredentials)
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.oauthHTTP)
	token, err := c.oauthConfig().Exchange(ctx, code, c.clientKeyParam())
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) && retrieveErr.Response != nil {
			return nil, &Error{
				StatusCode:  retrieveErr.Response.StatusCode,
				Body:        retrieveErr.Body,
				ContentType: retrieveErr.Response.Header.Get("Content-Type"),
			}
		}
		return nil, fmt.Errorf("tiktok token exchange: %w", err)
	}
	return token, nil
}

// UserInfo fetches the basic profile for the bearer token's user.
func (c *TikTokClient) UserInfo(ctx context.Context, accessToken string) ([]byte, error) {
	query := url.Values{"fields": {userInfoFields}}
	return c.getResource(ctx, c.userInfoURL, accessToken, query)
}

// ListVideos fetches a page of the user's video list.
func (c *TikTokClient) ListVideos(ctx context.Context, accessToken, cursor string) ([]byte, error) {
	if cursor == "" {
		cursor = "0"
	}
	query := url.Values{
		"fields":    {videoListFields},
		"cursor":    {cursor},
		"max_count": {videoListMax},
	}
	return c.getResource(ctx, c.videoListURL, accessToken, query)
}

func (c *TikTokClient) getResource(ctx context.Context, resourceURL, accessToken string, query url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, resourceURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building tiktok request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling tiktok api: %w", err)
	}
	return readBody(resp)
}
