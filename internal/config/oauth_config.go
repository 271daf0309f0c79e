package config

import (
	"strings"
	"time"
)

// OAuthConfig exposes the TikTok OAuth client settings. Credentials come
// straight from the environment; none of them may ever be echoed back.
type OAuthConfig interface {
	GetTikTokClientKey() string
	GetTikTokClientSecret() string
	GetTikTokRedirectURI() string
	GetTikTokScopes() []string
	GetStateTokenTTL() time.Duration
}

const (
	defaultRedirectURI   = "https://realtime-server-4szb.onrender.com/tiktok/callback"
	defaultScopes        = "user.info.basic,video.list"
	defaultStateTokenTTL = 15 * time.Minute
)

type OAuth struct{}

var _ OAuthConfig = OAuth{}

func (OAuth) GetTikTokClientKey() string {
	return GetEnv("TIKTOK_CLIENT_KEY", "")
}

func (OAuth) GetTikTokClientSecret() string {
	return GetEnv("TIKTOK_CLIENT_SECRET", "")
}

func (OAuth) GetTikTokRedirectURI() string {
	return GetEnv("TIKTOK_REDIRECT_URI", defaultRedirectURI)
}

// GetTikTokScopes parses the CSV scope list configured in the TikTok dev
// console.
func (OAuth) GetTikTokScopes() []string {
	var scopes []string
	for _, s := range strings.Split(GetEnv("TIKTOK_SCOPES", defaultScopes), ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			scopes = append(scopes, s)
		}
	}
	return scopes
}

// GetStateTokenTTL controls how long an issued OAuth state token stays
// consumable. "0" disables expiry.
func (OAuth) GetStateTokenTTL() time.Duration {
	raw := GetEnv("TIKTOK_STATE_TTL", "")
	if raw == "" {
		return defaultStateTokenTTL
	}
	ttl, err := time.ParseDuration(raw)
	if err != nil || ttl < 0 {
		return defaultStateTokenTTL
	}
	return ttl
}
