package server

import "net/http"

func (s *Server) initRoutes() {
	// Method-specific patterns never match OPTIONS, so preflight requests
	// need their own catch-all to reach the CORS middleware.
	s.RegisterRouteFunc("OPTIONS /", ChainMiddleware(s.PreflightHandler(), s.APIMiddleware()...))

	s.RegisterRouteFunc("GET "+RouteIndex, ChainMiddleware(s.IndexHandler(), s.APIMiddleware()...))
	s.RegisterRouteFunc("GET "+RouteHealth, ChainMiddleware(s.HealthHandler(), s.APIMiddleware()...))

	// Realtime session minting
	s.RegisterRouteFunc("GET "+RouteRealtimeEphemeral, ChainMiddleware(s.RealtimeEphemeralHandler(), s.APIMiddleware()...))

	// TikTok OAuth flow + pass-through API
	s.RegisterRouteFunc("GET "+RouteTikTokLogin, ChainMiddleware(s.TikTokLoginHandler(), s.APIMiddleware()...))
	s.RegisterRouteFunc("GET "+RouteTikTokCallback, ChainMiddleware(s.TikTokCallbackHandler(), s.APIMiddleware()...))
	s.RegisterRouteFunc("GET "+RouteTikTokMe, ChainMiddleware(s.TikTokMeHandler(), s.APIMiddleware()...))
	s.RegisterRouteFunc("GET "+RouteTikTokVideos, ChainMiddleware(s.TikTokVideosHandler(), s.APIMiddleware()...))

	// Persona instruction store
	s.RegisterRouteFunc("GET "+RoutePersona, ChainMiddleware(s.PersonaSnapshotHandler(), s.APIMiddleware()...))
	s.RegisterRouteFunc("POST "+RoutePersonaMerge, ChainMiddleware(s.PersonaMergeHandler(), s.APIMiddleware()...))
	s.RegisterRouteFunc("POST "+RoutePersonaClear, ChainMiddleware(s.PersonaClearHandler(), s.APIMiddleware()...))
}

var _ http.Handler = (*Server)(nil)
