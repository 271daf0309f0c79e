package server

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	RouteIndex  = "/"
	RouteHealth = "/health"

	// Realtime session minting
	RouteRealtimeEphemeral = "/realtime-ephemeral"

	// TikTok OAuth + pass-through API
	RouteTikTokLogin    = "/tiktok/login"
	RouteTikTokCallback = "/tiktok/callback"
	RouteTikTokMe       = "/tiktok/me"
	RouteTikTokVideos   = "/tiktok/videos"

	// Persona instruction store
	RoutePersona      = "/persona"
	RoutePersonaMerge = "/persona/merge"
	RoutePersonaClear = "/persona/clear"
)
