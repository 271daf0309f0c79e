package config

// RealtimeConfig exposes the settings for minting ephemeral realtime
// sessions against the upstream voice API.
type RealtimeConfig interface {
	GetOpenAIAPIKey() string
	GetDefaultVoice() string
	GetDefaultModel() string
}

type Realtime struct{}

var _ RealtimeConfig = Realtime{}

func (Realtime) GetOpenAIAPIKey() string {
	return GetEnv("OPENAI_API_KEY", "")
}

func (Realtime) GetDefaultVoice() string {
	return GetEnv("REALTIME_VOICE", "alloy")
}

func (Realtime) GetDefaultModel() string {
	return GetEnv("REALTIME_MODEL", "gpt-4o-realtime-preview")
}
