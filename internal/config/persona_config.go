package config

// PersonaConfig exposes the operator-tunable persona inputs: the default
// spice level and the static addendum appended to every composed prompt.
type PersonaConfig interface {
	GetDefaultSpice() string
	GetPersonaAddendum() string
}

type Persona struct{}

var _ PersonaConfig = Persona{}

// GetDefaultSpice returns the raw KIRA_SPICE value; parsing and range
// clamping happen in the persona package.
func (Persona) GetDefaultSpice() string {
	return GetEnv("KIRA_SPICE", "1")
}

func (Persona) GetPersonaAddendum() string {
	return GetEnv("PERSONA_ADDENDUM", "")
}
