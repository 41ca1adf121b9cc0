package entities

const (
	DefaultLanguageCode   = "en-US"
	DefaultSpecialPersona = "Teacher"
	DefaultSpecialVoice   = "en-US-Studio-O"
	DefaultVoice          = "en-US-Studio-M"
)

// VoiceSelection is the (language, voice) pair handed to the provider
type VoiceSelection struct {
	LanguageCode string `json:"language_code"`
	Name         string `json:"name"`
}

// VoicePolicy picks a provider voice from an agent name.
// Only an exact match on SpecialPersona gets SpecialVoice; everything else,
// including an empty name, gets DefaultVoice.
type VoicePolicy struct {
	LanguageCode   string
	SpecialPersona string
	SpecialVoice   string
	DefaultVoice   string
}

// NewDefaultVoicePolicy returns the stock Teacher / everyone-else policy
func NewDefaultVoicePolicy() VoicePolicy {
	return VoicePolicy{
		LanguageCode:   DefaultLanguageCode,
		SpecialPersona: DefaultSpecialPersona,
		SpecialVoice:   DefaultSpecialVoice,
		DefaultVoice:   DefaultVoice,
	}
}

// SelectVoice resolves the voice for agentName
func (p VoicePolicy) SelectVoice(agentName string) VoiceSelection {
	name := p.DefaultVoice
	if agentName == p.SpecialPersona {
		name = p.SpecialVoice
	}
	return VoiceSelection{
		LanguageCode: p.LanguageCode,
		Name:         name,
	}
}
