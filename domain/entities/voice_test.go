package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVoicePolicy_SelectVoice(t *testing.T) {
	policy := NewDefaultVoicePolicy()

	assert.Equal(t, VoiceSelection{LanguageCode: "en-US", Name: "en-US-Studio-O"}, policy.SelectVoice("Teacher"))
	assert.Equal(t, VoiceSelection{LanguageCode: "en-US", Name: "en-US-Studio-M"}, policy.SelectVoice("Artistic Aria"))
	assert.Equal(t, VoiceSelection{LanguageCode: "en-US", Name: "en-US-Studio-M"}, policy.SelectVoice(""))
	assert.Equal(t, "en-US-Studio-M", policy.SelectVoice(" Teacher").Name)
}

func TestVoicePolicy_Custom(t *testing.T) {
	policy := VoicePolicy{
		LanguageCode:   "en-GB",
		SpecialPersona: "Narrator",
		SpecialVoice:   "en-GB-Studio-B",
		DefaultVoice:   "en-GB-Studio-C",
	}

	assert.Equal(t, "en-GB-Studio-B", policy.SelectVoice("Narrator").Name)
	assert.Equal(t, "en-GB-Studio-C", policy.SelectVoice("Teacher").Name)
	assert.Equal(t, "en-GB", policy.SelectVoice("").LanguageCode)
}

func TestAudioEncoding_MIMEType(t *testing.T) {
	assert.Equal(t, "audio/mp3", EncodingMP3.MIMEType())
	assert.Equal(t, "application/octet-stream", AudioEncoding("RAW").MIMEType())
}
