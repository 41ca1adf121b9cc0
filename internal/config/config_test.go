package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satriahrh/genai-backend/domain/entities"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, ProviderGoogle, cfg.TTS.Provider)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, time.Duration(0), cfg.TTS.Timeout)
	assert.Equal(t, entities.NewDefaultVoicePolicy(), cfg.VoicePolicy())
	assert.Equal(t, entities.AudioConfig{Encoding: entities.EncodingMP3, SpeakingRate: 1.0}, cfg.AudioConfig())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("TTS_PROVIDER", "elevenlabs")
	t.Setenv("ELEVEN_LABS_API_KEY", "key")
	t.Setenv("ELEVEN_LABS_STABILITY", "0.3")
	t.Setenv("TTS_DEFAULT_VOICE", "voice-default")
	t.Setenv("TTS_SPECIAL_VOICE", "voice-teacher")
	t.Setenv("TTS_TIMEOUT", "15s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, ProviderElevenLabs, cfg.TTS.Provider)
	assert.Equal(t, "key", cfg.ElevenLabs.APIKey)
	assert.Equal(t, 0.3, cfg.ElevenLabs.Stability)
	assert.Equal(t, 15*time.Second, cfg.TTS.Timeout)
	assert.Equal(t, "voice-teacher", cfg.VoicePolicy().SelectVoice("Teacher").Name)
	assert.Equal(t, "voice-default", cfg.VoicePolicy().SelectVoice("Shadow Sam").Name)
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]map[string]string{
		"unknown provider":     {"TTS_PROVIDER": "polly"},
		"elevenlabs needs key": {"TTS_PROVIDER": "elevenlabs"},
		"speaking rate":        {"TTS_SPEAKING_RATE": "9"},
		"negative timeout":     {"TTS_TIMEOUT": "-1s"},
		"bad duration":         {"SHUTDOWN_TIMEOUT": "soon"},
	}

	for name, vars := range tests {
		t.Run(name, func(t *testing.T) {
			for k, v := range vars {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadPersonas_Default(t *testing.T) {
	cfg := &Config{}

	table, err := cfg.LoadPersonas()
	require.NoError(t, err)
	assert.Equal(t, len(entities.DefaultPersonas), table.Len())
}

func TestLoadPersonas_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "personas.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`personas:
  - name: Teacher
    gender: female
  - name: Coach
    gender: male
`), 0o644))

	cfg := &Config{PersonaFile: path}
	table, err := cfg.LoadPersonas()
	require.NoError(t, err)

	assert.Equal(t, 2, table.Len())
	gender, ok := table.Gender("Coach")
	assert.True(t, ok)
	assert.Equal(t, entities.Male, gender)
}

func TestLoadPersonas_FileErrors(t *testing.T) {
	dir := t.TempDir()

	cfg := &Config{PersonaFile: filepath.Join(dir, "missing.yaml")}
	_, err := cfg.LoadPersonas()
	assert.Error(t, err)

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("personas: []\n"), 0o644))
	cfg = &Config{PersonaFile: empty}
	_, err = cfg.LoadPersonas()
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("personas:\n  - name: X\n    gender: robot\n"), 0o644))
	cfg = &Config{PersonaFile: bad}
	_, err = cfg.LoadPersonas()
	assert.Error(t, err)
}
