package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/satriahrh/genai-backend/domain/entities"
)

const (
	ProviderGoogle     = "google"
	ProviderElevenLabs = "elevenlabs"
	ProviderMock       = "mock"
)

// Config is the process configuration, read from the environment
type Config struct {
	Port            string        `env:"PORT" envDefault:"8000"`
	LogDevelopment  bool          `env:"LOG_DEVELOPMENT" envDefault:"false"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	PersonaFile     string        `env:"PERSONA_FILE"`

	TTS        TTSConfig        `envPrefix:"TTS_"`
	Google     GoogleConfig     `envPrefix:"GOOGLE_TTS_"`
	ElevenLabs ElevenLabsConfig `envPrefix:"ELEVEN_LABS_"`
}

// TTSConfig selects the provider and the fixed synthesis parameters
type TTSConfig struct {
	Provider       string        `env:"PROVIDER" envDefault:"google"`
	LanguageCode   string        `env:"LANGUAGE_CODE" envDefault:"en-US"`
	SpecialPersona string        `env:"SPECIAL_PERSONA" envDefault:"Teacher"`
	SpecialVoice   string        `env:"SPECIAL_VOICE" envDefault:"en-US-Studio-O"`
	DefaultVoice   string        `env:"DEFAULT_VOICE" envDefault:"en-US-Studio-M"`
	SpeakingRate   float64       `env:"SPEAKING_RATE" envDefault:"1.0"`
	Timeout        time.Duration `env:"TIMEOUT" envDefault:"0s"`
}

// GoogleConfig overrides the Google Cloud client. Empty means ambient credentials.
type GoogleConfig struct {
	CredentialsFile string `env:"CREDENTIALS_FILE"`
	Endpoint        string `env:"ENDPOINT"`
}

type ElevenLabsConfig struct {
	APIKey     string        `env:"API_KEY"`
	APIBaseURL string        `env:"API_BASE_URL"`
	ModelID    string        `env:"MODEL_ID"`
	Stability  float64       `env:"STABILITY"`
	Clarity    float64       `env:"CLARITY"`
	Timeout    time.Duration `env:"TIMEOUT"`
}

// Load reads .env when present, then parses and validates the environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cross-field constraints env tags cannot express
func (c *Config) Validate() error {
	switch c.TTS.Provider {
	case ProviderGoogle, ProviderMock:
	case ProviderElevenLabs:
		if c.ElevenLabs.APIKey == "" {
			return errors.New("ELEVEN_LABS_API_KEY is required for the elevenlabs provider")
		}
	default:
		return fmt.Errorf("unknown TTS_PROVIDER %q", c.TTS.Provider)
	}

	if c.Port == "" {
		return errors.New("PORT must not be empty")
	}
	if c.TTS.SpecialVoice == "" || c.TTS.DefaultVoice == "" {
		return errors.New("TTS voices must not be empty")
	}
	if c.TTS.SpeakingRate < 0.25 || c.TTS.SpeakingRate > 4.0 {
		return fmt.Errorf("TTS_SPEAKING_RATE must be between 0.25 and 4.0, got %v", c.TTS.SpeakingRate)
	}
	if c.TTS.Timeout < 0 {
		return fmt.Errorf("TTS_TIMEOUT must not be negative, got %s", c.TTS.Timeout)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", c.ShutdownTimeout)
	}
	return nil
}

// VoicePolicy builds the voice selection rule from the config
func (c *Config) VoicePolicy() entities.VoicePolicy {
	return entities.VoicePolicy{
		LanguageCode:   c.TTS.LanguageCode,
		SpecialPersona: c.TTS.SpecialPersona,
		SpecialVoice:   c.TTS.SpecialVoice,
		DefaultVoice:   c.TTS.DefaultVoice,
	}
}

// AudioConfig is the output format requested on every call
func (c *Config) AudioConfig() entities.AudioConfig {
	return entities.AudioConfig{
		Encoding:     entities.EncodingMP3,
		SpeakingRate: c.TTS.SpeakingRate,
	}
}

type personaFile struct {
	Personas []entities.Persona `yaml:"personas"`
}

// LoadPersonas builds the persona table from PersonaFile, or the built-in roster when unset
func (c *Config) LoadPersonas() (*entities.PersonaTable, error) {
	if c.PersonaFile == "" {
		return entities.NewPersonaTable(entities.DefaultPersonas)
	}

	data, err := os.ReadFile(c.PersonaFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read persona file: %w", err)
	}

	var file personaFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse persona file %s: %w", c.PersonaFile, err)
	}
	if len(file.Personas) == 0 {
		return nil, fmt.Errorf("persona file %s defines no personas", c.PersonaFile)
	}

	return entities.NewPersonaTable(file.Personas)
}
