package tts

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/satriahrh/genai-backend/domain/repositories"
	"github.com/satriahrh/genai-backend/internal/config"
)

// NewFromConfig builds the provider named by TTS_PROVIDER.
// Callers should close the result when it implements io.Closer.
func NewFromConfig(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repositories.TextToSpeech, error) {
	switch cfg.TTS.Provider {
	case config.ProviderGoogle:
		google, err := NewGoogleTextToSpeech(ctx, GoogleConfig{
			CredentialsFile: cfg.Google.CredentialsFile,
			Endpoint:        cfg.Google.Endpoint,
		}, logger)
		if err != nil {
			return nil, err
		}
		return google, nil
	case config.ProviderElevenLabs:
		elevenLabs, err := NewElevenLabsTextToSpeech(ElevenLabsConfig{
			APIKey:     cfg.ElevenLabs.APIKey,
			APIBaseURL: cfg.ElevenLabs.APIBaseURL,
			ModelID:    cfg.ElevenLabs.ModelID,
			Stability:  cfg.ElevenLabs.Stability,
			Clarity:    cfg.ElevenLabs.Clarity,
			Timeout:    cfg.ElevenLabs.Timeout,
		}, logger)
		if err != nil {
			return nil, err
		}
		return elevenLabs, nil
	case config.ProviderMock:
		return NewMockTextToSpeech(logger), nil
	default:
		return nil, fmt.Errorf("unknown text-to-speech provider %q", cfg.TTS.Provider)
	}
}
