package repositories

import (
	"context"

	"github.com/satriahrh/genai-backend/domain/entities"
)

// SynthesisRequest is everything a provider needs for one call
type SynthesisRequest struct {
	Text  string
	Voice entities.VoiceSelection
	Audio entities.AudioConfig
}

// TextToSpeech abstracts any cloud speech synthesis provider
type TextToSpeech interface {
	// Synthesize blocks until the provider returns audio or fails
	Synthesize(ctx context.Context, req SynthesisRequest) (*entities.Audio, error)
	// Name identifies the provider in logs and metrics
	Name() string
}

// ProviderError is a failed provider call, carrying the provider's own error code
type ProviderError struct {
	Provider string
	Code     string
	Err      error
}

func (e *ProviderError) Error() string {
	return e.Err.Error()
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
