package tts

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/satriahrh/genai-backend/adapters/audio"
	"github.com/satriahrh/genai-backend/domain/entities"
	"github.com/satriahrh/genai-backend/domain/repositories"
)

const mockProviderName = "mock"

// MockTextToSpeech is a placeholder provider for local development
type MockTextToSpeech struct {
	logger *zap.Logger
}

var _ repositories.TextToSpeech = (*MockTextToSpeech)(nil)

// NewMockTextToSpeech creates a new mock text-to-speech provider
func NewMockTextToSpeech(logger *zap.Logger) *MockTextToSpeech {
	return &MockTextToSpeech{
		logger: logger,
	}
}

// Name implements repositories.TextToSpeech
func (m *MockTextToSpeech) Name() string {
	return mockProviderName
}

// Synthesize returns playable silence sized after the text
func (m *MockTextToSpeech) Synthesize(ctx context.Context, req repositories.SynthesisRequest) (*entities.Audio, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if req.Text == "" {
		return nil, fmt.Errorf("text cannot be empty")
	}

	m.logger.Info("Processing mock text-to-speech",
		zap.Int("textLength", len(req.Text)),
		zap.String("voice", req.Voice.Name))

	// One silent frame (~26ms) per byte of text
	return &entities.Audio{
		Content:  audio.SilentMP3(len(req.Text)),
		Encoding: req.Audio.Encoding,
	}, nil
}
