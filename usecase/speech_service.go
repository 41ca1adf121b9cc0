package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/satriahrh/genai-backend/domain/entities"
	"github.com/satriahrh/genai-backend/domain/repositories"
	"github.com/satriahrh/genai-backend/internal/metrics"
)

// ErrTextRequired is returned when the synthesis text is missing or empty
var ErrTextRequired = errors.New("text is required")

// SynthesizeInput is one synthesis call as received from a client
type SynthesizeInput struct {
	Text      string
	AgentName string
}

// SynthesizeOutput is the audio plus the voice it was spoken with
type SynthesizeOutput struct {
	Audio *entities.Audio
	Voice entities.VoiceSelection
}

// SpeechServiceConfig carries the fixed synthesis parameters
type SpeechServiceConfig struct {
	VoicePolicy entities.VoicePolicy
	Audio       entities.AudioConfig
	// Timeout bounds a single provider call; zero means no bound
	Timeout time.Duration
}

// SpeechService turns text and a persona name into provider audio
type SpeechService struct {
	textToSpeech repositories.TextToSpeech
	personas     *entities.PersonaTable
	config       SpeechServiceConfig
	logger       *zap.Logger
}

// NewSpeechService creates a new speech service
func NewSpeechService(
	tts repositories.TextToSpeech,
	personas *entities.PersonaTable,
	config SpeechServiceConfig,
	logger *zap.Logger,
) *SpeechService {
	return &SpeechService{
		textToSpeech: tts,
		personas:     personas,
		config:       config,
		logger:       logger,
	}
}

// Synthesize validates the input, selects the voice and calls the provider once
func (s *SpeechService) Synthesize(ctx context.Context, in SynthesizeInput) (*SynthesizeOutput, error) {
	if in.Text == "" {
		return nil, ErrTextRequired
	}

	voice := s.config.VoicePolicy.SelectVoice(in.AgentName)
	gender, known := s.personas.Gender(in.AgentName)

	s.logger.Info("Synthesizing speech",
		zap.String("provider", s.textToSpeech.Name()),
		zap.String("agentName", in.AgentName),
		zap.Bool("knownPersona", known),
		zap.String("personaGender", string(gender)),
		zap.String("voice", voice.Name),
		zap.Int("textLength", len(in.Text)))

	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	provider := s.textToSpeech.Name()
	metrics.VoiceSelections.WithLabelValues(voice.Name).Inc()

	start := time.Now()
	audio, err := s.textToSpeech.Synthesize(ctx, repositories.SynthesisRequest{
		Text:  in.Text,
		Voice: voice,
		Audio: s.config.Audio,
	})
	metrics.TTSQueryTime.WithLabelValues(provider).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.TTSErrors.WithLabelValues(provider, errorCode(err)).Inc()
		return nil, fmt.Errorf("speech synthesis failed: %w", err)
	}

	metrics.TTSAudioBytes.WithLabelValues(provider).Observe(float64(len(audio.Content)))

	return &SynthesizeOutput{
		Audio: audio,
		Voice: voice,
	}, nil
}

// Personas lists the configured persona roster
func (s *SpeechService) Personas() []entities.Persona {
	return s.personas.List()
}

func errorCode(err error) string {
	var perr *repositories.ProviderError
	switch {
	case errors.As(err, &perr):
		return perr.Code
	case errors.Is(err, context.DeadlineExceeded):
		return "DeadlineExceeded"
	case errors.Is(err, context.Canceled):
		return "Canceled"
	default:
		return "Unknown"
	}
}
