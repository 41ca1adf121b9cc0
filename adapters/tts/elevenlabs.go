package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/satriahrh/genai-backend/domain/entities"
	"github.com/satriahrh/genai-backend/domain/repositories"
)

const (
	elevenLabsProviderName = "elevenlabs"

	defaultAPIBaseURL   = "https://api.elevenlabs.io/v1"
	defaultModelID      = "eleven_multilingual_v2"
	defaultStability    = 0.5
	defaultClarity      = 0.75
	defaultHTTPTimeout  = 60 * time.Second
	mp3OutputFormat     = "mp3_44100_128"
	maxErrorBodyInError = 512
)

// ElevenLabsConfig holds configuration for the ElevenLabs adapter.
// APIKey is required, every other field falls back to a default.
// Voice IDs are not part of the config: they come from the voice policy
// on each request.
type ElevenLabsConfig struct {
	APIKey     string
	APIBaseURL string
	ModelID    string
	Stability  float64
	Clarity    float64
	Timeout    time.Duration
}

// ElevenLabsTextToSpeech implements TextToSpeech using the ElevenLabs REST API
type ElevenLabsTextToSpeech struct {
	apiKey     string
	apiBaseURL string
	modelID    string
	stability  float64
	clarity    float64
	httpClient *http.Client
	logger     *zap.Logger
}

var _ repositories.TextToSpeech = (*ElevenLabsTextToSpeech)(nil)

// ElevenLabsVoiceSettings represents voice settings for the ElevenLabs API
type ElevenLabsVoiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
	Speed           float64 `json:"speed,omitempty"`
	UseSpeakerBoost bool    `json:"use_speaker_boost,omitempty"`
}

// ElevenLabsRequest represents the request payload for the ElevenLabs TTS API
type ElevenLabsRequest struct {
	Text          string                  `json:"text"`
	ModelID       string                  `json:"model_id"`
	VoiceSettings ElevenLabsVoiceSettings `json:"voice_settings"`
}

// ValidateElevenLabsConfig validates the ElevenLabsConfig
func ValidateElevenLabsConfig(config ElevenLabsConfig) error {
	if config.APIKey == "" {
		return fmt.Errorf("eleven labs API key is required")
	}
	if config.Stability < 0 || config.Stability > 1 {
		return fmt.Errorf("stability must be between 0 and 1, got %f", config.Stability)
	}
	if config.Clarity < 0 || config.Clarity > 1 {
		return fmt.Errorf("clarity must be between 0 and 1, got %f", config.Clarity)
	}
	if config.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", config.Timeout)
	}
	return nil
}

// NewElevenLabsTextToSpeech creates a new ElevenLabs adapter
func NewElevenLabsTextToSpeech(config ElevenLabsConfig, logger *zap.Logger) (*ElevenLabsTextToSpeech, error) {
	if err := ValidateElevenLabsConfig(config); err != nil {
		return nil, err
	}

	apiBaseURL := strings.TrimRight(config.APIBaseURL, "/")
	if apiBaseURL == "" {
		apiBaseURL = defaultAPIBaseURL
	}

	modelID := config.ModelID
	if modelID == "" {
		modelID = defaultModelID
	}

	stability := config.Stability
	if stability == 0 {
		stability = defaultStability
	}

	clarity := config.Clarity
	if clarity == 0 {
		clarity = defaultClarity
	}

	timeout := config.Timeout
	if timeout == 0 {
		timeout = defaultHTTPTimeout
	}

	logger.Info("ElevenLabs text-to-speech ready",
		zap.String("apiBaseURL", apiBaseURL),
		zap.String("modelID", modelID),
		zap.Float64("stability", stability),
		zap.Float64("clarity", clarity))

	return &ElevenLabsTextToSpeech{
		apiKey:     config.APIKey,
		apiBaseURL: apiBaseURL,
		modelID:    modelID,
		stability:  stability,
		clarity:    clarity,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}, nil
}

// Name implements repositories.TextToSpeech
func (e *ElevenLabsTextToSpeech) Name() string {
	return elevenLabsProviderName
}

// Synthesize converts text to MP3 using the voice ID in req.Voice.Name
func (e *ElevenLabsTextToSpeech) Synthesize(ctx context.Context, req repositories.SynthesisRequest) (*entities.Audio, error) {
	if req.Audio.Encoding != entities.EncodingMP3 {
		return nil, fmt.Errorf("unsupported audio encoding: %s", req.Audio.Encoding)
	}
	if req.Voice.Name == "" {
		return nil, fmt.Errorf("voice ID is required")
	}

	body, err := json.Marshal(ElevenLabsRequest{
		Text:    req.Text,
		ModelID: e.modelID,
		VoiceSettings: ElevenLabsVoiceSettings{
			Stability:       e.stability,
			SimilarityBoost: e.clarity,
			Speed:           req.Audio.SpeakingRate,
			UseSpeakerBoost: true,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/text-to-speech/%s?output_format=%s", e.apiBaseURL, req.Voice.Name, mp3OutputFormat)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	httpReq.Header.Set("Accept", "audio/mpeg")
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("xi-api-key", e.apiKey)

	e.logger.Debug("Sending request to ElevenLabs API",
		zap.String("voiceID", req.Voice.Name),
		zap.String("modelID", e.modelID))

	resp, err := e.httpClient.Do(httpReq)
	if err != nil {
		return nil, &repositories.ProviderError{
			Provider: elevenLabsProviderName,
			Code:     "Transport",
			Err:      fmt.Errorf("failed to execute HTTP request: %w", err),
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errorBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyInError))
		return nil, &repositories.ProviderError{
			Provider: elevenLabsProviderName,
			Code:     strconv.Itoa(resp.StatusCode),
			Err:      fmt.Errorf("eleven labs API returned %d: %s", resp.StatusCode, strings.TrimSpace(string(errorBody))),
		}
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &repositories.ProviderError{
			Provider: elevenLabsProviderName,
			Code:     "Transport",
			Err:      fmt.Errorf("failed to read audio: %w", err),
		}
	}
	if len(audio) == 0 {
		return nil, &repositories.ProviderError{
			Provider: elevenLabsProviderName,
			Code:     "EmptyAudio",
			Err:      fmt.Errorf("eleven labs returned no audio"),
		}
	}

	e.logger.Debug("Received audio from ElevenLabs",
		zap.String("contentType", resp.Header.Get("Content-Type")),
		zap.Int("audioBytes", len(audio)))

	return &entities.Audio{
		Content:  audio,
		Encoding: entities.EncodingMP3,
	}, nil
}
