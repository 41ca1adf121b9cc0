package tts

import (
	"context"
	"fmt"
	"time"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"github.com/googleapis/gax-go/v2"
	"go.uber.org/zap"
	"google.golang.org/api/option"
	"google.golang.org/grpc/status"

	"github.com/satriahrh/genai-backend/domain/entities"
	"github.com/satriahrh/genai-backend/domain/repositories"
)

const googleProviderName = "google"

// GoogleConfig holds optional overrides for the Google Cloud client.
// With both fields empty the client uses Application Default Credentials
// and the public endpoint.
type GoogleConfig struct {
	CredentialsFile string
	Endpoint        string
}

// synthesizeClient is the subset of *texttospeech.Client we call
type synthesizeClient interface {
	SynthesizeSpeech(ctx context.Context, req *texttospeechpb.SynthesizeSpeechRequest, opts ...gax.CallOption) (*texttospeechpb.SynthesizeSpeechResponse, error)
	Close() error
}

// GoogleTextToSpeech implements TextToSpeech for Google Cloud
type GoogleTextToSpeech struct {
	client synthesizeClient
	logger *zap.Logger
}

var _ repositories.TextToSpeech = (*GoogleTextToSpeech)(nil)

// NewGoogleTextToSpeech creates one long-lived Google Cloud client.
// The client is safe for concurrent use by request handlers.
func NewGoogleTextToSpeech(ctx context.Context, config GoogleConfig, logger *zap.Logger) (*GoogleTextToSpeech, error) {
	var opts []option.ClientOption
	if config.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(config.CredentialsFile))
	}
	if config.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(config.Endpoint))
	}

	client, err := texttospeech.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create text-to-speech client: %w", err)
	}

	logger.Info("Google text-to-speech client ready",
		zap.Bool("customCredentials", config.CredentialsFile != ""),
		zap.String("endpoint", config.Endpoint))

	return newGoogleTextToSpeech(client, logger), nil
}

func newGoogleTextToSpeech(client synthesizeClient, logger *zap.Logger) *GoogleTextToSpeech {
	return &GoogleTextToSpeech{
		client: client,
		logger: logger,
	}
}

// Name implements repositories.TextToSpeech
func (g *GoogleTextToSpeech) Name() string {
	return googleProviderName
}

// Synthesize issues one SynthesizeSpeech call and returns the audio bytes
func (g *GoogleTextToSpeech) Synthesize(ctx context.Context, req repositories.SynthesisRequest) (*entities.Audio, error) {
	encoding, err := getAudioEncoding(req.Audio.Encoding)
	if err != nil {
		return nil, err
	}

	g.logger.Debug("Sending synthesis request to Google",
		zap.String("voice", req.Voice.Name),
		zap.String("languageCode", req.Voice.LanguageCode),
		zap.Int("textLength", len(req.Text)))

	start := time.Now()
	resp, err := g.client.SynthesizeSpeech(ctx, &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: req.Text},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: req.Voice.LanguageCode,
			Name:         req.Voice.Name,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: encoding,
			SpeakingRate:  req.Audio.SpeakingRate,
		},
	})
	if err != nil {
		return nil, &repositories.ProviderError{
			Provider: googleProviderName,
			Code:     status.Code(err).String(),
			Err:      err,
		}
	}

	if len(resp.GetAudioContent()) == 0 {
		return nil, &repositories.ProviderError{
			Provider: googleProviderName,
			Code:     "EmptyAudio",
			Err:      fmt.Errorf("google text-to-speech returned no audio"),
		}
	}

	g.logger.Debug("Received audio from Google",
		zap.Int("audioBytes", len(resp.GetAudioContent())),
		zap.Duration("elapsed", time.Since(start)))

	return &entities.Audio{
		Content:  resp.GetAudioContent(),
		Encoding: req.Audio.Encoding,
	}, nil
}

// Close releases the underlying gRPC connection
func (g *GoogleTextToSpeech) Close() error {
	return g.client.Close()
}

// getAudioEncoding converts the domain encoding to the Google enum
func getAudioEncoding(encoding entities.AudioEncoding) (texttospeechpb.AudioEncoding, error) {
	switch encoding {
	case entities.EncodingMP3:
		return texttospeechpb.AudioEncoding_MP3, nil
	default:
		return texttospeechpb.AudioEncoding_AUDIO_ENCODING_UNSPECIFIED, fmt.Errorf("unsupported audio encoding: %s", encoding)
	}
}
