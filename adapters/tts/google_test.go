package tts

import (
	"context"
	"errors"
	"os"
	"testing"

	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"github.com/googleapis/gax-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/satriahrh/genai-backend/domain/entities"
	"github.com/satriahrh/genai-backend/domain/repositories"
)

type fakeSynthesizeClient struct {
	lastRequest *texttospeechpb.SynthesizeSpeechRequest
	audio       []byte
	err         error
	closed      bool
}

func (f *fakeSynthesizeClient) SynthesizeSpeech(ctx context.Context, req *texttospeechpb.SynthesizeSpeechRequest, opts ...gax.CallOption) (*texttospeechpb.SynthesizeSpeechResponse, error) {
	f.lastRequest = req
	if f.err != nil {
		return nil, f.err
	}
	return &texttospeechpb.SynthesizeSpeechResponse{AudioContent: f.audio}, nil
}

func (f *fakeSynthesizeClient) Close() error {
	f.closed = true
	return nil
}

func teacherRequest() repositories.SynthesisRequest {
	return repositories.SynthesisRequest{
		Text:  "Hello class",
		Voice: entities.NewDefaultVoicePolicy().SelectVoice("Teacher"),
		Audio: entities.AudioConfig{Encoding: entities.EncodingMP3, SpeakingRate: 1},
	}
}

func TestGoogleTextToSpeech_Synthesize(t *testing.T) {
	client := &fakeSynthesizeClient{audio: []byte{0xFF, 0xFB, 0x90}}
	g := newGoogleTextToSpeech(client, zaptest.NewLogger(t))

	audio, err := g.Synthesize(context.Background(), teacherRequest())
	require.NoError(t, err)

	assert.Equal(t, []byte{0xFF, 0xFB, 0x90}, audio.Content)
	assert.Equal(t, "audio/mp3", audio.ContentType())

	req := client.lastRequest
	require.NotNil(t, req)
	assert.Equal(t, "Hello class", req.GetInput().GetText())
	assert.Equal(t, "en-US", req.GetVoice().GetLanguageCode())
	assert.Equal(t, "en-US-Studio-O", req.GetVoice().GetName())
	assert.Equal(t, texttospeechpb.AudioEncoding_MP3, req.GetAudioConfig().GetAudioEncoding())
	assert.Equal(t, 1.0, req.GetAudioConfig().GetSpeakingRate())
}

func TestGoogleTextToSpeech_ProviderError(t *testing.T) {
	client := &fakeSynthesizeClient{err: status.Error(codes.PermissionDenied, "billing disabled")}
	g := newGoogleTextToSpeech(client, zaptest.NewLogger(t))

	_, err := g.Synthesize(context.Background(), teacherRequest())
	require.Error(t, err)

	var perr *repositories.ProviderError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "google", perr.Provider)
	assert.Equal(t, codes.PermissionDenied.String(), perr.Code)
	assert.Contains(t, err.Error(), "billing disabled")
}

func TestGoogleTextToSpeech_EmptyAudio(t *testing.T) {
	g := newGoogleTextToSpeech(&fakeSynthesizeClient{}, zaptest.NewLogger(t))

	_, err := g.Synthesize(context.Background(), teacherRequest())

	var perr *repositories.ProviderError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "EmptyAudio", perr.Code)
}

func TestGoogleTextToSpeech_UnsupportedEncoding(t *testing.T) {
	client := &fakeSynthesizeClient{audio: []byte{1}}
	g := newGoogleTextToSpeech(client, zaptest.NewLogger(t))

	req := teacherRequest()
	req.Audio.Encoding = "FLAC"
	_, err := g.Synthesize(context.Background(), req)

	assert.Error(t, err)
	assert.Nil(t, client.lastRequest, "provider must not be called")
}

func TestGoogleTextToSpeech_Close(t *testing.T) {
	client := &fakeSynthesizeClient{}
	g := newGoogleTextToSpeech(client, zaptest.NewLogger(t))

	require.NoError(t, g.Close())
	assert.True(t, client.closed)
}

// Integration test - only runs with ambient Google credentials
func TestGoogleTextToSpeech_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if !hasGoogleCredentials() {
		t.Skip("Skipping integration test - set GOOGLE_APPLICATION_CREDENTIALS")
	}

	ctx := context.Background()
	g, err := NewGoogleTextToSpeech(ctx, GoogleConfig{}, zaptest.NewLogger(t))
	require.NoError(t, err)
	defer g.Close()

	audio, err := g.Synthesize(ctx, teacherRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, audio.Content)
}

func hasGoogleCredentials() bool {
	return os.Getenv("GOOGLE_APPLICATION_CREDENTIALS") != ""
}
