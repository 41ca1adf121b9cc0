package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/satriahrh/genai-backend/adapters/audio"
	"github.com/satriahrh/genai-backend/adapters/tts"
	"github.com/satriahrh/genai-backend/internal/config"
	"github.com/satriahrh/genai-backend/usecase"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "synthesize",
		Short:        "Synthesize text with a persona voice and save it as MP3",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runSynthesize,
	}
	cmd.Flags().StringP("text", "t", "", "Text to speak")
	cmd.MarkFlagRequired("text")
	cmd.Flags().StringP("agent", "a", "", "Persona name (e.g. Teacher)")
	cmd.Flags().StringP("out", "o", "speech.mp3", "Output file")
	cmd.Flags().Duration("timeout", 30*time.Second, "Provider call timeout")
	cmd.Flags().Bool("play", false, "Play the file after saving it")
	return cmd
}

func runSynthesize(cmd *cobra.Command, _ []string) error {
	text, _ := cmd.Flags().GetString("text")
	agent, _ := cmd.Flags().GetString("agent")
	out, _ := cmd.Flags().GetString("out")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	play, _ := cmd.Flags().GetBool("play")

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	defer logger.Sync()

	personas, err := cfg.LoadPersonas()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	textToSpeech, err := tts.NewFromConfig(ctx, cfg, logger)
	if err != nil {
		return err
	}
	if closer, ok := textToSpeech.(io.Closer); ok {
		defer closer.Close()
	}

	speech := usecase.NewSpeechService(textToSpeech, personas, usecase.SpeechServiceConfig{
		VoicePolicy: cfg.VoicePolicy(),
		Audio:       cfg.AudioConfig(),
	}, logger)

	result, err := speech.Synthesize(ctx, usecase.SynthesizeInput{Text: text, AgentName: agent})
	if err != nil {
		return err
	}

	if err := os.WriteFile(out, result.Audio.Content, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}

	summary := fmt.Sprintf("Saved %s (%d bytes, voice %s)", out, len(result.Audio.Content), result.Voice.Name)
	if duration, err := audio.MP3Duration(result.Audio.Content); err == nil {
		summary += fmt.Sprintf(", %s", duration.Round(time.Millisecond))
	}
	fmt.Fprintln(cmd.OutOrStdout(), summary)

	if play {
		if err := playAudioFile(out, logger); err != nil {
			logger.Warn("Failed to play audio automatically", zap.Error(err))
		}
	}
	return nil
}

// audioPlayer represents an audio player command and its arguments
type audioPlayer struct {
	command string
	args    []string
}

// mp3Players are tried in order until one is on PATH and succeeds
var mp3Players = []audioPlayer{
	{"ffplay", []string{"-nodisp", "-autoexit", "-loglevel", "quiet"}},
	{"mpg123", []string{"-q"}},
	{"play", []string{"-q"}},
	{"afplay", []string{}},
}

func playAudioFile(filename string, logger *zap.Logger) error {
	for _, player := range mp3Players {
		if _, err := exec.LookPath(player.command); err != nil {
			continue
		}
		args := append(append([]string{}, player.args...), filename)
		logger.Info("Attempting to play audio",
			zap.String("player", player.command),
			zap.Strings("args", args))

		err := exec.Command(player.command, args...).Run()
		if err == nil {
			return nil
		}
		logger.Debug("Player failed", zap.String("player", player.command), zap.Error(err))
	}
	return fmt.Errorf("no suitable audio player found")
}
