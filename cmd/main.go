package main

import (
	"context"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/satriahrh/genai-backend/adapters/tts"
	"github.com/satriahrh/genai-backend/internal/api"
	"github.com/satriahrh/genai-backend/internal/config"
	"github.com/satriahrh/genai-backend/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		zap.NewExample().Fatal("invalid configuration", zap.Error(err))
	}

	// Initialize logger
	logger, err := newLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	personas, err := cfg.LoadPersonas()
	if err != nil {
		logger.Fatal("failed to load personas", zap.Error(err))
	}

	// Initialize adapters
	textToSpeech, err := tts.NewFromConfig(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize text-to-speech provider",
			zap.String("provider", cfg.TTS.Provider),
			zap.Error(err))
	}
	if closer, ok := textToSpeech.(io.Closer); ok {
		defer closer.Close()
	}

	// Initialize usecase services
	speechService := usecase.NewSpeechService(textToSpeech, personas, usecase.SpeechServiceConfig{
		VoicePolicy: cfg.VoicePolicy(),
		Audio:       cfg.AudioConfig(),
		Timeout:     cfg.TTS.Timeout,
	}, logger)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	api.InitMiddleware(e, logger)
	api.InitRoutes(e, speechService, logger)

	// Graceful shutdown
	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("shutting down the server", zap.Error(err))
		}
	}()

	logger.Info("Server started",
		zap.String("port", cfg.Port),
		zap.String("provider", textToSpeech.Name()),
		zap.Int("personas", personas.Len()))

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
		return
	}

	logger.Info("Server exited")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.LogDevelopment {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
