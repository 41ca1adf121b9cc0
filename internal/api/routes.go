package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/satriahrh/genai-backend/adapters/audio"
	"github.com/satriahrh/genai-backend/internal/metrics"
	"github.com/satriahrh/genai-backend/usecase"
)

const (
	welcomeMessage   = "Welcome to GenAI Backend API"
	healthyStatus    = "healthy"
	textRequired     = "Text is required"
	speechFilename   = "speech.mp3"
	headerDurationMs = "X-Audio-Duration-Ms"
)

// InitRoutes initializes all API routes
func InitRoutes(e *echo.Echo, speech *usecase.SpeechService, logger *zap.Logger) {
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, MessageResponse{Message: welcomeMessage})
	})

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, HealthResponse{Status: healthyStatus})
	})

	e.GET("/personas", func(c echo.Context) error {
		return c.JSON(http.StatusOK, PersonasResponse{Personas: speech.Personas()})
	})

	e.POST("/synthesize", func(c echo.Context) error {
		return synthesize(c, speech, logger)
	})

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

func synthesize(c echo.Context, speech *usecase.SpeechService, logger *zap.Logger) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return internalError(c, logger, fmt.Errorf("failed to read request body: %w", err))
	}
	var req SynthesizeRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return internalError(c, logger, fmt.Errorf("invalid request body: %w", err))
	}

	out, err := speech.Synthesize(c.Request().Context(), usecase.SynthesizeInput{
		Text:      req.Text,
		AgentName: req.agent(),
	})
	if errors.Is(err, usecase.ErrTextRequired) {
		metrics.SynthesizeRequests.WithLabelValues(strconv.Itoa(http.StatusBadRequest)).Inc()
		return c.JSON(http.StatusBadRequest, ErrorResponse{Detail: textRequired})
	}
	if err != nil {
		return internalError(c, logger, err)
	}

	header := c.Response().Header()
	header.Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", speechFilename))
	if duration, err := audio.MP3Duration(out.Audio.Content); err == nil {
		header.Set(headerDurationMs, strconv.FormatInt(duration.Milliseconds(), 10))
	} else {
		logger.Debug("Could not read audio duration", zap.Error(err))
	}

	metrics.SynthesizeRequests.WithLabelValues(strconv.Itoa(http.StatusOK)).Inc()
	return c.Blob(http.StatusOK, out.Audio.ContentType(), out.Audio.Content)
}

func internalError(c echo.Context, logger *zap.Logger, err error) error {
	logger.Error("Speech synthesis request failed",
		zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
		zap.Error(err))
	metrics.SynthesizeRequests.WithLabelValues(strconv.Itoa(http.StatusInternalServerError)).Inc()
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: err.Error()})
}
