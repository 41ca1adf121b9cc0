package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var TTSQueryTime = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "synthesis",
	Subsystem: "tts",
	Name:      "request_seconds",
	Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 4, 8, 16, 32},
}, []string{"provider"})

var TTSErrors = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "synthesis",
	Subsystem: "tts",
	Name:      "errors_total",
}, []string{"provider", "err_code"})

var TTSAudioBytes = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "synthesis",
	Subsystem: "tts",
	Name:      "audio_bytes",
	Buckets:   prometheus.ExponentialBuckets(1024, 4, 8),
}, []string{"provider"})

// SynthesizeRequests counts POST /synthesize outcomes by HTTP status
var SynthesizeRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "api",
	Subsystem: "synthesize",
	Name:      "requests_total",
}, []string{"status"})

var VoiceSelections = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "synthesis",
	Subsystem: "voice",
	Name:      "selections_total",
}, []string{"voice"})
