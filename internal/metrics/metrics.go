package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/Ashis-Mishra07/genAi-sub000/internal/domain"
)

var (
	BackendAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studio_backend_attempts_total",
			Help: "Generation backend attempts by outcome",
		},
		[]string{"backend", "outcome"},
	)

	BackendDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "studio_backend_attempt_duration_seconds",
			Help:    "Duration of generation backend attempts in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"backend"},
	)

	ArtifactsServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studio_artifacts_total",
			Help: "Artifacts returned by the dispatcher by kind and backend",
		},
		[]string{"kind", "backend"},
	)

	VisionAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studio_vision_attempts_total",
			Help: "Vision model attempts by outcome",
		},
		[]string{"model", "outcome"},
	)

	VisionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "studio_vision_attempt_duration_seconds",
			Help:    "Duration of vision model attempts in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"model"},
	)

	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studio_artifact_cache_lookups_total",
			Help: "Artifact cache lookups by result",
		},
		[]string{"result"},
	)
)

// ObserveBackendAttempt records one dispatcher attempt.
func ObserveBackendAttempt(backend string, outcome domain.Outcome, d time.Duration) {
	BackendAttempts.WithLabelValues(backend, string(outcome)).Inc()
	BackendDuration.WithLabelValues(backend).Observe(d.Seconds())
}

// ObserveArtifact records the artifact a dispatch settled on.
func ObserveArtifact(a domain.Artifact) {
	if a == nil {
		return
	}
	ArtifactsServed.WithLabelValues(string(a.Kind()), a.Backend()).Inc()
}

// ObserveVisionAttempt records one vision queue attempt.
func ObserveVisionAttempt(model string, outcome domain.Outcome, d time.Duration) {
	VisionAttempts.WithLabelValues(model, string(outcome)).Inc()
	VisionDuration.WithLabelValues(model).Observe(d.Seconds())
}

// ObserveCacheLookup records a cache hit or miss.
func ObserveCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	CacheLookups.WithLabelValues(result).Inc()
}
