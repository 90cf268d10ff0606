package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/Ashis-Mishra07/genAi-sub000/internal/adapter/repo"
	"github.com/Ashis-Mishra07/genAi-sub000/internal/cache"
	"github.com/Ashis-Mishra07/genAi-sub000/internal/domain"
	"github.com/Ashis-Mishra07/genAi-sub000/internal/infra"
	"github.com/Ashis-Mishra07/genAi-sub000/internal/pipeline"
)

// DefaultMaxUploadBytes bounds request bodies carrying images.
const DefaultMaxUploadBytes int64 = 12 << 20

// ArtifactCache is the optional response cache for generate requests.
type ArtifactCache interface {
	Get(ctx context.Context, fp cache.Fingerprint) (*cache.Entry, error)
	Put(ctx context.Context, fp cache.Fingerprint, entry cache.Entry) error
}

// AttemptStore reads persisted dispatch traces.
type AttemptStore interface {
	ListByRequest(ctx context.Context, requestID string) ([]domain.ProviderAttempt, error)
}

// StatsStore aggregates persisted attempts per backend.
type StatsStore interface {
	OutcomeStats(ctx context.Context, window time.Duration) ([]repo.BackendStat, error)
}

// App holds the collaborators the HTTP handlers forward into.
type App struct {
	Studio         *pipeline.Studio
	Cache          ArtifactCache
	Attempts       AttemptStore
	Stats          StatsStore
	Logger         *infra.Logger
	MaxUploadBytes int64
}

// NewApp wires handlers around a studio. The optional stores may be set
// afterwards.
func NewApp(studio *pipeline.Studio, logger *infra.Logger) *App {
	if logger == nil {
		discard := zerolog.New(io.Discard)
		l := infra.Logger(discard)
		logger = &l
	}
	return &App{Studio: studio, Logger: logger, MaxUploadBytes: DefaultMaxUploadBytes}
}

type errorBody struct {
	Code       string   `json:"code"`
	Message    string   `json:"message"`
	Suggestion string   `json:"suggestion,omitempty"`
	Details    []string `json:"details,omitempty"`
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, map[string]errorBody{"error": {Code: code, Message: message}})
}

func (a *App) uploadLimit() int64 {
	if a.MaxUploadBytes > 0 {
		return a.MaxUploadBytes
	}
	return DefaultMaxUploadBytes
}
