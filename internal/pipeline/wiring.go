package pipeline

import (
	"fmt"
	"strings"

	"github.com/Ashis-Mishra07/genAi-sub000/internal/domain"
	"github.com/Ashis-Mishra07/genAi-sub000/internal/infra"
	"github.com/Ashis-Mishra07/genAi-sub000/internal/providers/genai"
	"github.com/Ashis-Mishra07/genAi-sub000/internal/providers/image"
	"github.com/Ashis-Mishra07/genAi-sub000/internal/providers/openrouter"
	"github.com/Ashis-Mishra07/genAi-sub000/internal/providers/pollinations"
	"github.com/Ashis-Mishra07/genAi-sub000/internal/providers/qwen"
	"github.com/Ashis-Mishra07/genAi-sub000/internal/vision"
)

// NewFromConfig builds the provider clients, the backend chain and the vision
// queue described by cfg. recorder may be nil.
func NewFromConfig(cfg *infra.Config, logger *infra.Logger, recorder TraceRecorder) (*Studio, error) {
	geminiClient, err := genai.NewClient(genai.Options{
		APIKey:         cfg.GeminiAPIKey,
		BaseURL:        cfg.GeminiBaseURL,
		Model:          cfg.GeminiBriefModel,
		Logger:         logger,
		RequestTimeout: cfg.BackendTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}

	backends := make([]image.Backend, 0, len(cfg.GenerationBackends))
	for _, name := range cfg.GenerationBackends {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case image.BackendPollinations:
			client, err := pollinations.NewClient(pollinations.Options{
				BaseURL:        cfg.PollinationsBaseURL,
				Model:          cfg.PollinationsModel,
				Logger:         logger,
				RequestTimeout: cfg.BackendTimeout,
			})
			if err != nil {
				return nil, fmt.Errorf("pollinations client: %w", err)
			}
			backends = append(backends, image.NewPollinationsBackend(client))
		case image.BackendQwen:
			client, err := qwen.NewClient(qwen.Options{
				APIKey:         cfg.QwenAPIKey,
				BaseURL:        cfg.QwenBaseURL,
				Model:          cfg.QwenModel,
				Logger:         logger,
				RequestTimeout: cfg.BackendTimeout,
			})
			if err != nil {
				return nil, fmt.Errorf("qwen client: %w", err)
			}
			backends = append(backends, image.NewQwenBackend(client))
		case image.BackendGeminiBrief:
			backends = append(backends, image.NewBriefBackend(geminiClient, cfg.GeminiBriefModel))
		case image.BackendMockup:
			backends = append(backends, image.NewMockupBackend())
		default:
			return nil, fmt.Errorf("generation backend %q: %w", name, domain.ErrUnsupportedBackend)
		}
	}
	dispatcher := NewDispatcher(backends, image.NewTextBackend(), DispatcherOptions{
		AttemptTimeout: cfg.BackendTimeout,
		Logger:         logger,
	})

	specs, err := vision.ParseSpecs(cfg.VisionModelList())
	if err != nil {
		return nil, err
	}
	openRouterClient, err := openrouter.NewClient(openrouter.Options{
		APIKey:         cfg.OpenRouterAPIKey,
		BaseURL:        cfg.OpenRouterBaseURL,
		Title:          "Product Photo Studio",
		Logger:         logger,
		RequestTimeout: cfg.VisionTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("openrouter client: %w", err)
	}
	models, err := vision.BuildModels(specs, geminiClient, openRouterClient)
	if err != nil {
		return nil, err
	}
	queue := vision.NewQueue(models, vision.Options{
		Backoff: cfg.VisionBackoff,
		Timeout: cfg.VisionTimeout,
		Logger:  logger,
	})

	return NewStudio(dispatcher, StudioOptions{
		Vision:   queue,
		Recorder: recorder,
		Logger:   logger,
	}), nil
}
