package vision

import (
	"context"
	"fmt"
	"strings"

	"github.com/Ashis-Mishra07/genAi-sub000/internal/domain"
	"github.com/Ashis-Mishra07/genAi-sub000/internal/providers/genai"
)

// Provider prefixes accepted in a model list.
const (
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
)

// Spec names one entry of the ordered model list.
type Spec struct {
	Provider string
	Model    string
}

func (s Spec) String() string {
	return s.Provider + ":" + s.Model
}

// ParseSpecs reads a comma separated "provider:model" list. The model part
// may itself contain colons (e.g. "openrouter:vendor/model:free").
func ParseSpecs(raw string) ([]Spec, error) {
	var specs []Spec
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		provider, model, ok := strings.Cut(item, ":")
		provider = strings.ToLower(strings.TrimSpace(provider))
		model = strings.TrimSpace(model)
		if !ok || model == "" {
			return nil, fmt.Errorf("vision model %q must look like provider:model", item)
		}
		switch provider {
		case ProviderGemini, ProviderOpenRouter:
		default:
			return nil, fmt.Errorf("vision model %q: %w %q", item, domain.ErrUnsupportedBackend, provider)
		}
		specs = append(specs, Spec{Provider: provider, Model: model})
	}
	return specs, nil
}

type geminiVision interface {
	AnalyzeImage(ctx context.Context, model string, img genai.Image, prompt string) (string, error)
}

type openRouterVision interface {
	AnalyzeImage(ctx context.Context, model string, data []byte, mime, prompt string) (string, error)
}

// GeminiModel adapts one Gemini model to Model.
type GeminiModel struct {
	client geminiVision
	model  string
}

// NewGeminiModel binds a model id to a Gemini client.
func NewGeminiModel(client geminiVision, model string) *GeminiModel {
	return &GeminiModel{client: client, model: model}
}

func (m *GeminiModel) Name() string { return Spec{Provider: ProviderGemini, Model: m.model}.String() }

func (m *GeminiModel) Analyze(ctx context.Context, img Image, prompt string) (string, error) {
	return m.client.AnalyzeImage(ctx, m.model, genai.Image{Data: img.Data, MIME: img.MIME}, prompt)
}

// OpenRouterModel adapts one OpenRouter model to Model.
type OpenRouterModel struct {
	client openRouterVision
	model  string
}

// NewOpenRouterModel binds a model id to an OpenRouter client.
func NewOpenRouterModel(client openRouterVision, model string) *OpenRouterModel {
	return &OpenRouterModel{client: client, model: model}
}

func (m *OpenRouterModel) Name() string {
	return Spec{Provider: ProviderOpenRouter, Model: m.model}.String()
}

func (m *OpenRouterModel) Analyze(ctx context.Context, img Image, prompt string) (string, error) {
	return m.client.AnalyzeImage(ctx, m.model, img.Data, img.MIME, prompt)
}

// BuildModels turns specs into models in the same order. A spec whose
// provider client is nil is an error.
func BuildModels(specs []Spec, gemini geminiVision, openRouter openRouterVision) ([]Model, error) {
	models := make([]Model, 0, len(specs))
	for _, spec := range specs {
		switch spec.Provider {
		case ProviderGemini:
			if gemini == nil {
				return nil, fmt.Errorf("vision model %s: gemini client not configured", spec)
			}
			models = append(models, NewGeminiModel(gemini, spec.Model))
		case ProviderOpenRouter:
			if openRouter == nil {
				return nil, fmt.Errorf("vision model %s: openrouter client not configured", spec)
			}
			models = append(models, NewOpenRouterModel(openRouter, spec.Model))
		default:
			return nil, fmt.Errorf("vision model %s: %w", spec, domain.ErrUnsupportedBackend)
		}
	}
	return models, nil
}
