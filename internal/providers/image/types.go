package image

import (
	"context"
	"strings"

	"golang.org/x/text/language"

	"github.com/Ashis-Mishra07/genAi-sub000/internal/catalog"
	"github.com/Ashis-Mishra07/genAi-sub000/internal/domain"
	"github.com/Ashis-Mishra07/genAi-sub000/internal/photoshoot"
)

// Backend names used in traces, metrics and the GENERATION_BACKENDS setting.
const (
	BackendPollinations = "pollinations"
	BackendQwen         = "qwen"
	BackendGeminiBrief  = "gemini-brief"
	BackendMockup       = "mockup"
)

// DefaultNegativePrompt captures undesirable artefacts we want the model to avoid.
const DefaultNegativePrompt = "low quality, blurry, distorted, washed out, incorrect anatomy, extra limbs, text artefacts, watermark"

// Request is the normalized input handed to every backend. Prompt is the
// compiled prompt; the remaining fields let local backends render without
// re-deriving anything.
type Request struct {
	Prompt     string
	Dimensions domain.Dimensions
	Category   catalog.Category
	Style      catalog.Style
	Concept    photoshoot.Concept
	Attributes *domain.ProductAttributes
	CallerText string
	RequestID  string
	// Locale selects the caption language of local renderers. Und means
	// the renderer's default.
	Locale language.Tag
}

// Backend produces one artifact or fails. Failures should be *domain.Failure
// so the dispatcher can record their kind.
type Backend interface {
	Name() string
	Attempt(ctx context.Context, req Request) (domain.Artifact, error)
}

// Availability is implemented by backends that can tell, without a network
// call, whether they are configured to run at all.
type Availability interface {
	Available() bool
}

// Terminal is the last stage of a dispatch. It cannot fail.
type Terminal interface {
	Name() string
	Describe(req Request) domain.TextDescription
}

// ProductLabel is the most specific human name available for the product.
func (r Request) ProductLabel() string {
	if r.Attributes != nil {
		if v := strings.TrimSpace(r.Attributes.SpecificProductType); v != "" {
			return v
		}
	}
	if r.Category != "" && r.Category != catalog.General {
		return r.Category.Label()
	}
	return "product"
}

func (r Request) captionLanguage(fallback language.Tag) language.Tag {
	if r.Locale != language.Und {
		return r.Locale
	}
	return fallback
}
