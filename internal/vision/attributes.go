package vision

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/Ashis-Mishra07/genAi-sub000/internal/domain"
)

// DefaultPrompt asks a vision model for the JSON shape ParseAttributes reads.
const DefaultPrompt = `Analyze this product photo for an e-commerce listing. Reply with a single JSON object and nothing else, using these keys:
"productType": the specific product, e.g. "silver temple necklace",
"materials": array of visible materials,
"colors": array of dominant colors,
"culture": cultural or regional craft style if recognisable, otherwise "",
"description": one sentence describing the product.`

// Analysis is the structured reading of a vision reply.
type Analysis struct {
	ProductType string   `json:"productType"`
	Materials   []string `json:"materials"`
	Colors      []string `json:"colors"`
	Culture     string   `json:"culture"`
	Description string   `json:"description"`
}

// Attributes converts the analysis into request enrichment.
func (a Analysis) Attributes() *domain.ProductAttributes {
	return &domain.ProductAttributes{
		Materials:           domain.CleanList(a.Materials),
		Colors:              domain.CleanList(a.Colors),
		Culture:             strings.TrimSpace(a.Culture),
		SpecificProductType: strings.TrimSpace(a.ProductType),
	}
}

// ParseAttributes reads the JSON object out of a model reply. Code fences
// and surrounding prose are tolerated. Replies without a usable object fall
// back to using the whole text as the description.
func ParseAttributes(raw string) (Analysis, error) {
	fragment := extractJSONFragment(raw)
	if fragment == "" {
		return Analysis{}, errors.New("vision: empty analysis")
	}
	var decoded Analysis
	if err := json.Unmarshal([]byte(fragment), &decoded); err != nil {
		return Analysis{Description: strings.TrimSpace(trimCodeFence(raw))}, err
	}
	decoded.ProductType = strings.TrimSpace(decoded.ProductType)
	decoded.Description = strings.TrimSpace(decoded.Description)
	return decoded, nil
}

func extractJSONFragment(raw string) string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return ""
	}
	text = trimCodeFence(text)
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end >= start {
		text = text[start : end+1]
	}
	return strings.TrimSpace(text)
}

func trimCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```JSON")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSpace(trimmed)
	if idx := strings.LastIndex(trimmed, "```"); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	return strings.TrimSpace(trimmed)
}
