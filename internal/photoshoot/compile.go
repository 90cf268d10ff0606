package photoshoot

import (
	"fmt"
	"strings"

	"github.com/Ashis-Mishra07/genAi-sub000/internal/domain"
)

// QualitySuffix closes every compiled prompt.
const QualitySuffix = "professional photography, high resolution, no text overlays, no watermarks, no logos, cinematic lighting, magazine quality, Instagram-worthy aesthetic"

const segmentSeparator = ", "

// Compile turns a concept, optional product attributes and the caller's
// free text into one generation prompt. Segments are emitted in a fixed
// order and empty ones are skipped; the base prompt and QualitySuffix are
// always present. The same inputs always produce the same string.
func Compile(concept Concept, attrs *domain.ProductAttributes, callerText string) string {
	segments := make([]string, 0, 10)
	base := strings.TrimSpace(concept.BasePrompt)
	if base == "" {
		base = Lookup("", "").BasePrompt
	}
	segments = append(segments, base)
	segments = append(segments, attributeClauses(attrs)...)
	segments = append(segments,
		strings.TrimSpace(callerText),
		strings.TrimSpace(concept.Scenario),
		strings.TrimSpace(concept.StyleModifiers),
		strings.TrimSpace(concept.TechnicalSpec),
		QualitySuffix,
	)

	kept := segments[:0]
	for _, s := range segments {
		if s != "" {
			kept = append(kept, s)
		}
	}
	return strings.Join(kept, segmentSeparator)
}

func attributeClauses(attrs *domain.ProductAttributes) []string {
	if attrs == nil {
		return nil
	}
	var clauses []string
	if product := strings.TrimSpace(attrs.SpecificProductType); product != "" {
		clauses = append(clauses, fmt.Sprintf("specifically a %s", product))
	}
	if materials := domain.CleanList(attrs.Materials); len(materials) > 0 {
		clauses = append(clauses, "made from "+strings.Join(materials, " and "))
	}
	if colors := domain.CleanList(attrs.Colors); len(colors) > 0 {
		clauses = append(clauses, "in "+strings.Join(colors, " and ")+" colors")
	}
	if culture := strings.TrimSpace(attrs.Culture); culture != "" {
		clauses = append(clauses, fmt.Sprintf("with %s cultural elements", culture))
	}
	return clauses
}

// Summary is a short human readable description of the concept.
func Summary(concept Concept) string {
	parts := []string{}
	if v := strings.TrimSpace(concept.ModelType); v != "" {
		parts = append(parts, "Model: "+v)
	}
	if v := strings.TrimSpace(concept.Setting); v != "" {
		parts = append(parts, "Setting: "+v)
	}
	if v := strings.TrimSpace(concept.Poses); v != "" {
		parts = append(parts, "Poses: "+v)
	}
	return strings.Join(parts, ". ")
}
