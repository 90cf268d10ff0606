package image

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Ashis-Mishra07/genAi-sub000/internal/domain"
)

// TextBackend is the terminal fallback. It writes a plain description of the
// planned shot from data already on the request and never touches the
// network.
type TextBackend struct {
	lang language.Tag
}

// NewTextBackend constructs the terminal fallback.
func NewTextBackend() *TextBackend {
	return &TextBackend{lang: language.English}
}

// Name implements Terminal.
func (t *TextBackend) Name() string { return domain.TextDescriptionBackend }

// Describe implements Terminal.
func (t *TextBackend) Describe(req Request) domain.TextDescription {
	lang := language.English
	if t != nil {
		lang = t.lang
	}
	tag := req.captionLanguage(lang)
	title := cases.Title(tag)
	labels := labelsFor(tag)
	product := req.ProductLabel()

	lines := []string{fmt.Sprintf(labels.concept, title.String(product))}
	if req.Style != "" {
		lines = append(lines, labelLine(labels.style, title.String(string(req.Style))))
	}
	if v := strings.TrimSpace(req.Concept.ModelType); v != "" {
		lines = append(lines, labelLine(labels.model, v))
	}
	if v := strings.TrimSpace(req.Concept.Setting); v != "" {
		lines = append(lines, labelLine(labels.setting, v))
	}
	if v := strings.TrimSpace(req.Concept.Poses); v != "" {
		lines = append(lines, labelLine(labels.poses, v))
	}
	if req.Dimensions.Valid() {
		lines = append(lines, labelLine(labels.frame, req.Dimensions.String()))
	}
	if prompt := strings.TrimSpace(req.Prompt); prompt != "" {
		lines = append(lines, labelLine(labels.prompt, prompt))
	}
	return domain.TextDescription{Text: strings.Join(lines, "\n")}
}

var _ Terminal = (*TextBackend)(nil)
