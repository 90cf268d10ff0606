package image

import (
	"context"
	"fmt"
	"strings"

	"github.com/Ashis-Mishra07/genAi-sub000/internal/domain"
	"github.com/Ashis-Mishra07/genAi-sub000/internal/photoshoot"
	"github.com/Ashis-Mishra07/genAi-sub000/internal/providers/genai"
)

type textGenerator interface {
	GenerateText(ctx context.Context, model, prompt string) (string, error)
	HasCredentials() bool
}

// BriefBackend asks a text model for a written art-direction brief. It is
// used when no image endpoint is reachable but a language model is.
type BriefBackend struct {
	client textGenerator
	model  string
}

// NewBriefBackend wraps a Gemini text client. An empty model uses the
// client's default.
func NewBriefBackend(client textGenerator, model string) *BriefBackend {
	return &BriefBackend{client: client, model: strings.TrimSpace(model)}
}

// Name implements Backend.
func (b *BriefBackend) Name() string { return BackendGeminiBrief }

// Attempt implements Backend.
func (b *BriefBackend) Attempt(ctx context.Context, req Request) (domain.Artifact, error) {
	if b == nil || b.client == nil || !b.client.HasCredentials() {
		return nil, domain.NewFailure(domain.FailureMissingCredential, BackendGeminiBrief, genai.ErrMissingAPIKey)
	}
	text, err := b.client.GenerateText(ctx, b.model, briefInstruction(req))
	if err != nil {
		return nil, err
	}
	text = strings.TrimSpace(trimCodeFence(text))
	if text == "" {
		return nil, domain.NewFailure(domain.FailureHard, BackendGeminiBrief, domain.ErrEmptyArtifact)
	}
	return domain.ConceptBrief{Text: text, BackendName: BackendGeminiBrief}, nil
}

// Available reports whether a Gemini key is configured.
func (b *BriefBackend) Available() bool {
	return b != nil && b.client != nil && b.client.HasCredentials()
}

var _ Backend = (*BriefBackend)(nil)

func briefInstruction(req Request) string {
	var b strings.Builder
	b.WriteString("You are an art director planning a product photoshoot. ")
	b.WriteString("Write a concise shot brief in plain prose of at most 150 words covering subject, model, setting, lighting and composition. ")
	b.WriteString("Do not use markdown.\n\n")
	fmt.Fprintf(&b, "Product: %s\n", req.ProductLabel())
	if summary := photoshoot.Summary(req.Concept); summary != "" {
		fmt.Fprintf(&b, "Concept: %s\n", summary)
	}
	if req.Style != "" {
		fmt.Fprintf(&b, "Style: %s\n", req.Style)
	}
	fmt.Fprintf(&b, "Image prompt: %s\n", strings.TrimSpace(req.Prompt))
	return b.String()
}

func trimCodeFence(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```")
	if idx := strings.Index(trimmed, "\n"); idx >= 0 {
		trimmed = trimmed[idx+1:]
	}
	return strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
}
