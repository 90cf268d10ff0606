package domain

import "fmt"

// ArtifactEnvelope is the flat JSON form of an Artifact used on the wire and
// in caches. Only the fields of the named kind are set.
type ArtifactEnvelope struct {
	Kind    ArtifactKind `json:"kind"`
	Backend string       `json:"backend"`
	URL     string       `json:"url,omitempty"`
	Data    []byte       `json:"data,omitempty"`
	MIME    string       `json:"mime,omitempty"`
	Width   int          `json:"width,omitempty"`
	Height  int          `json:"height,omitempty"`
	Markup  string       `json:"markup,omitempty"`
	Text    string       `json:"text,omitempty"`
}

// EnvelopeOf flattens a.
func EnvelopeOf(a Artifact) ArtifactEnvelope {
	switch v := a.(type) {
	case GeneratedImage:
		return ArtifactEnvelope{Kind: KindGeneratedImage, Backend: v.BackendName, URL: v.URL, Data: v.Data, MIME: v.MIME, Width: v.Width, Height: v.Height}
	case StructuredMockup:
		return ArtifactEnvelope{Kind: KindStructuredMockup, Backend: v.BackendName, Markup: v.Markup, MIME: v.MIME}
	case ConceptBrief:
		return ArtifactEnvelope{Kind: KindConceptBrief, Backend: v.BackendName, Text: v.Text}
	case TextDescription:
		return ArtifactEnvelope{Kind: KindTextDescription, Backend: TextDescriptionBackend, Text: v.Text}
	}
	return ArtifactEnvelope{}
}

// Artifact rebuilds the variant named by Kind.
func (e ArtifactEnvelope) Artifact() (Artifact, error) {
	switch e.Kind {
	case KindGeneratedImage:
		return GeneratedImage{URL: e.URL, Data: e.Data, MIME: e.MIME, Width: e.Width, Height: e.Height, BackendName: e.Backend}, nil
	case KindStructuredMockup:
		return StructuredMockup{Markup: e.Markup, MIME: e.MIME, BackendName: e.Backend}, nil
	case KindConceptBrief:
		return ConceptBrief{Text: e.Text, BackendName: e.Backend}, nil
	case KindTextDescription:
		return TextDescription{Text: e.Text}, nil
	}
	return nil, fmt.Errorf("unknown artifact kind %q", e.Kind)
}
