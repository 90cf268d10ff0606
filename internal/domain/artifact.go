package domain

// ArtifactKind names the variant held by an Artifact.
type ArtifactKind string

const (
	KindGeneratedImage   ArtifactKind = "generated_image"
	KindStructuredMockup ArtifactKind = "structured_mockup"
	KindConceptBrief     ArtifactKind = "concept_brief"
	KindTextDescription  ArtifactKind = "text_description"
)

// TextDescriptionBackend is the provenance reported by TextDescription.
const TextDescriptionBackend = "text-description"

// Artifact is the result of a generation request. The set of implementations
// is closed: GeneratedImage, StructuredMockup, ConceptBrief and
// TextDescription.
type Artifact interface {
	Kind() ArtifactKind
	Backend() string
	artifact()
}

// GeneratedImage is a raster image produced by a hosted model. URL, Data or
// both may be set.
type GeneratedImage struct {
	URL         string
	Data        []byte
	MIME        string
	Width       int
	Height      int
	BackendName string
}

// StructuredMockup is locally rendered markup (SVG).
type StructuredMockup struct {
	Markup      string
	MIME        string
	BackendName string
}

// ConceptBrief is a written art-direction brief.
type ConceptBrief struct {
	Text        string
	BackendName string
}

// TextDescription is the last-resort artifact.
type TextDescription struct {
	Text string
}

func (GeneratedImage) Kind() ArtifactKind   { return KindGeneratedImage }
func (StructuredMockup) Kind() ArtifactKind { return KindStructuredMockup }
func (ConceptBrief) Kind() ArtifactKind     { return KindConceptBrief }
func (TextDescription) Kind() ArtifactKind  { return KindTextDescription }

func (a GeneratedImage) Backend() string   { return a.BackendName }
func (a StructuredMockup) Backend() string { return a.BackendName }
func (a ConceptBrief) Backend() string     { return a.BackendName }
func (TextDescription) Backend() string    { return TextDescriptionBackend }

func (GeneratedImage) artifact()   {}
func (StructuredMockup) artifact() {}
func (ConceptBrief) artifact()     {}
func (TextDescription) artifact()  {}

// Degraded reports whether the artifact came from the terminal fallback.
func Degraded(a Artifact) bool {
	if a == nil {
		return true
	}
	return a.Kind() == KindTextDescription
}
