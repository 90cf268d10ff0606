package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ashis-Mishra07/genAi-sub000/internal/catalog"
	"github.com/Ashis-Mishra07/genAi-sub000/internal/domain"
	"github.com/Ashis-Mishra07/genAi-sub000/internal/infra"
	"github.com/Ashis-Mishra07/genAi-sub000/internal/photoshoot"
	"github.com/Ashis-Mishra07/genAi-sub000/internal/providers/image"
	"github.com/Ashis-Mishra07/genAi-sub000/internal/vision"
)

type stubVisionModel struct {
	text  string
	err   error
	calls int
}

func (s *stubVisionModel) Name() string { return "stub:vision" }

func (s *stubVisionModel) Analyze(ctx context.Context, img vision.Image, prompt string) (string, error) {
	s.calls++
	return s.text, s.err
}

type memoryRecorder struct {
	traces []Trace
	err    error
}

func (m *memoryRecorder) RecordAttempts(ctx context.Context, trace Trace) error {
	m.traces = append(m.traces, trace)
	return m.err
}

func stubbedNetworkStudio(opts StudioOptions) *Studio {
	backends := []image.Backend{
		failing("pollinations", domain.FailureTransient),
		failing("qwen", domain.FailureMissingCredential),
		image.NewMockupBackend(),
	}
	return NewStudio(NewDispatcher(backends, nil, DispatcherOptions{}), opts)
}

func TestGenerateArtifactNecklaceStudio(t *testing.T) {
	recorder := &memoryRecorder{}
	studio := stubbedNetworkStudio(StudioOptions{Recorder: recorder})

	out := studio.GenerateArtifact(context.Background(), GenerateInput{Text: "elegant-necklace.jpg", Style: "studio"})

	assert.Equal(t, catalog.Necklace, out.Category)
	assert.Equal(t, catalog.Studio, out.Style)
	assert.Contains(t, out.Concept.ModelType, "jewelry")
	for _, want := range []string{"necklace", "studio", photoshoot.QualitySuffix} {
		assert.Contains(t, out.Prompt, want)
	}
	require.NotNil(t, out.Artifact)
	assert.Equal(t, image.BackendMockup, out.Artifact.Backend())
	assert.Equal(t, domain.KindStructuredMockup, out.Artifact.Kind())
	assert.Equal(t, domain.DefaultDimensions, out.Dimensions)
	assert.NotEmpty(t, out.RequestID)
	require.Len(t, out.Attempts, 3)

	require.Len(t, recorder.traces, 1)
	assert.Equal(t, out.RequestID, recorder.traces[0].RequestID)
	assert.Equal(t, domain.KindStructuredMockup, recorder.traces[0].Artifact)
}

func TestGenerateArtifactNeverFails(t *testing.T) {
	studio := NewStudio(NewDispatcher([]image.Backend{failing("a", domain.FailureHard)}, nil, DispatcherOptions{}), StudioOptions{
		Recorder: &memoryRecorder{err: errors.New("db down")},
	})

	for _, text := range []string{"", "   ", "zzz unknown thing"} {
		out := studio.GenerateArtifact(context.Background(), GenerateInput{Text: text, Dimensions: domain.Dimensions{Width: -1, Height: 10}})
		require.NotNil(t, out.Artifact)
		assert.Equal(t, domain.KindTextDescription, out.Artifact.Kind())
		assert.Equal(t, catalog.General, out.Category)
		assert.Equal(t, catalog.DefaultStyle, out.Style)
		assert.True(t, strings.HasSuffix(out.Prompt, photoshoot.QualitySuffix))
	}
}

func TestGenerateArtifactUsesCallerAttributes(t *testing.T) {
	studio := stubbedNetworkStudio(StudioOptions{})
	attrs := &domain.ProductAttributes{Materials: []string{"terracotta"}, Colors: []string{"ochre"}}

	out := studio.GenerateArtifact(context.Background(), GenerateInput{Text: "hand painted vase", Style: "cultural", Attributes: attrs, RequestID: "req-7"})

	assert.Equal(t, "req-7", out.RequestID)
	assert.Equal(t, catalog.Vase, out.Category)
	assert.Contains(t, out.Prompt, "made from terracotta")
	assert.Contains(t, out.Prompt, "in ochre colors")
	assert.Contains(t, out.Prompt, "hand painted vase")
}

func TestGenerateArtifactEnrichesFromImage(t *testing.T) {
	model := &stubVisionModel{text: `{"productType":"silver jhumka earrings","materials":["silver"],"colors":["green","red"],"culture":"Rajasthani"}`}
	queue := vision.NewQueue([]vision.Model{model}, vision.Options{})
	studio := stubbedNetworkStudio(StudioOptions{Vision: queue})

	out := studio.GenerateArtifact(context.Background(), GenerateInput{
		Text:       "festive gift",
		Attributes: &domain.ProductAttributes{Colors: []string{"gold"}},
		Image:      []byte("jpeg"),
	})

	assert.Equal(t, 1, model.calls)
	require.NotNil(t, out.Analysis)
	assert.True(t, out.Analysis.Success)
	assert.Equal(t, catalog.Earrings, out.Category, "detected product type should join classifier input")
	require.NotNil(t, out.Attributes)
	assert.Equal(t, []string{"gold"}, out.Attributes.Colors, "caller attributes win")
	assert.Equal(t, []string{"silver"}, out.Attributes.Materials)
	assert.Contains(t, out.Prompt, "specifically a silver jhumka earrings")
	assert.Contains(t, out.Prompt, "with Rajasthani cultural elements")
}

func TestGenerateArtifactSurvivesFailedAnalysis(t *testing.T) {
	model := &stubVisionModel{err: domain.NewFailure(domain.FailureRateLimited, "stub", domain.ErrRateLimited)}
	queue := vision.NewQueue([]vision.Model{model}, vision.Options{})
	studio := stubbedNetworkStudio(StudioOptions{Vision: queue})

	out := studio.GenerateArtifact(context.Background(), GenerateInput{Text: "teapot", Image: []byte("jpeg")})

	require.NotNil(t, out.Analysis)
	assert.False(t, out.Analysis.Success)
	assert.Nil(t, out.Attributes)
	assert.Equal(t, catalog.Teapot, out.Category)
	assert.Equal(t, image.BackendMockup, out.Artifact.Backend())
}

func TestAnalyzeUploadedImage(t *testing.T) {
	model := &stubVisionModel{text: "```json\n{\"productType\":\"tote bag\",\"description\":\"A jute tote.\"}\n```"}
	studio := NewStudio(nil, StudioOptions{Vision: vision.NewQueue([]vision.Model{model}, vision.Options{})})

	out := studio.AnalyzeUploadedImage(context.Background(), []byte("png"), "image/png", "")

	require.True(t, out.Success)
	assert.Equal(t, "stub:vision", out.Model)
	assert.Equal(t, "A jute tote.", out.Description)
	require.NotNil(t, out.Attributes)
	assert.Equal(t, "tote bag", out.Attributes.SpecificProductType)
}

func TestAnalyzeUploadedImageFailure(t *testing.T) {
	model := &stubVisionModel{err: errors.New("upstream 500")}
	studio := NewStudio(nil, StudioOptions{Vision: vision.NewQueue([]vision.Model{model}, vision.Options{})})

	out := studio.AnalyzeUploadedImage(context.Background(), []byte("png"), "", "what is it")

	assert.False(t, out.Success)
	assert.ErrorIs(t, out.Err, domain.ErrVisionExhausted)
	assert.NotEmpty(t, out.Suggestion)

	bare := NewStudio(nil, StudioOptions{})
	assert.ErrorIs(t, bare.AnalyzeUploadedImage(context.Background(), []byte("png"), "", "").Err, domain.ErrNoVisionModels)
}

func TestNewFromConfigBuildsConfiguredOrder(t *testing.T) {
	cfg := &infra.Config{
		GenerationBackends: []string{"mockup", "pollinations", "qwen", "gemini-brief"},
		VisionModels:       []string{"openrouter:vendor/model:free", "gemini:gemini-2.0-flash"},
	}
	studio, err := NewFromConfig(cfg, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"mockup", "pollinations", "qwen", "gemini-brief", domain.TextDescriptionBackend}, studio.Dispatcher().Order())
	assert.Equal(t, []string{"openrouter:vendor/model:free", "gemini:gemini-2.0-flash"}, studio.vision.Models())

	// Without keys the mockup answers first and the credentialed backends are never reached.
	out := studio.GenerateArtifact(context.Background(), GenerateInput{Text: "wooden toy"})
	assert.Equal(t, image.BackendMockup, out.Artifact.Backend())

	cfg.GenerationBackends = []string{"dalle"}
	_, err = NewFromConfig(cfg, nil, nil)
	assert.ErrorIs(t, err, domain.ErrUnsupportedBackend)
}
