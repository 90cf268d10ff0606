package pipeline

import (
	"context"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"

	"github.com/Ashis-Mishra07/genAi-sub000/internal/catalog"
	"github.com/Ashis-Mishra07/genAi-sub000/internal/domain"
	"github.com/Ashis-Mishra07/genAi-sub000/internal/infra"
	"github.com/Ashis-Mishra07/genAi-sub000/internal/photoshoot"
	"github.com/Ashis-Mishra07/genAi-sub000/internal/providers/image"
	"github.com/Ashis-Mishra07/genAi-sub000/internal/vision"
)

// TraceRecorder persists a dispatch trace. Errors are logged by the caller
// and never affect the artifact.
type TraceRecorder interface {
	RecordAttempts(ctx context.Context, trace Trace) error
}

// Trace is one dispatch as handed to a TraceRecorder.
type Trace struct {
	RequestID string
	Category  catalog.Category
	Style     catalog.Style
	Artifact  domain.ArtifactKind
	Attempts  []domain.ProviderAttempt
}

// GenerateInput is a generation request from a collaborator. Only Text is
// needed; Image triggers analysis before generation.
type GenerateInput struct {
	Text       string
	Style      string
	Attributes *domain.ProductAttributes
	Dimensions domain.Dimensions
	Image      []byte
	ImageMIME  string
	RequestID  string
	Locale     language.Tag
}

// GenerateOutput carries the artifact and everything derived on the way.
type GenerateOutput struct {
	RequestID  string
	Category   catalog.Category
	Style      catalog.Style
	Concept    photoshoot.Concept
	Prompt     string
	Attributes *domain.ProductAttributes
	Dimensions domain.Dimensions
	Artifact   domain.Artifact
	Attempts   []domain.ProviderAttempt
	Analysis   *vision.Result
}

// AnalysisOutput is the result of AnalyzeUploadedImage. Attributes is set
// when the model reply contained the requested JSON.
type AnalysisOutput struct {
	vision.Result
	Description string
	Attributes  *domain.ProductAttributes
}

// StudioOptions configures a Studio.
type StudioOptions struct {
	Classifier *catalog.Classifier
	Vision     *vision.Queue
	Recorder   TraceRecorder
	Logger     *infra.Logger
}

// Studio is the pipeline facade: classify, look up the concept, compile the
// prompt and dispatch it.
type Studio struct {
	classifier *catalog.Classifier
	dispatcher *Dispatcher
	vision     *vision.Queue
	recorder   TraceRecorder
	logger     *infra.Logger
}

// NewStudio wires a studio around a dispatcher.
func NewStudio(dispatcher *Dispatcher, opts StudioOptions) *Studio {
	classifier := opts.Classifier
	if classifier == nil {
		classifier = catalog.Default()
	}
	if dispatcher == nil {
		dispatcher = NewDispatcher(nil, nil, DispatcherOptions{Logger: opts.Logger})
	}
	logger := opts.Logger
	if logger == nil {
		discard := zerolog.New(io.Discard)
		l := infra.Logger(discard)
		logger = &l
	}
	return &Studio{
		classifier: classifier,
		dispatcher: dispatcher,
		vision:     opts.Vision,
		recorder:   opts.Recorder,
		logger:     logger,
	}
}

// Dispatcher exposes the configured dispatcher.
func (s *Studio) Dispatcher() *Dispatcher {
	return s.dispatcher
}

// Prepare runs the pure part of the pipeline: classification, concept lookup
// and prompt compilation.
func (s *Studio) Prepare(text, style string, attrs *domain.ProductAttributes) (catalog.Category, catalog.Style, photoshoot.Concept, string) {
	classifierInput := text
	if attrs != nil && strings.TrimSpace(attrs.SpecificProductType) != "" {
		classifierInput = strings.TrimSpace(text + " " + attrs.SpecificProductType)
	}
	category := s.classifier.Classify(classifierInput)
	variant := catalog.ParseStyle(style)
	concept := photoshoot.Lookup(category, variant)
	if attrs.IsZero() {
		attrs = nil
	}
	return category, variant, concept, photoshoot.Compile(concept, attrs, strings.TrimSpace(text))
}

// GenerateArtifact always returns an artifact. An uploaded image is analysed
// first; a failed analysis only drops the enrichment.
func (s *Studio) GenerateArtifact(ctx context.Context, in GenerateInput) GenerateOutput {
	requestID := strings.TrimSpace(in.RequestID)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	out := GenerateOutput{RequestID: requestID, Dimensions: in.Dimensions.OrDefault()}

	var attrs *domain.ProductAttributes
	if in.Attributes != nil {
		attrs = in.Attributes.Merge(nil)
	}
	if len(in.Image) > 0 && s.vision != nil {
		analysis := s.AnalyzeUploadedImage(ctx, in.Image, in.ImageMIME, "")
		out.Analysis = &analysis.Result
		if analysis.Success && analysis.Attributes != nil {
			attrs = attrs.Merge(analysis.Attributes)
		} else if !analysis.Success {
			s.logger.Warn().Err(analysis.Err).Str("request_id", requestID).Msg("studio: image analysis failed, generating without it")
		}
	}
	if attrs.IsZero() {
		attrs = nil
	}
	out.Attributes = attrs

	out.Category, out.Style, out.Concept, out.Prompt = s.Prepare(in.Text, in.Style, attrs)

	result := s.dispatcher.Dispatch(ctx, image.Request{
		Prompt:     out.Prompt,
		Dimensions: out.Dimensions,
		Category:   out.Category,
		Style:      out.Style,
		Concept:    out.Concept,
		Attributes: attrs,
		CallerText: strings.TrimSpace(in.Text),
		RequestID:  requestID,
		Locale:     in.Locale,
	})
	out.Artifact = result.Artifact
	out.Attempts = result.Attempts

	s.logger.Info().
		Str("request_id", requestID).
		Str("category", string(out.Category)).
		Str("style", string(out.Style)).
		Str("backend", out.Artifact.Backend()).
		Int("attempts", len(out.Attempts)).
		Msg("studio: artifact generated")

	if s.recorder != nil {
		trace := Trace{
			RequestID: requestID,
			Category:  out.Category,
			Style:     out.Style,
			Artifact:  out.Artifact.Kind(),
			Attempts:  out.Attempts,
		}
		if err := s.recorder.RecordAttempts(context.WithoutCancel(ctx), trace); err != nil {
			s.logger.Error().Err(err).Str("request_id", requestID).Msg("studio: record attempts")
		}
	}
	return out
}

// AnalyzeUploadedImage runs the vision queue. An empty prompt asks for the
// structured attribute reply.
func (s *Studio) AnalyzeUploadedImage(ctx context.Context, data []byte, mime, prompt string) AnalysisOutput {
	if s.vision == nil {
		return AnalysisOutput{Result: vision.Result{Err: domain.ErrNoVisionModels, Suggestion: "Configure VISION_MODELS to enable image analysis."}}
	}
	res := s.vision.Analyze(ctx, vision.Image{Data: data, MIME: mime}, prompt)
	out := AnalysisOutput{Result: res}
	if !res.Success {
		return out
	}
	analysis, err := vision.ParseAttributes(res.Text)
	out.Description = analysis.Description
	if err != nil {
		s.logger.Debug().Err(err).Str("model", res.Model).Msg("studio: analysis is not structured")
		return out
	}
	if attrs := analysis.Attributes(); !attrs.IsZero() {
		out.Attributes = attrs
	}
	return out
}

// VisionModels lists the configured vision models in queue order.
func (s *Studio) VisionModels() []string {
	if s.vision == nil {
		return nil
	}
	return s.vision.Models()
}
