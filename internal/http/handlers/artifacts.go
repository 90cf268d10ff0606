package handlers

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"github.com/xeipuuv/gojsonschema"

	"github.com/Ashis-Mishra07/genAi-sub000/internal/cache"
	"github.com/Ashis-Mishra07/genAi-sub000/internal/catalog"
	"github.com/Ashis-Mishra07/genAi-sub000/internal/domain"
	"github.com/Ashis-Mishra07/genAi-sub000/internal/middleware"
	"github.com/Ashis-Mishra07/genAi-sub000/internal/photoshoot"
	"github.com/Ashis-Mishra07/genAi-sub000/internal/pipeline"
)

const generateRequestSchema = `{
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "text": {"type": "string", "maxLength": 2000},
    "style": {"type": "string", "maxLength": 64},
    "width": {"type": "integer", "minimum": 64, "maximum": 4096},
    "height": {"type": "integer", "minimum": 64, "maximum": 4096},
    "image_base64": {"type": "string"},
    "image_mime": {"type": "string"},
    "attributes": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "materials": {"type": "array", "items": {"type": "string"}, "maxItems": 16},
        "colors": {"type": "array", "items": {"type": "string"}, "maxItems": 16},
        "culture": {"type": "string"},
        "specificProductType": {"type": "string"}
      }
    }
  },
  "dependencies": {
    "width": ["height"],
    "height": ["width"]
  },
  "anyOf": [
    {"required": ["text"], "properties": {"text": {"minLength": 1}}},
    {"required": ["image_base64"], "properties": {"image_base64": {"minLength": 1}}}
  ]
}`

var generateSchema = mustSchema(generateRequestSchema)

func mustSchema(raw string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(raw))
	if err != nil {
		panic(err)
	}
	return schema
}

type generateRequest struct {
	Text        string                    `json:"text"`
	Style       string                    `json:"style"`
	Width       int                       `json:"width"`
	Height      int                       `json:"height"`
	ImageBase64 string                    `json:"image_base64"`
	ImageMIME   string                    `json:"image_mime"`
	Attributes  *domain.ProductAttributes `json:"attributes"`
}

type analysisSummary struct {
	Success    bool                     `json:"success"`
	Model      string                   `json:"model,omitempty"`
	Error      string                   `json:"error,omitempty"`
	Suggestion string                   `json:"suggestion,omitempty"`
	Attempts   []domain.ProviderAttempt `json:"attempts"`
}

type generateResponse struct {
	RequestID  string                    `json:"request_id"`
	Category   catalog.Category          `json:"category"`
	Department catalog.Department        `json:"department"`
	Style      catalog.Style             `json:"style"`
	Concept    photoshoot.Concept        `json:"concept"`
	Prompt     string                    `json:"prompt"`
	Dimensions domain.Dimensions         `json:"dimensions"`
	Attributes *domain.ProductAttributes `json:"attributes,omitempty"`
	Artifact   domain.ArtifactEnvelope   `json:"artifact"`
	Degraded   bool                      `json:"degraded"`
	Attempts   []domain.ProviderAttempt  `json:"attempts"`
	Analysis   *analysisSummary          `json:"analysis,omitempty"`
	Cached     bool                      `json:"cached"`
}

// GenerateArtifact handles POST /v1/artifacts. It always answers 200 once
// the payload is valid; degraded artifacts are flagged, not failed.
func (a *App) GenerateArtifact(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, a.uploadLimit()))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			a.error(w, http.StatusRequestEntityTooLarge, "too_large", "request body too large")
			return
		}
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	result, err := generateSchema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "payload is not valid JSON")
		return
	}
	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			details = append(details, desc.String())
		}
		a.json(w, http.StatusBadRequest, map[string]errorBody{"error": {
			Code:    "invalid_request",
			Message: "payload failed validation",
			Details: details,
		}})
		return
	}

	var req generateRequest
	if err := json.Unmarshal(body, &req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	img, mime, err := decodeImage(req.ImageBase64, req.ImageMIME)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "image_base64 is not valid base64")
		return
	}

	ctx := r.Context()
	requestID := middleware.RequestIDFromContext(ctx)
	dims := domain.Dimensions{Width: req.Width, Height: req.Height}.OrDefault()

	// Image-driven requests depend on the analysis result and skip the cache.
	var fp *cache.Fingerprint
	if a.Cache != nil && len(img) == 0 {
		fp = &cache.Fingerprint{Text: req.Text, Style: req.Style, Dimensions: dims, Attributes: req.Attributes}
		entry, err := a.Cache.Get(ctx, *fp)
		if err != nil {
			a.Logger.Warn().Err(err).Str("request_id", requestID).Msg("artifact cache lookup failed")
		} else if entry != nil {
			a.json(w, http.StatusOK, cachedResponse(requestID, dims, req.Attributes, entry))
			return
		}
	}

	out := a.Studio.GenerateArtifact(ctx, pipeline.GenerateInput{
		Text:       req.Text,
		Style:      req.Style,
		Attributes: req.Attributes,
		Dimensions: dims,
		Image:      img,
		ImageMIME:  mime,
		RequestID:  requestID,
		Locale:     middleware.LocaleFromContext(ctx),
	})

	resp := generateResponse{
		RequestID:  out.RequestID,
		Category:   out.Category,
		Department: out.Category.Department(),
		Style:      out.Style,
		Concept:    out.Concept,
		Prompt:     out.Prompt,
		Dimensions: out.Dimensions,
		Attributes: out.Attributes,
		Artifact:   domain.EnvelopeOf(out.Artifact),
		Degraded:   domain.Degraded(out.Artifact),
		Attempts:   out.Attempts,
	}
	if out.Analysis != nil {
		resp.Analysis = summarizeAnalysis(out.Analysis.Success, out.Analysis.Model, out.Analysis.Err, out.Analysis.Suggestion, out.Analysis.Attempts)
	}

	if fp != nil {
		entry := cache.Entry{
			Category: string(out.Category),
			Style:    string(out.Style),
			Prompt:   out.Prompt,
			Artifact: resp.Artifact,
			Attempts: out.Attempts,
		}
		if err := a.Cache.Put(ctx, *fp, entry); err != nil {
			a.Logger.Warn().Err(err).Str("request_id", out.RequestID).Msg("artifact cache store failed")
		}
	}
	a.json(w, http.StatusOK, resp)
}

// ArtifactAttempts handles GET /v1/artifacts/{requestID}/attempts.
func (a *App) ArtifactAttempts(w http.ResponseWriter, r *http.Request) {
	if a.Attempts == nil {
		a.error(w, http.StatusServiceUnavailable, "unavailable", "attempt history is not configured")
		return
	}
	requestID := strings.TrimSpace(chi.URLParam(r, "requestID"))
	if requestID == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "request id required")
		return
	}
	attempts, err := a.Attempts.ListByRequest(r.Context(), requestID)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		a.Logger.Error().Err(err).Str("request_id", requestID).Msg("load attempts failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load attempts")
		return
	}
	if len(attempts) == 0 {
		a.error(w, http.StatusNotFound, "not_found", "no attempts recorded for request")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"request_id": requestID, "attempts": attempts})
}

func cachedResponse(requestID string, dims domain.Dimensions, attrs *domain.ProductAttributes, entry *cache.Entry) generateResponse {
	category := catalog.ParseCategory(entry.Category)
	style := catalog.ParseStyle(entry.Style)
	artifact, err := entry.Artifact.Artifact()
	degraded := err != nil || domain.Degraded(artifact)
	return generateResponse{
		RequestID:  requestID,
		Category:   category,
		Department: category.Department(),
		Style:      style,
		Concept:    photoshoot.Lookup(category, style),
		Prompt:     entry.Prompt,
		Dimensions: dims,
		Attributes: attrs,
		Artifact:   entry.Artifact,
		Degraded:   degraded,
		Attempts:   entry.Attempts,
		Cached:     true,
	}
}

func summarizeAnalysis(success bool, model string, err error, suggestion string, attempts []domain.ProviderAttempt) *analysisSummary {
	s := &analysisSummary{Success: success, Model: model, Suggestion: suggestion, Attempts: attempts}
	if err != nil {
		s.Error = err.Error()
	}
	return s
}

// decodeImage accepts raw base64 or a data URI.
func decodeImage(raw, mime string) ([]byte, string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, mime, nil
	}
	if strings.HasPrefix(raw, "data:") {
		header, payload, ok := strings.Cut(raw, ",")
		if !ok {
			return nil, "", errors.New("malformed data uri")
		}
		if mime == "" {
			mime = strings.TrimSuffix(strings.TrimPrefix(header, "data:"), ";base64")
		}
		raw = payload
	}
	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, "", err
	}
	if mime == "" {
		mime = http.DetectContentType(data)
	}
	return data, mime, nil
}
