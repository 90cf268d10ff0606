package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/Ashis-Mishra07/genAi-sub000/internal/domain"
)

type analysisResponse struct {
	Model       string                    `json:"model"`
	Text        string                    `json:"text"`
	Description string                    `json:"description,omitempty"`
	Attributes  *domain.ProductAttributes `json:"attributes,omitempty"`
	Attempts    []domain.ProviderAttempt  `json:"attempts"`
}

// AnalyzeImage handles POST /v1/analyses with a multipart "image" part and
// an optional "prompt" field. Exhausting every vision model answers 503 with
// a retry suggestion.
func (a *App) AnalyzeImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, a.uploadLimit())
	if err := r.ParseMultipartForm(a.uploadLimit()); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			a.error(w, http.StatusRequestEntityTooLarge, "too_large", "image too large")
			return
		}
		a.error(w, http.StatusBadRequest, "bad_request", "expected multipart form with an image part")
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "image part required")
		return
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil || len(data) == 0 {
		a.error(w, http.StatusBadRequest, "bad_request", "image part is empty")
		return
	}
	mime := strings.TrimSpace(header.Header.Get("Content-Type"))
	if mime == "" || mime == "application/octet-stream" {
		mime = http.DetectContentType(data)
	}
	if !strings.HasPrefix(mime, "image/") {
		a.error(w, http.StatusUnsupportedMediaType, "unsupported_media_type", "upload must be an image")
		return
	}

	out := a.Studio.AnalyzeUploadedImage(r.Context(), data, mime, r.FormValue("prompt"))
	if !out.Success {
		msg := "image analysis failed"
		if out.Err != nil {
			msg = out.Err.Error()
		}
		a.json(w, http.StatusServiceUnavailable, map[string]any{
			"error": errorBody{
				Code:       "vision_unavailable",
				Message:    msg,
				Suggestion: out.Suggestion,
			},
			"attempts": out.Attempts,
		})
		return
	}
	a.json(w, http.StatusOK, analysisResponse{
		Model:       out.Model,
		Text:        out.Text,
		Description: out.Description,
		Attributes:  out.Attributes,
		Attempts:    out.Attempts,
	})
}
