package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Ashis-Mishra07/genAi-sub000/internal/catalog"
	"github.com/Ashis-Mishra07/genAi-sub000/internal/domain"
	"github.com/Ashis-Mishra07/genAi-sub000/internal/photoshoot"
)

type categoryItem struct {
	ID         catalog.Category   `json:"id"`
	Label      string             `json:"label"`
	Department catalog.Department `json:"department"`
	Styles     []catalog.Style    `json:"styles,omitempty"`
}

func (a *App) Categories(w http.ResponseWriter, r *http.Request) {
	all := catalog.All()
	items := make([]categoryItem, 0, len(all))
	for _, c := range all {
		items = append(items, categoryItem{
			ID:         c,
			Label:      c.Label(),
			Department: c.Department(),
			Styles:     photoshoot.StylesFor(c),
		})
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

func (a *App) Styles(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{
		"items":   catalog.Styles(),
		"default": catalog.DefaultStyle,
	})
}

// Concept handles GET /v1/concepts/{category}/{style}. Unknown categories
// are 404; styles resolve through the usual fallbacks and the response says
// whether an explicit entry exists.
func (a *App) Concept(w http.ResponseWriter, r *http.Request) {
	category := catalog.Category(strings.ToLower(strings.TrimSpace(chi.URLParam(r, "category"))))
	if !category.Valid() {
		a.error(w, http.StatusNotFound, "not_found", "unknown category")
		return
	}
	style := catalog.ParseStyle(chi.URLParam(r, "style"))
	a.json(w, http.StatusOK, map[string]any{
		"category": category,
		"style":    style,
		"explicit": photoshoot.Has(category, style),
		"concept":  photoshoot.Lookup(category, style),
	})
}

type classifyRequest struct {
	Text       string                    `json:"text"`
	Style      string                    `json:"style"`
	Attributes *domain.ProductAttributes `json:"attributes"`
}

// Classify handles POST /v1/classify. It runs the pure part of the pipeline
// and returns the compiled prompt without dispatching.
func (a *App) Classify(w http.ResponseWriter, r *http.Request) {
	var req classifyRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 64<<10)).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "text required")
		return
	}
	category, style, concept, prompt := a.Studio.Prepare(req.Text, req.Style, req.Attributes)
	a.json(w, http.StatusOK, map[string]any{
		"category":   category,
		"department": category.Department(),
		"style":      style,
		"concept":    concept,
		"prompt":     prompt,
	})
}
