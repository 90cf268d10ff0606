package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Ashis-Mishra07/genAi-sub000/internal/http/handlers"
	"github.com/Ashis-Mishra07/genAi-sub000/internal/infra"
	"github.com/Ashis-Mishra07/genAi-sub000/internal/middleware"
)

// Options configures the cross-cutting middleware.
type Options struct {
	Logger          infra.Logger
	CORSOrigins     []string
	RateLimitPerMin int
	DefaultLocale   string
	CountryLookup   middleware.CountryLookup
}

func NewRouter(app *handlers.App, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(opts.Logger),
		middleware.CORS(opts.CORSOrigins),
		middleware.I18N(opts.DefaultLocale, opts.CountryLookup),
	)

	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/healthz", app.Health)
		r.Get("/categories", app.Categories)
		r.Get("/styles", app.Styles)
		r.Get("/concepts/{category}/{style}", app.Concept)
		r.Post("/classify", app.Classify)
		r.Get("/artifacts/{requestID}/attempts", app.ArtifactAttempts)
		r.Get("/stats/backends", app.BackendStats)

		// Routes that reach external providers are rate limited.
		r.Group(func(r chi.Router) {
			if opts.RateLimitPerMin > 0 {
				r.Use(middleware.RateLimit(opts.RateLimitPerMin, time.Minute))
			}
			r.Post("/artifacts", app.GenerateArtifact)
			r.Post("/analyses", app.AnalyzeImage)
		})
	})

	return r
}
