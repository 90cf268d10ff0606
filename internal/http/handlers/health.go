package handlers

import (
	"context"
	"net/http"
	"time"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// Health reports the configured fallback orders. A cache outage is reported
// but does not fail the check: generation works without it.
func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	cacheState := "disabled"
	if p, ok := a.Cache.(pinger); ok {
		ctx, cancel := context.WithTimeout(r.Context(), time.Second)
		defer cancel()
		cacheState = "ok"
		if err := p.Ping(ctx); err != nil {
			a.Logger.Warn().Err(err).Msg("artifact cache ping failed")
			cacheState = "unavailable"
		}
	}
	a.json(w, http.StatusOK, map[string]any{
		"status":        "ok",
		"backends":      a.Studio.Dispatcher().Order(),
		"vision_models": a.Studio.VisionModels(),
		"cache":         cacheState,
	})
}
