package handlers

import (
	"net/http"
	"strconv"
	"time"
)

const maxStatsWindowHours = 24 * 30

// BackendStats handles GET /v1/stats/backends?hours=N.
func (a *App) BackendStats(w http.ResponseWriter, r *http.Request) {
	if a.Stats == nil {
		a.error(w, http.StatusServiceUnavailable, "unavailable", "attempt history is not configured")
		return
	}
	hours := 24
	if raw := r.URL.Query().Get("hours"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > maxStatsWindowHours {
			a.error(w, http.StatusBadRequest, "bad_request", "hours must be between 1 and 720")
			return
		}
		hours = n
	}
	stats, err := a.Stats.OutcomeStats(r.Context(), time.Duration(hours)*time.Hour)
	if err != nil {
		a.Logger.Error().Err(err).Msg("load backend stats failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load stats")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"window_hours": hours, "backends": stats})
}
