package insights

import (
	"encoding/json"
	"net/http"

	"github.com/studypulse/studypulse-be/internal/pkg/httpx"
	"github.com/studypulse/studypulse-be/internal/pkg/logger"
)

// HTTP exposure of the engine. Stateless: every request carries the
// whole session batch and nothing is retained after the response.

type analyzeReq struct {
	Sessions []Record `json:"sessions"`
}

func decodeSessions(w http.ResponseWriter, r *http.Request) ([]Record, bool) {
	var req analyzeReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// a body that is not a session batch at all is the caller's
		// bug, not a data-quality issue
		httpx.WriteErr(w, http.StatusBadRequest, "invalid request body",
			httpx.RequestIDFrom(r.Context()))
		return nil, false
	}
	return req.Sessions, true
}

// PeakHoursHandler serves POST /predict_peak_hours: the top 3 peak
// focus hours plus median duration and recommended break interval.
func PeakHoursHandler(log *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessions, ok := decodeSessions(w, r)
		if !ok {
			return
		}
		if len(sessions) == 0 {
			httpx.WriteOK(w, map[string]any{
				"peak_hours": []HourBucket{},
				"message":    "no sessions",
			})
			return
		}
		rep := Analyze(sessions)
		log.Debug("peak hours computed", "sessions", len(sessions), "hours", len(rep.PeakHours))
		httpx.WriteOK(w, map[string]any{
			"peak_hours":                  TopPeakHours(rep.PeakHours, 3),
			"median_focus_minutes":        rep.MedianFocusMinutes,
			"recommended_break_after_min": rep.RecommendedBreakAfterMin,
		})
	}
}

// EnergyHandler serves POST /energy_pattern: duration quartiles plus
// a suggestion, or the no-data marker.
func EnergyHandler(log *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessions, ok := decodeSessions(w, r)
		if !ok {
			return
		}
		e := ComputeEnergyPattern(sessions)
		if !e.HasData {
			log.Debug("energy pattern: no data", "sessions", len(sessions))
		}
		// EnergyPattern marshals the no-data marker itself
		httpx.WriteOK(w, e)
	}
}

// NewMux wires the insight service routes.
func NewMux(log *logger.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /predict_peak_hours", PeakHoursHandler(log))
	mux.HandleFunc("POST /energy_pattern", EnergyHandler(log))
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteOK(w, map[string]string{"status": "ok", "service": "insights"})
	})
	return mux
}
