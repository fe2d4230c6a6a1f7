package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/studypulse/studypulse-be/internal/aiclient"
	"github.com/studypulse/studypulse-be/internal/insights"
	"github.com/studypulse/studypulse-be/internal/models"
	"github.com/studypulse/studypulse-be/internal/pkg/logger"
	"github.com/studypulse/studypulse-be/internal/store"
)

// Insights forwards session batches to the insight service. The
// service's failures never leak upstream detail to the client: the
// response is a short generic message, the detail goes to the log.
type Insights struct {
	AI       *aiclient.Client
	Sessions *store.SessionRepository
	Log      *logger.Logger
}

func NewInsights(ai *aiclient.Client, sessions *store.SessionRepository, log *logger.Logger) *Insights {
	return &Insights{AI: ai, Sessions: sessions, Log: log}
}

type sessionsReq struct {
	Sessions []insights.Record `json:"sessions"`
}

// POST /api/ai/peak-hours
func (h *Insights) PeakHours(c *gin.Context) {
	var req sessionsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid body"})
		return
	}
	res, err := h.AI.PredictPeakHours(c.Request.Context(), req.Sessions)
	if err != nil {
		h.Log.Error("ai peak-hours failed", "error", err)
		c.JSON(500, gin.H{"error": "AI service error (peak hours)"})
		return
	}
	c.JSON(200, res)
}

// POST /api/ai/energy-pattern
func (h *Insights) EnergyPattern(c *gin.Context) {
	var req sessionsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid body"})
		return
	}
	res, err := h.AI.EnergyPattern(c.Request.Context(), req.Sessions)
	if err != nil {
		h.Log.Error("ai energy-pattern failed", "error", err)
		c.JSON(500, gin.H{"error": "AI service error (energy pattern)"})
		return
	}
	c.JSON(200, res)
}

// GET /api/test-ai
func (h *Insights) TestAI(c *gin.Context) {
	if err := h.AI.Ping(c.Request.Context()); err != nil {
		h.Log.Error("ai ping failed", "error", err)
		c.JSON(500, gin.H{"error": "AI service error (ping)"})
		return
	}
	c.JSON(200, gin.H{"message": "insight service reachable"})
}

// GET /api/user/:uid/analyze-sessions
// Loads the user's history from the store and runs both analyses.
func (h *Insights) AnalyzeSessions(c *gin.Context) {
	sessions, err := h.Sessions.List(c.Param("uid"))
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if len(sessions) == 0 {
		c.JSON(200, gin.H{"message": "No session data found for this user"})
		return
	}
	recs := toRecords(sessions)

	peak, err := h.AI.PredictPeakHours(c.Request.Context(), recs)
	if err != nil {
		h.Log.Error("ai analyze-sessions failed", "stage", "peak_hours", "error", err)
		c.JSON(500, gin.H{"error": "AI service error"})
		return
	}
	energy, err := h.AI.EnergyPattern(c.Request.Context(), recs)
	if err != nil {
		h.Log.Error("ai analyze-sessions failed", "stage", "energy_pattern", "error", err)
		c.JSON(500, gin.H{"error": "AI service error"})
		return
	}
	c.JSON(200, gin.H{
		"peak_hours":     peak,
		"energy_pattern": energy,
	})
}

// POST /api/ai-insights
// Sessions come in the body; the combined report goes back.
func (h *Insights) AIInsights(c *gin.Context) {
	var req sessionsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid body"})
		return
	}
	if len(req.Sessions) == 0 {
		c.JSON(200, gin.H{"message": "No session data"})
		return
	}
	peak, err := h.AI.PredictPeakHours(c.Request.Context(), req.Sessions)
	if err != nil {
		h.Log.Error("ai insights failed", "stage", "peak_hours", "error", err)
		c.JSON(500, gin.H{"error": "AI service failed"})
		return
	}
	energy, err := h.AI.EnergyPattern(c.Request.Context(), req.Sessions)
	if err != nil {
		h.Log.Error("ai insights failed", "stage", "energy_pattern", "error", err)
		c.JSON(500, gin.H{"error": "AI service failed"})
		return
	}
	c.JSON(200, gin.H{
		"peak_hours":                  peak.PeakHours,
		"median_focus_minutes":        peak.MedianFocusMinutes,
		"recommended_break_after_min": peak.RecommendedBreakAfterMin,
		"energy":                      energy,
	})
}

// toRecords converts stored sessions to the engine's wire shape.
func toRecords(sessions []models.StudySession) []insights.Record {
	recs := make([]insights.Record, 0, len(sessions))
	for _, s := range sessions {
		rec := insights.Record{
			StartTime:      s.StartTime.Format(time.RFC3339),
			FocusedMinutes: s.FocusedMinutes,
			Subject:        s.Subject,
			Notes:          s.Notes,
		}
		if s.EndTime != nil {
			rec.EndTime = s.EndTime.Format(time.RFC3339)
		}
		recs = append(recs, rec)
	}
	return recs
}
