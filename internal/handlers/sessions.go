package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/studypulse/studypulse-be/internal/insights"
	"github.com/studypulse/studypulse-be/internal/models"
	"github.com/studypulse/studypulse-be/internal/store"
)

type Sessions struct {
	Repo *store.SessionRepository
}

func NewSessions(repo *store.SessionRepository) *Sessions { return &Sessions{Repo: repo} }

// GET /api/user/:uid/sessions
func (h *Sessions) List(c *gin.Context) {
	sessions, err := h.Repo.List(c.Param("uid"))
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, sessions)
}

type createSessionReq struct {
	StartTime      string   `json:"startTime"`
	EndTime        string   `json:"endTime"`
	FocusedMinutes *float64 `json:"focusedMinutes"`
	Subject        string   `json:"subject"`
	Notes          string   `json:"notes"`
}

// POST /api/user/:uid/sessions
func (h *Sessions) Create(c *gin.Context) {
	var req createSessionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid body"})
		return
	}
	start, ok := insights.ParseTime(req.StartTime)
	if !ok {
		c.JSON(400, gin.H{"error": "invalid startTime"})
		return
	}
	if req.FocusedMinutes != nil && *req.FocusedMinutes < 0 {
		c.JSON(400, gin.H{"error": "focusedMinutes must be >= 0"})
		return
	}
	sess := models.StudySession{
		StartTime:      start,
		FocusedMinutes: req.FocusedMinutes,
		Subject:        req.Subject,
		Notes:          req.Notes,
	}
	if req.EndTime != "" {
		if end, ok := insights.ParseTime(req.EndTime); ok {
			sess.EndTime = &end
		}
	}
	if err := h.Repo.Create(c.Param("uid"), &sess); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, sess)
}

// DELETE /api/user/:uid/sessions/:sessionId
func (h *Sessions) Delete(c *gin.Context) {
	err := h.Repo.Delete(c.Param("uid"), c.Param("sessionId"))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(404, gin.H{"error": "session not found"})
		return
	}
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"success": true, "id": c.Param("sessionId")})
}

// GET /api/user/:uid/stats/summary
func (h *Sessions) Summary(c *gin.Context) {
	sum, err := h.Repo.Summarize(c.Param("uid"), time.Now())
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, sum)
}
