package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/studypulse/studypulse-be/internal/aiclient"
	"github.com/studypulse/studypulse-be/internal/pkg/logger"
	"github.com/studypulse/studypulse-be/internal/store"
	"github.com/studypulse/studypulse-be/pkg/webutil"
)

// NewRouter wires the gateway routes.
func NewRouter(db *gorm.DB, ai *aiclient.Client, log *logger.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())      // catch panics, return 500
	r.Use(webutil.Cors())      // CORS for the frontend
	r.Use(webutil.RequestID()) // tag every request

	r.GET("/api/v1/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "ts": time.Now().Unix()})
	})

	sessions := NewSessions(store.NewSessionRepository(db))
	tasks := NewTasks(store.NewTaskRepository(db))
	ins := NewInsights(ai, store.NewSessionRepository(db), log)

	user := r.Group("/api/user/:uid")
	{
		user.GET("/sessions", sessions.List)
		user.POST("/sessions", sessions.Create)
		user.DELETE("/sessions/:sessionId", sessions.Delete)

		user.GET("/tasks", tasks.List)
		user.POST("/tasks", tasks.Create)
		user.PUT("/tasks/:taskId", tasks.Update)
		user.DELETE("/tasks/:taskId", tasks.Delete)

		user.GET("/stats/summary", sessions.Summary)
		user.GET("/analyze-sessions", ins.AnalyzeSessions)
	}

	r.POST("/api/ai/peak-hours", ins.PeakHours)
	r.POST("/api/ai/energy-pattern", ins.EnergyPattern)
	r.GET("/api/test-ai", ins.TestAI)
	r.POST("/api/ai-insights", ins.AIInsights)

	return r
}
