package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/studypulse/studypulse-be/internal/insights"
	"github.com/studypulse/studypulse-be/internal/models"
	"github.com/studypulse/studypulse-be/internal/store"
)

type Tasks struct {
	Repo *store.TaskRepository
}

func NewTasks(repo *store.TaskRepository) *Tasks { return &Tasks{Repo: repo} }

// GET /api/user/:uid/tasks
func (h *Tasks) List(c *gin.Context) {
	tasks, err := h.Repo.List(c.Param("uid"))
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, tasks)
}

type taskReq struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Priority    *string `json:"priority"`
	DueDate     *string `json:"dueDate"`
	Status      *string `json:"status"`
	Completed   *bool   `json:"completed"`
}

func validPriority(p string) bool {
	return p == "Low" || p == "Medium" || p == "High"
}

// POST /api/user/:uid/tasks
func (h *Tasks) Create(c *gin.Context) {
	var req taskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid body"})
		return
	}
	if req.Title == nil || *req.Title == "" {
		c.JSON(400, gin.H{"error": "title is required"})
		return
	}
	task := models.Task{
		Title:    *req.Title,
		Priority: "Medium",
		Status:   "Pending",
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Priority != nil && validPriority(*req.Priority) {
		task.Priority = *req.Priority
	}
	if req.DueDate != nil {
		if due, ok := insights.ParseTime(*req.DueDate); ok {
			task.DueDate = &due
		}
	}
	if req.Completed != nil && *req.Completed {
		now := time.Now()
		task.Completed = true
		task.Status = "Completed"
		task.CompletedAt = &now
	}
	if err := h.Repo.Create(c.Param("uid"), &task); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, task)
}

// PUT /api/user/:uid/tasks/:taskId
func (h *Tasks) Update(c *gin.Context) {
	var req taskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid body"})
		return
	}
	patch := map[string]any{}
	if req.Title != nil {
		if *req.Title == "" {
			c.JSON(400, gin.H{"error": "title cannot be empty"})
			return
		}
		patch["title"] = *req.Title
	}
	if req.Description != nil {
		patch["description"] = *req.Description
	}
	if req.Priority != nil {
		if !validPriority(*req.Priority) {
			c.JSON(400, gin.H{"error": "priority must be Low, Medium or High"})
			return
		}
		patch["priority"] = *req.Priority
	}
	if req.DueDate != nil {
		if due, ok := insights.ParseTime(*req.DueDate); ok {
			patch["due_date"] = due
		}
	}
	if req.Status != nil {
		patch["status"] = *req.Status
	}
	if req.Completed != nil {
		patch["completed"] = *req.Completed
		if *req.Completed {
			patch["status"] = "Completed"
			patch["completed_at"] = time.Now()
		} else {
			patch["status"] = "Pending"
			patch["completed_at"] = nil
		}
	}
	if len(patch) == 0 {
		c.JSON(400, gin.H{"error": "empty patch"})
		return
	}
	task, err := h.Repo.Update(c.Param("uid"), c.Param("taskId"), patch)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(404, gin.H{"error": "task not found"})
		return
	}
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, task)
}

// DELETE /api/user/:uid/tasks/:taskId
func (h *Tasks) Delete(c *gin.Context) {
	err := h.Repo.Delete(c.Param("uid"), c.Param("taskId"))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(404, gin.H{"error": "task not found"})
		return
	}
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"success": true, "id": c.Param("taskId")})
}
