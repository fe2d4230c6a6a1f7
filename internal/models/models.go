package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// One logged study interval. FocusedMinutes stays a pointer so the
// analytics side can tell "missing" apart from an explicit zero.
type StudySession struct {
	ID             string         `json:"id" gorm:"primaryKey;type:uuid"`
	UserID         string         `json:"-" gorm:"index;not null"`
	StartTime      time.Time      `json:"startTime" gorm:"not null;index"`
	EndTime        *time.Time     `json:"endTime,omitempty"`
	FocusedMinutes *float64       `json:"focusedMinutes,omitempty"`
	Subject        string         `json:"subject,omitempty"`
	Notes          string         `json:"notes,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"-"`
	DeletedAt      gorm.DeletedAt `json:"-" gorm:"index"`
}

func (s *StudySession) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// A study task for the todo/calendar side of the app.
type Task struct {
	ID          string         `json:"id" gorm:"primaryKey;type:uuid"`
	UserID      string         `json:"-" gorm:"index;not null"`
	Title       string         `json:"title" gorm:"not null"`
	Description string         `json:"description,omitempty"`
	Priority    string         `json:"priority" gorm:"default:Medium"` // Low, Medium, High
	DueDate     *time.Time     `json:"dueDate,omitempty"`
	Status      string         `json:"status" gorm:"default:Pending"` // Pending, Completed
	Completed   bool           `json:"completed"`
	CompletedAt *time.Time     `json:"completedAt,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"-"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
