package store

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/studypulse/studypulse-be/internal/models"
)

var ErrNotFound = errors.New("record not found")

type SessionRepository struct {
	DB *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{DB: db}
}

// List returns the user's sessions, newest first.
func (r *SessionRepository) List(userID string) ([]models.StudySession, error) {
	var sessions []models.StudySession
	err := r.DB.Where("user_id = ?", userID).
		Order("start_time DESC").Find(&sessions).Error
	return sessions, err
}

func (r *SessionRepository) Create(userID string, s *models.StudySession) error {
	s.UserID = userID
	return r.DB.Create(s).Error
}

func (r *SessionRepository) Delete(userID, id string) error {
	res := r.DB.Where("user_id = ? AND id = ?", userID, id).
		Delete(&models.StudySession{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

type DayItem struct {
	Date    string `json:"date"`
	Minutes int    `json:"minutes"`
}

type Summary struct {
	TodayMinutes int       `json:"today_minutes"`
	TodayCount   int       `json:"today_count"`
	Last7d       []DayItem `json:"last7d"`
	TotalMinutes int       `json:"total_minutes"`
}

// Summarize aggregates the user's history relative to now: today's
// minutes and session count, a zero-filled last-7-day trend, and the
// all-time total. Sessions without a duration count as 0.
func (r *SessionRepository) Summarize(userID string, now time.Time) (Summary, error) {
	var sessions []models.StudySession
	if err := r.DB.Where("user_id = ?", userID).Find(&sessions).Error; err != nil {
		return Summary{}, err
	}

	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekAgo := startOfDay.AddDate(0, 0, -6)

	sum := Summary{}
	dayMap := map[string]int{}
	for _, s := range sessions {
		m := 0
		if s.FocusedMinutes != nil {
			m = int(*s.FocusedMinutes)
		}
		sum.TotalMinutes += m
		if !s.StartTime.Before(startOfDay) {
			sum.TodayMinutes += m
			sum.TodayCount++
		}
		if !s.StartTime.Before(weekAgo) {
			dayMap[s.StartTime.In(now.Location()).Format("2006-01-02")] += m
		}
	}

	// 7-day trend, oldest first, days without data shown as 0
	sum.Last7d = make([]DayItem, 0, 7)
	for i := 6; i >= 0; i-- {
		d := now.AddDate(0, 0, -i).Format("2006-01-02")
		sum.Last7d = append(sum.Last7d, DayItem{Date: d, Minutes: dayMap[d]})
	}
	return sum, nil
}
