package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/studypulse/studypulse-be/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.StudySession{}, &models.Task{}))
	return db
}

func fm(v float64) *float64 { return &v }

func TestSessionCreateListDelete(t *testing.T) {
	repo := NewSessionRepository(newTestDB(t))

	s1 := models.StudySession{StartTime: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC), FocusedMinutes: fm(40), Subject: "Algorithms"}
	s2 := models.StudySession{StartTime: time.Date(2024, 3, 2, 14, 0, 0, 0, time.UTC), FocusedMinutes: fm(25)}
	require.NoError(t, repo.Create("u1", &s1))
	require.NoError(t, repo.Create("u1", &s2))
	require.NoError(t, repo.Create("u2", &models.StudySession{StartTime: time.Now()}))

	assert.NotEmpty(t, s1.ID)

	got, err := repo.List("u1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	// newest first
	assert.Equal(t, s2.ID, got[0].ID)
	assert.Equal(t, "Algorithms", got[1].Subject)

	require.NoError(t, repo.Delete("u1", s1.ID))
	got, err = repo.List("u1")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestSessionDeleteScopedToUser(t *testing.T) {
	repo := NewSessionRepository(newTestDB(t))

	s := models.StudySession{StartTime: time.Now()}
	require.NoError(t, repo.Create("owner", &s))

	assert.ErrorIs(t, repo.Delete("intruder", s.ID), ErrNotFound)
	assert.ErrorIs(t, repo.Delete("owner", "no-such-id"), ErrNotFound)
	assert.NoError(t, repo.Delete("owner", s.ID))
}

func TestSummarize(t *testing.T) {
	repo := NewSessionRepository(newTestDB(t))
	now := time.Date(2024, 3, 10, 18, 0, 0, 0, time.UTC)

	add := func(start time.Time, minutes float64) {
		require.NoError(t, repo.Create("u1", &models.StudySession{
			StartTime: start, FocusedMinutes: fm(minutes),
		}))
	}
	add(now.Add(-2*time.Hour), 30)            // today
	add(now.Add(-8*time.Hour), 20)            // today
	add(now.AddDate(0, 0, -3), 60)            // within the week
	add(now.AddDate(0, 0, -20), 100)          // history only
	require.NoError(t, repo.Create("u1", &models.StudySession{ // no duration
		StartTime: now.Add(-1 * time.Hour),
	}))

	sum, err := repo.Summarize("u1", now)
	require.NoError(t, err)

	assert.Equal(t, 50, sum.TodayMinutes)
	assert.Equal(t, 3, sum.TodayCount) // the duration-less session still counts
	assert.Equal(t, 210, sum.TotalMinutes)

	require.Len(t, sum.Last7d, 7)
	assert.Equal(t, "2024-03-04", sum.Last7d[0].Date)
	assert.Equal(t, "2024-03-10", sum.Last7d[6].Date)
	assert.Equal(t, 50, sum.Last7d[6].Minutes)
	assert.Equal(t, 60, sum.Last7d[3].Minutes) // 3 days ago
	assert.Equal(t, 0, sum.Last7d[1].Minutes)  // zero-filled
}

func TestTaskCRUD(t *testing.T) {
	repo := NewTaskRepository(newTestDB(t))

	task := models.Task{Title: "Write report", Priority: "High", Status: "Pending"}
	require.NoError(t, repo.Create("u1", &task))
	require.NotEmpty(t, task.ID)

	got, err := repo.List("u1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Write report", got[0].Title)

	updated, err := repo.Update("u1", task.ID, map[string]any{
		"completed": true, "status": "Completed",
	})
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	assert.Equal(t, "Completed", updated.Status)

	_, err = repo.Update("u1", "missing", map[string]any{"title": "x"})
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.Update("u2", task.ID, map[string]any{"title": "x"})
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.Delete("u2", task.ID), ErrNotFound)
	require.NoError(t, repo.Delete("u1", task.ID))
	got, err = repo.List("u1")
	require.NoError(t, err)
	assert.Empty(t, got)
}
