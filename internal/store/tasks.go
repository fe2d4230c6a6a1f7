package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/studypulse/studypulse-be/internal/models"
)

type TaskRepository struct {
	DB *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{DB: db}
}

// List returns the user's tasks, most recently created first.
func (r *TaskRepository) List(userID string) ([]models.Task, error) {
	var tasks []models.Task
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC").Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) Create(userID string, t *models.Task) error {
	t.UserID = userID
	return r.DB.Create(t).Error
}

// Update applies a partial patch and returns the updated task.
func (r *TaskRepository) Update(userID, id string, patch map[string]any) (models.Task, error) {
	res := r.DB.Model(&models.Task{}).
		Where("user_id = ? AND id = ?", userID, id).
		Updates(patch)
	if res.Error != nil {
		return models.Task{}, res.Error
	}
	if res.RowsAffected == 0 {
		return models.Task{}, ErrNotFound
	}
	var t models.Task
	err := r.DB.Where("user_id = ? AND id = ?", userID, id).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Task{}, ErrNotFound
	}
	return t, err
}

func (r *TaskRepository) Delete(userID, id string) error {
	res := r.DB.Where("user_id = ? AND id = ?", userID, id).
		Delete(&models.Task{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
