package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/jayagayathricodes/SmartTaskManager/models"
)

// TaskStore is the persistence contract for tasks. Insert assigns the id;
// Update reports ErrConflict when the row changed since it was loaded.
type TaskStore interface {
	ListAll(ctx context.Context) ([]models.Task, error)
	FindByID(ctx context.Context, id uint) (*models.Task, error)
	Insert(ctx context.Context, task *models.Task) error
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
}

type taskStore struct {
	db *gorm.DB
}

func NewTaskStore(db *gorm.DB) TaskStore {
	return &taskStore{db: db}
}

func (s *taskStore) ListAll(ctx context.Context) ([]models.Task, error) {
	var tasks []models.Task
	if err := s.db.WithContext(ctx).Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *taskStore) FindByID(ctx context.Context, id uint) (*models.Task, error) {
	var task models.Task
	err := s.db.WithContext(ctx).First(&task, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (s *taskStore) Insert(ctx context.Context, task *models.Task) error {
	task.Version = 1
	return s.db.WithContext(ctx).Create(task).Error
}

// Update writes all mutable fields guarded by the version column. Zero rows
// affected means another writer got there first.
func (s *taskStore) Update(ctx context.Context, task *models.Task) error {
	res := s.db.WithContext(ctx).Model(&models.Task{}).
		Where("id = ? AND version = ?", task.ID, task.Version).
		Updates(map[string]interface{}{
			"title":        task.Title,
			"description":  task.Description,
			"category":     task.Category,
			"due_date":     task.DueDate,
			"is_completed": task.IsCompleted,
			"version":      task.Version + 1,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrConflict
	}
	task.Version++
	return nil
}

func (s *taskStore) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Task{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *taskStore) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Task{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
