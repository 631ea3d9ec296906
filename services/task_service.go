package services

import (
	"context"
	"errors"
	"time"

	"github.com/jayagayathricodes/SmartTaskManager/config"
	"github.com/jayagayathricodes/SmartTaskManager/models"
	"github.com/jayagayathricodes/SmartTaskManager/repository"
)

// ErrIDMismatch reports that the id in the path and the body disagree.
var ErrIDMismatch = errors.New("path and body ids do not match")

// TaskService orchestrates the enhancement gateway and the task store.
type TaskService struct {
	store    repository.TaskStore
	enhancer Enhancer
}

func NewTaskService(store repository.TaskStore, enhancer Enhancer) *TaskService {
	return &TaskService{store: store, enhancer: enhancer}
}

func (s *TaskService) GetAll(ctx context.Context) ([]models.Task, error) {
	return s.store.ListAll(ctx)
}

func (s *TaskService) GetByID(ctx context.Context, id uint) (*models.Task, error) {
	return s.store.FindByID(ctx, id)
}

// Create runs the enhancement pipeline and persists the result. Both gateway
// calls take the caller's original description; if either fails, nothing is
// written. Caller-supplied category and completion flag are ignored.
func (s *TaskService) Create(ctx context.Context, req *models.TaskRequest, userID string) (*models.Task, error) {
	enhancedDescription, err := s.enhancer.EnhanceDescription(ctx, req.Description)
	if err != nil {
		return nil, err
	}

	category, err := s.enhancer.SuggestCategory(ctx, req.Description)
	if err != nil {
		return nil, err
	}

	task := &models.Task{
		Title:       req.Title,
		Description: enhancedDescription,
		Category:    category,
		DueDate:     req.DueDate,
		IsCompleted: false,
		CreatedAt:   time.Now().UTC(),
		UserID:      userID,
	}

	if err := s.store.Insert(ctx, task); err != nil {
		return nil, err
	}

	config.Logger.Infow("task created",
		"taskID", task.ID,
		"category", task.Category,
	)
	return task, nil
}

// Update overwrites the stored task with the caller's fields verbatim; no
// enhancement happens here. A version conflict where the row has meanwhile
// vanished is reported as not found, otherwise the conflict propagates.
func (s *TaskService) Update(ctx context.Context, id uint, req *models.TaskRequest) error {
	if id != req.ID {
		return ErrIDMismatch
	}

	task, err := s.store.FindByID(ctx, id)
	if err != nil {
		return err
	}

	task.Title = req.Title
	task.Description = req.Description
	task.Category = req.Category
	task.DueDate = req.DueDate
	task.IsCompleted = req.IsCompleted

	err = s.store.Update(ctx, task)
	if errors.Is(err, repository.ErrConflict) {
		exists, existsErr := s.store.Exists(ctx, id)
		if existsErr != nil {
			return existsErr
		}
		if !exists {
			return repository.ErrNotFound
		}
		return err
	}
	return err
}

func (s *TaskService) Delete(ctx context.Context, id uint) error {
	if _, err := s.store.FindByID(ctx, id); err != nil {
		return err
	}
	return s.store.Delete(ctx, id)
}
