package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jayagayathricodes/SmartTaskManager/config"
	"github.com/jayagayathricodes/SmartTaskManager/middleware"
	"github.com/jayagayathricodes/SmartTaskManager/models"
	"github.com/jayagayathricodes/SmartTaskManager/repository"
	"github.com/jayagayathricodes/SmartTaskManager/services"
)

// TaskController exposes the task lifecycle over HTTP.
type TaskController struct {
	service *services.TaskService
}

func NewTaskController(service *services.TaskService) *TaskController {
	return &TaskController{service: service}
}

// GetTasks returns every task, no filtering or pagination.
func (tc *TaskController) GetTasks(c *gin.Context) {
	tasks, err := tc.service.GetAll(c.Request.Context())
	if err != nil {
		config.Logger.Errorw("failed to list tasks", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list tasks"})
		return
	}

	responses := make([]models.TaskResponse, len(tasks))
	for i := range tasks {
		responses[i] = models.NewTaskResponse(&tasks[i])
	}
	c.JSON(http.StatusOK, responses)
}

func (tc *TaskController) GetTask(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	task, err := tc.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		config.Logger.Errorw("failed to load task", "taskID", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load task"})
		return
	}

	c.JSON(http.StatusOK, models.NewTaskResponse(task))
}

// CreateTask runs the enhancement pipeline and persists the task. The
// caller's category and completion flag are ignored; the response carries the
// enhanced description and the suggested category.
func (tc *TaskController) CreateTask(c *gin.Context) {
	var req models.TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetString(middleware.UserIDKey)

	task, err := tc.service.Create(c.Request.Context(), &req, userID)
	if err != nil {
		config.Logger.Errorw("failed to create task", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create task"})
		return
	}

	c.Header("Location", fmt.Sprintf("/api/Task/%d", task.ID))
	c.JSON(http.StatusCreated, models.NewTaskResponse(task))
}

func (tc *TaskController) UpdateTask(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	var req models.TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := tc.service.Update(c.Request.Context(), id, &req)
	switch {
	case err == nil:
		c.Status(http.StatusNoContent)
	case errors.Is(err, services.ErrIDMismatch):
		c.Status(http.StatusBadRequest)
	case errors.Is(err, repository.ErrNotFound):
		c.Status(http.StatusNotFound)
	default:
		config.Logger.Errorw("failed to update task", "taskID", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update task"})
	}
}

func (tc *TaskController) DeleteTask(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	err := tc.service.Delete(c.Request.Context(), id)
	switch {
	case err == nil:
		c.Status(http.StatusNoContent)
	case errors.Is(err, repository.ErrNotFound):
		c.Status(http.StatusNotFound)
	default:
		config.Logger.Errorw("failed to delete task", "taskID", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete task"})
	}
}

func taskID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task id"})
		return 0, false
	}
	return uint(id), true
}
