package handler

import (
	"net/http"

	"github.com/CristianHourcade/Piria-sub000/internal/model"
	"github.com/CristianHourcade/Piria-sub000/internal/repository"
	"github.com/CristianHourcade/Piria-sub000/internal/view"
	"github.com/CristianHourcade/Piria-sub000/pkg/logger"
	"github.com/CristianHourcade/Piria-sub000/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// TaskHandler serves the task CRUD endpoints
type TaskHandler struct {
	repo  *repository.TaskRepository
	users *repository.UserRepository
}

// NewTaskHandler creates a task handler
func NewTaskHandler(repo *repository.TaskRepository, users *repository.UserRepository) *TaskHandler {
	return &TaskHandler{repo: repo, users: users}
}

// List handles retrieving tasks with optional filtering
func (h *TaskHandler) List(c echo.Context) error {
	log := logger.FromContext(c)

	filter := repository.TaskFilter{
		Status:     c.QueryParam("status"),
		AssigneeID: parseUintParam(c, "assignee_id"),
		ProjectID:  parseUintParam(c, "project_id"),
		ClientID:   parseUintParam(c, "client_id"),
	}

	tasks, err := h.repo.FetchAll(filter)
	if err != nil {
		log.Error("Failed to list tasks", zap.Error(err))
		return repoError(c, err, "tasks not found", "Failed to retrieve tasks")
	}

	log.Info("Tasks retrieved", zap.Int("count", len(tasks)))
	return c.JSON(http.StatusOK, tasks)
}

// Get handles retrieving a single task by ID
func (h *TaskHandler) Get(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := parseID(c)
	if err != nil {
		log.Error("Invalid task ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid task ID"})
	}

	task, err := h.repo.FetchByID(id)
	if err != nil {
		log.Error("Task not found", zap.Uint("task_id", id), zap.Error(err))
		return repoError(c, err, "Task not found", "Failed to retrieve task")
	}

	return c.JSON(http.StatusOK, task)
}

// taskRequest is the task payload plus the optional assignee-by-name field
// form dialogs submit
type taskRequest struct {
	view.Task
	AssigneeName string `json:"assigneeName"`
}

// Create handles creating a new task
func (h *TaskHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)

	var req taskRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.Title == "" {
		log.Warn("Task creation rejected, title is required")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title is required"})
	}

	if err := h.resolveAssignee(&req, log); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown assignee"})
	}

	task, err := h.repo.Create(req.Task)
	if err != nil {
		log.Error("Failed to create task", zap.String("title", req.Title), zap.Error(err))
		return repoError(c, err, "Task not found", "Failed to create task")
	}

	prometheus.RecordEntityOperation("task", "create")
	log.Info("Task created",
		zap.Uint("task_id", task.ID),
		zap.String("title", task.Title),
		zap.Uint("assignee_id", task.AssigneeID))
	return c.JSON(http.StatusCreated, task)
}

// Update handles updating an existing task and reconciling its comments and
// time entries
func (h *TaskHandler) Update(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := parseID(c)
	if err != nil {
		log.Error("Invalid task ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid task ID"})
	}

	var req taskRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	req.ID = id

	if err := h.resolveAssignee(&req, log); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown assignee"})
	}

	task, err := h.repo.Update(req.Task)
	if err != nil {
		log.Error("Failed to update task", zap.Uint("task_id", id), zap.Error(err))
		return repoError(c, err, "Task not found", "Failed to update task")
	}

	prometheus.RecordEntityOperation("task", "update")
	log.Info("Task updated", zap.Uint("task_id", task.ID), zap.String("status", task.Status))
	return c.JSON(http.StatusOK, task)
}

// SetStatus flips the task status only
func (h *TaskHandler) SetStatus(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := parseID(c)
	if err != nil {
		log.Error("Invalid task ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid task ID"})
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	switch req.Status {
	case model.TaskStatusPending, model.TaskStatusInProgress, model.TaskStatusCompleted, model.TaskStatusPaused:
	default:
		log.Warn("Invalid task status", zap.String("status", req.Status))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
	}

	task, err := h.repo.SetStatus(id, req.Status)
	if err != nil {
		log.Error("Failed to change task status", zap.Uint("task_id", id), zap.Error(err))
		return repoError(c, err, "Task not found", "Failed to change task status")
	}

	prometheus.RecordEntityOperation("task", "set_status")
	log.Info("Task status changed", zap.Uint("task_id", id), zap.String("status", req.Status))
	return c.JSON(http.StatusOK, task)
}

// Delete handles deleting a task with its comments and time entries
func (h *TaskHandler) Delete(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := parseID(c)
	if err != nil {
		log.Error("Invalid task ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid task ID"})
	}

	if err := h.repo.Delete(id); err != nil {
		log.Error("Failed to delete task", zap.Uint("task_id", id), zap.Error(err))
		return repoError(c, err, "Task not found", "Failed to delete task")
	}

	prometheus.RecordEntityOperation("task", "delete")
	log.Info("Task deleted", zap.Uint("task_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "Task deleted successfully"})
}

// resolveAssignee fills AssigneeID from a human-readable name when the form
// submitted one. One lookup query per request.
func (h *TaskHandler) resolveAssignee(req *taskRequest, log *zap.Logger) error {
	if req.AssigneeName == "" || req.AssigneeID != 0 {
		return nil
	}
	id, err := h.users.IDByName(req.AssigneeName)
	if err != nil {
		log.Warn("Assignee lookup failed", zap.String("name", req.AssigneeName), zap.Error(err))
		return err
	}
	req.AssigneeID = id
	return nil
}
