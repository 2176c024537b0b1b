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

// ProjectHandler serves the project CRUD endpoints
type ProjectHandler struct {
	repo *repository.ProjectRepository
}

// NewProjectHandler creates a project handler
func NewProjectHandler(repo *repository.ProjectRepository) *ProjectHandler {
	return &ProjectHandler{repo: repo}
}

// List handles retrieving projects with optional filtering
func (h *ProjectHandler) List(c echo.Context) error {
	log := logger.FromContext(c)

	filter := repository.ProjectFilter{
		ClientID: parseUintParam(c, "client_id"),
		Status:   c.QueryParam("status"),
	}

	projects, err := h.repo.FetchAll(filter)
	if err != nil {
		log.Error("Failed to list projects", zap.Error(err))
		return repoError(c, err, "projects not found", "Failed to retrieve projects")
	}

	log.Info("Projects retrieved", zap.Int("count", len(projects)))
	return c.JSON(http.StatusOK, projects)
}

// Get handles retrieving a single project by ID
func (h *ProjectHandler) Get(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := parseID(c)
	if err != nil {
		log.Error("Invalid project ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid project ID"})
	}

	project, err := h.repo.FetchByID(id)
	if err != nil {
		log.Error("Project not found", zap.Uint("project_id", id), zap.Error(err))
		return repoError(c, err, "Project not found", "Failed to retrieve project")
	}

	return c.JSON(http.StatusOK, project)
}

// Create handles creating a new project
func (h *ProjectHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)

	var req view.Project
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.Name == "" || req.ClientID == 0 {
		log.Warn("Project creation rejected, name and clientId are required")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and clientId are required"})
	}

	project, err := h.repo.Create(req)
	if err != nil {
		log.Error("Failed to create project", zap.String("name", req.Name), zap.Error(err))
		return repoError(c, err, "Project not found", "Failed to create project")
	}

	prometheus.RecordEntityOperation("project", "create")
	log.Info("Project created",
		zap.Uint("project_id", project.ID),
		zap.String("name", project.Name),
		zap.Uint("client_id", project.ClientID))
	return c.JSON(http.StatusCreated, project)
}

// Update handles updating an existing project and reconciling its
// collaborators
func (h *ProjectHandler) Update(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := parseID(c)
	if err != nil {
		log.Error("Invalid project ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid project ID"})
	}

	var req view.Project
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	req.ID = id

	project, err := h.repo.Update(req)
	if err != nil {
		log.Error("Failed to update project", zap.Uint("project_id", id), zap.Error(err))
		return repoError(c, err, "Project not found", "Failed to update project")
	}

	prometheus.RecordEntityOperation("project", "update")
	log.Info("Project updated",
		zap.Uint("project_id", project.ID),
		zap.String("status", project.Status),
		zap.Int("progress", project.Progress))
	return c.JSON(http.StatusOK, project)
}

// SetStatus flips the project status only
func (h *ProjectHandler) SetStatus(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := parseID(c)
	if err != nil {
		log.Error("Invalid project ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid project ID"})
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	switch req.Status {
	case model.ProjectStatusProposal, model.ProjectStatusInProgress, model.ProjectStatusPaused,
		model.ProjectStatusCompleted, model.ProjectStatusCancelled:
	default:
		log.Warn("Invalid project status", zap.String("status", req.Status))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
	}

	project, err := h.repo.SetStatus(id, req.Status)
	if err != nil {
		log.Error("Failed to change project status", zap.Uint("project_id", id), zap.Error(err))
		return repoError(c, err, "Project not found", "Failed to change project status")
	}

	prometheus.RecordEntityOperation("project", "set_status")
	log.Info("Project status changed", zap.Uint("project_id", id), zap.String("status", req.Status))
	return c.JSON(http.StatusOK, project)
}

// Delete handles deleting a project and its collaborator assignments
func (h *ProjectHandler) Delete(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := parseID(c)
	if err != nil {
		log.Error("Invalid project ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid project ID"})
	}

	if err := h.repo.Delete(id); err != nil {
		log.Error("Failed to delete project", zap.Uint("project_id", id), zap.Error(err))
		return repoError(c, err, "Project not found", "Failed to delete project")
	}

	prometheus.RecordEntityOperation("project", "delete")
	log.Info("Project deleted", zap.Uint("project_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "Project deleted successfully"})
}
