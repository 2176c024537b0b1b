package handler

import (
	"net/http"

	"github.com/CristianHourcade/Piria-sub000/internal/repository"
	"github.com/CristianHourcade/Piria-sub000/internal/view"
	"github.com/CristianHourcade/Piria-sub000/pkg/logger"
	"github.com/CristianHourcade/Piria-sub000/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// TemplateHandler serves the task template CRUD endpoints
type TemplateHandler struct {
	repo *repository.TemplateRepository
}

// NewTemplateHandler creates a template handler
func NewTemplateHandler(repo *repository.TemplateRepository) *TemplateHandler {
	return &TemplateHandler{repo: repo}
}

// List handles retrieving all templates. ?service= narrows to one service's
// template.
func (h *TemplateHandler) List(c echo.Context) error {
	log := logger.FromContext(c)

	if service := c.QueryParam("service"); service != "" {
		tpl, err := h.repo.FetchByService(service)
		if err != nil {
			log.Error("Template not found for service", zap.String("service", service), zap.Error(err))
			return repoError(c, err, "Template not found", "Failed to retrieve template")
		}
		return c.JSON(http.StatusOK, []view.TaskTemplate{*tpl})
	}

	templates, err := h.repo.FetchAll()
	if err != nil {
		log.Error("Failed to list templates", zap.Error(err))
		return repoError(c, err, "templates not found", "Failed to retrieve templates")
	}

	log.Info("Templates retrieved", zap.Int("count", len(templates)))
	return c.JSON(http.StatusOK, templates)
}

// Get handles retrieving a single template by ID
func (h *TemplateHandler) Get(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid template ID"})
	}

	template, err := h.repo.FetchByID(id)
	if err != nil {
		log.Error("Template not found", zap.Uint("template_id", id), zap.Error(err))
		return repoError(c, err, "Template not found", "Failed to retrieve template")
	}

	return c.JSON(http.StatusOK, template)
}

// Create handles creating a template with its ordered items
func (h *TemplateHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)

	var req view.TaskTemplate
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.ServiceName == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "serviceName is required"})
	}

	template, err := h.repo.Create(req)
	if err != nil {
		log.Error("Failed to create template", zap.String("service", req.ServiceName), zap.Error(err))
		return repoError(c, err, "Template not found", "Failed to create template")
	}

	prometheus.RecordEntityOperation("template", "create")
	log.Info("Template created",
		zap.Uint("template_id", template.ID),
		zap.String("service", template.ServiceName),
		zap.Int("items", len(template.Items)))
	return c.JSON(http.StatusCreated, template)
}

// Update handles updating a template and reconciling its items
func (h *TemplateHandler) Update(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid template ID"})
	}

	var req view.TaskTemplate
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	req.ID = id

	template, err := h.repo.Update(req)
	if err != nil {
		log.Error("Failed to update template", zap.Uint("template_id", id), zap.Error(err))
		return repoError(c, err, "Template not found", "Failed to update template")
	}

	prometheus.RecordEntityOperation("template", "update")
	log.Info("Template updated", zap.Uint("template_id", id), zap.Int("items", len(template.Items)))
	return c.JSON(http.StatusOK, template)
}

// Delete handles deleting a template with its items
func (h *TemplateHandler) Delete(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid template ID"})
	}

	if err := h.repo.Delete(id); err != nil {
		log.Error("Failed to delete template", zap.Uint("template_id", id), zap.Error(err))
		return repoError(c, err, "Template not found", "Failed to delete template")
	}

	prometheus.RecordEntityOperation("template", "delete")
	log.Info("Template deleted", zap.Uint("template_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "Template deleted successfully"})
}
