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

// LeadHandler serves the lead CRUD endpoints
type LeadHandler struct {
	repo *repository.LeadRepository
}

// NewLeadHandler creates a lead handler
func NewLeadHandler(repo *repository.LeadRepository) *LeadHandler {
	return &LeadHandler{repo: repo}
}

// List handles retrieving leads with optional status filtering
func (h *LeadHandler) List(c echo.Context) error {
	log := logger.FromContext(c)

	leads, err := h.repo.FetchAll(c.QueryParam("status"))
	if err != nil {
		log.Error("Failed to list leads", zap.Error(err))
		return repoError(c, err, "leads not found", "Failed to retrieve leads")
	}

	log.Info("Leads retrieved", zap.Int("count", len(leads)))
	return c.JSON(http.StatusOK, leads)
}

// Get handles retrieving a single lead by ID
func (h *LeadHandler) Get(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid lead ID"})
	}

	lead, err := h.repo.FetchByID(id)
	if err != nil {
		log.Error("Lead not found", zap.Uint("lead_id", id), zap.Error(err))
		return repoError(c, err, "Lead not found", "Failed to retrieve lead")
	}

	return c.JSON(http.StatusOK, lead)
}

// Create handles creating a new lead
func (h *LeadHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)

	var req view.Lead
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}

	lead, err := h.repo.Create(req)
	if err != nil {
		log.Error("Failed to create lead", zap.String("name", req.Name), zap.Error(err))
		return repoError(c, err, "Lead not found", "Failed to create lead")
	}

	prometheus.RecordEntityOperation("lead", "create")
	log.Info("Lead created", zap.Uint("lead_id", lead.ID), zap.String("name", lead.Name))
	return c.JSON(http.StatusCreated, lead)
}

// Update handles updating an existing lead
func (h *LeadHandler) Update(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid lead ID"})
	}

	var req view.Lead
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	req.ID = id

	lead, err := h.repo.Update(req)
	if err != nil {
		log.Error("Failed to update lead", zap.Uint("lead_id", id), zap.Error(err))
		return repoError(c, err, "Lead not found", "Failed to update lead")
	}

	prometheus.RecordEntityOperation("lead", "update")
	return c.JSON(http.StatusOK, lead)
}

// SetStatus advances a lead through the pipeline
func (h *LeadHandler) SetStatus(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid lead ID"})
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	switch req.Status {
	case model.LeadStatusNew, model.LeadStatusContacted, model.LeadStatusQualified,
		model.LeadStatusWon, model.LeadStatusLost:
	default:
		log.Warn("Invalid lead status", zap.String("status", req.Status))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
	}

	lead, err := h.repo.SetStatus(id, req.Status)
	if err != nil {
		log.Error("Failed to change lead status", zap.Uint("lead_id", id), zap.Error(err))
		return repoError(c, err, "Lead not found", "Failed to change lead status")
	}

	prometheus.RecordEntityOperation("lead", "set_status")
	log.Info("Lead status changed", zap.Uint("lead_id", id), zap.String("status", req.Status))
	return c.JSON(http.StatusOK, lead)
}

// Delete handles deleting a lead
func (h *LeadHandler) Delete(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid lead ID"})
	}

	if err := h.repo.Delete(id); err != nil {
		log.Error("Failed to delete lead", zap.Uint("lead_id", id), zap.Error(err))
		return repoError(c, err, "Lead not found", "Failed to delete lead")
	}

	prometheus.RecordEntityOperation("lead", "delete")
	log.Info("Lead deleted", zap.Uint("lead_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "Lead deleted successfully"})
}
