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

// ClientHandler serves the client CRUD endpoints
type ClientHandler struct {
	repo *repository.ClientRepository
}

// NewClientHandler creates a client handler
func NewClientHandler(repo *repository.ClientRepository) *ClientHandler {
	return &ClientHandler{repo: repo}
}

// List handles retrieving all clients with optional status filtering
func (h *ClientHandler) List(c echo.Context) error {
	log := logger.FromContext(c)

	status := c.QueryParam("status")
	clients, err := h.repo.FetchAll(status)
	if err != nil {
		log.Error("Failed to list clients", zap.Error(err))
		return repoError(c, err, "clients not found", "Failed to retrieve clients")
	}

	log.Info("Clients retrieved", zap.Int("count", len(clients)), zap.String("status", status))
	return c.JSON(http.StatusOK, clients)
}

// Get handles retrieving a single client by ID
func (h *ClientHandler) Get(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := parseID(c)
	if err != nil {
		log.Error("Invalid client ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid client ID"})
	}

	client, err := h.repo.FetchByID(id)
	if err != nil {
		log.Error("Client not found", zap.Uint("client_id", id), zap.Error(err))
		return repoError(c, err, "Client not found", "Failed to retrieve client")
	}

	return c.JSON(http.StatusOK, client)
}

// Create handles creating a new client with its services
func (h *ClientHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)

	var req view.Client
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.Name == "" {
		log.Warn("Client creation rejected, name is required")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}

	client, err := h.repo.Create(req)
	if err != nil {
		log.Error("Failed to create client", zap.String("name", req.Name), zap.Error(err))
		return repoError(c, err, "Client not found", "Failed to create client")
	}

	prometheus.RecordEntityOperation("client", "create")
	log.Info("Client created",
		zap.Uint("client_id", client.ID),
		zap.String("name", client.Name),
		zap.Int("services", len(client.Services)))
	return c.JSON(http.StatusCreated, client)
}

// Update handles updating an existing client and reconciling its services
func (h *ClientHandler) Update(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := parseID(c)
	if err != nil {
		log.Error("Invalid client ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid client ID"})
	}

	var req view.Client
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	req.ID = id

	client, err := h.repo.Update(req)
	if err != nil {
		log.Error("Failed to update client", zap.Uint("client_id", id), zap.Error(err))
		return repoError(c, err, "Client not found", "Failed to update client")
	}

	prometheus.RecordEntityOperation("client", "update")
	log.Info("Client updated",
		zap.Uint("client_id", client.ID),
		zap.String("name", client.Name),
		zap.Int("services", len(client.Services)))
	return c.JSON(http.StatusOK, client)
}

// SetStatus flips a client between Activo and Inactivo without touching its
// services
func (h *ClientHandler) SetStatus(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := parseID(c)
	if err != nil {
		log.Error("Invalid client ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid client ID"})
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.Status != model.ClientStatusActive && req.Status != model.ClientStatusInactive {
		log.Warn("Invalid client status", zap.String("status", req.Status))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
	}

	client, err := h.repo.SetStatus(id, req.Status)
	if err != nil {
		log.Error("Failed to change client status", zap.Uint("client_id", id), zap.Error(err))
		return repoError(c, err, "Client not found", "Failed to change client status")
	}

	prometheus.RecordEntityOperation("client", "set_status")
	log.Info("Client status changed", zap.Uint("client_id", id), zap.String("status", req.Status))
	return c.JSON(http.StatusOK, client)
}

// Delete handles hard-deleting a client and its owned subtree
func (h *ClientHandler) Delete(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := parseID(c)
	if err != nil {
		log.Error("Invalid client ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid client ID"})
	}

	if err := h.repo.Delete(id); err != nil {
		log.Error("Failed to delete client", zap.Uint("client_id", id), zap.Error(err))
		return repoError(c, err, "Client not found", "Failed to delete client")
	}

	prometheus.RecordEntityOperation("client", "delete")
	log.Info("Client deleted", zap.Uint("client_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "Client deleted successfully"})
}
