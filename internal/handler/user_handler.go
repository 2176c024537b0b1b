package handler

import (
	"net/http"

	"github.com/CristianHourcade/Piria-sub000/internal/repository"
	"github.com/CristianHourcade/Piria-sub000/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// UserHandler serves the user lookup endpoints
type UserHandler struct {
	repo *repository.UserRepository
}

// NewUserHandler creates a user handler
func NewUserHandler(repo *repository.UserRepository) *UserHandler {
	return &UserHandler{repo: repo}
}

// List handles retrieving users; ?active=true narrows to active users
func (h *UserHandler) List(c echo.Context) error {
	log := logger.FromContext(c)

	users, err := h.repo.FetchAll(c.QueryParam("active") == "true")
	if err != nil {
		log.Error("Failed to list users", zap.Error(err))
		return repoError(c, err, "users not found", "Failed to retrieve users")
	}

	return c.JSON(http.StatusOK, users)
}

// Get handles retrieving a single user by ID
func (h *UserHandler) Get(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user ID"})
	}

	user, err := h.repo.FetchByID(id)
	if err != nil {
		log.Error("User not found", zap.Uint("user_id", id), zap.Error(err))
		return repoError(c, err, "User not found", "Failed to retrieve user")
	}

	return c.JSON(http.StatusOK, user)
}

// Lookup resolves a user name to an id. Form dialogs stamp assignees and
// responsibles by name through this.
func (h *UserHandler) Lookup(c echo.Context) error {
	log := logger.FromContext(c)

	name := c.QueryParam("name")
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}

	id, err := h.repo.IDByName(name)
	if err != nil {
		log.Warn("User lookup failed", zap.String("name", name), zap.Error(err))
		return repoError(c, err, "User not found", "Failed to look up user")
	}

	return c.JSON(http.StatusOK, echo.Map{"id": id, "name": name})
}
