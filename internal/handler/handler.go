package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/CristianHourcade/Piria-sub000/internal/repository"

	"github.com/labstack/echo/v4"
)

// parseID reads the :id path parameter
func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// parseUintParam reads an optional numeric query parameter; absent or
// malformed values come back as 0
func parseUintParam(c echo.Context, name string) uint {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0
	}
	return uint(v)
}

// repoError maps repository error kinds to HTTP responses
func repoError(c echo.Context, err error, notFoundMsg, failedMsg string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": notFoundMsg})
	case errors.Is(err, repository.ErrConflict):
		return c.JSON(http.StatusConflict, echo.Map{"error": failedMsg})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": failedMsg})
	}
}
