package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports liveness and the active search provider.
type HealthHandler struct {
	searchProvider string
}

// NewHealthHandler wires the handler.
func NewHealthHandler(searchProvider string) *HealthHandler {
	return &HealthHandler{searchProvider: searchProvider}
}

// Check answers the liveness probe.
func (h *HealthHandler) Check(c echo.Context) error {
	return Success(c, http.StatusOK, "service healthy", map[string]any{
		"status":          "ok",
		"search_provider": h.searchProvider,
	})
}
