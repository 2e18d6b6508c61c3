package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/octobees/prompt-relay/api/internal/dto"
)

// Asker answers a prompt. Failures are reported inside the returned text.
type Asker interface {
	Ask(ctx context.Context, prompt string) string
}

// AskHandler relays prompts to the model pipeline.
type AskHandler struct {
	service Asker
}

// NewAskHandler wires the handler.
func NewAskHandler(svc Asker) *AskHandler {
	return &AskHandler{service: svc}
}

// Ask always answers 200 once the payload decodes.
func (h *AskHandler) Ask(c echo.Context) error {
	var req dto.AskRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	// inference keeps running if the client goes away
	ctx := context.WithoutCancel(c.Request().Context())
	answer := h.service.Ask(ctx, req.Prompt)

	return c.JSON(http.StatusOK, dto.AskResponse{Response: answer})
}
