package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lakshita-01/devPulse/internal/auth"
	"github.com/lakshita-01/devPulse/internal/service"
	apperrors "github.com/lakshita-01/devPulse/pkg/util"
)

// AnalyticsHandler exposes read-only workspace rollups.
type AnalyticsHandler struct {
	guard     *auth.Guard
	analytics *service.AnalyticsService
}

// NewAnalyticsHandler constructs handler.
func NewAnalyticsHandler(guard *auth.Guard, analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{guard: guard, analytics: analyticsService}
}

// Summary handles GET /api/analytics/:workspace_id.
func (h *AnalyticsHandler) Summary(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("not authenticated")
	}

	workspaceID := c.Params("workspace_id")
	if _, err := h.guard.Authorize(c.Context(), user.ID, workspaceID, nil); err != nil {
		return err
	}

	summary, err := h.analytics.Summary(c.Context(), workspaceID)
	if err != nil {
		return err
	}
	return c.JSON(summary)
}
