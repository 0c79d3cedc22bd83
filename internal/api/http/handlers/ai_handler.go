package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lakshita-01/devPulse/internal/api/dto"
	"github.com/lakshita-01/devPulse/internal/service"
	apperrors "github.com/lakshita-01/devPulse/pkg/util"
)

// AIHandler exposes the subtask generator.
type AIHandler struct {
	ai *service.AIService
}

// NewAIHandler constructs handler.
func NewAIHandler(aiService *service.AIService) *AIHandler {
	return &AIHandler{ai: aiService}
}

// GenerateSubtasks handles POST /api/ai/generate-subtasks.
func (h *AIHandler) GenerateSubtasks(c *fiber.Ctx) error {
	var req dto.GenerateSubtasksRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Prompt == "" {
		return apperrors.NewValidationError("prompt is required", nil)
	}

	subtasks := h.ai.GenerateSubtasks(req.Prompt)
	return c.JSON(fiber.Map{"subtasks": subtasks})
}
