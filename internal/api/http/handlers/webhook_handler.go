package handlers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/lakshita-01/devPulse/internal/api/dto"
	"github.com/lakshita-01/devPulse/internal/config"
	"github.com/lakshita-01/devPulse/internal/service"
	apperrors "github.com/lakshita-01/devPulse/pkg/util"
)

const webhookEventAITaskComplete = "ai.task_complete"

// WebhookHandler accepts inbound events from external collaborators.
type WebhookHandler struct {
	cfg    *config.Config
	tasks  *service.TaskService
	logger *zap.Logger
}

// NewWebhookHandler constructs handler.
func NewWebhookHandler(cfg *config.Config, taskService *service.TaskService, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{cfg: cfg, tasks: taskService, logger: logger}
}

// Handle processes POST /api/webhooks. A mismatched secret is rejected only
// in production; elsewhere it is logged and allowed.
func (h *WebhookHandler) Handle(c *fiber.Ctx) error {
	var req dto.WebhookRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	if req.Secret != h.cfg.Webhook.Secret {
		h.logger.Warn("invalid webhook secret", zap.String("event", req.Event))
		if h.cfg.App.IsProduction() {
			return apperrors.NewUnauthenticated("invalid secret")
		}
	}

	h.logger.Info("webhook received", zap.String("event", req.Event))

	if req.Event == webhookEventAITaskComplete {
		var data dto.AITaskCompleteData
		if err := json.Unmarshal(req.Data, &data); err != nil {
			return apperrors.NewValidationError("invalid event data", nil)
		}
		if data.TaskID != "" {
			if err := h.tasks.ApplyGeneratedSubtasks(c.Context(), data.TaskID, data.Subtasks); err != nil {
				return err
			}
		}
	}

	return c.JSON(fiber.Map{"received": true})
}
