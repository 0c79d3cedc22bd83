package dto

import (
	"encoding/json"

	"github.com/lakshita-01/devPulse/internal/domain"
)

// WebhookRequest is the envelope accepted by the webhook intake.
type WebhookRequest struct {
	Event  string          `json:"event"`
	Data   json.RawMessage `json:"data"`
	Secret string          `json:"secret,omitempty"`
}

// AITaskCompleteData is the payload of an ai.task_complete event.
type AITaskCompleteData struct {
	TaskID      string           `json:"task_id"`
	WorkspaceID string           `json:"workspace_id,omitempty"`
	Subtasks    []domain.Subtask `json:"subtasks"`
}

// GenerateSubtasksRequest payload for the mock generator.
type GenerateSubtasksRequest struct {
	Prompt string `json:"prompt"`
}
