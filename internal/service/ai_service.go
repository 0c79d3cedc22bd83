package service

import (
	"regexp"

	"github.com/lakshita-01/devPulse/internal/domain"
)

var taskTitlePattern = regexp.MustCompile(`Task: (.+?)(?:\n|$)`)

// AIService generates subtask suggestions from a prompt. It is a stateless
// stand-in for a real model; the webhook intake accepts results from an
// external generator with the same shape.
type AIService struct{}

// NewAIService constructs the service.
func NewAIService() *AIService {
	return &AIService{}
}

// GenerateSubtasks derives a plan from the prompt's task title.
func (s *AIService) GenerateSubtasks(prompt string) []domain.Subtask {
	title := "task"
	if match := taskTitlePattern.FindStringSubmatch(prompt); match != nil {
		title = match[1]
	}

	return []domain.Subtask{
		{Title: "Research and plan " + title},
		{Title: "Implement core functionality"},
		{Title: "Test and validate results"},
		{Title: "Document and review"},
	}
}
