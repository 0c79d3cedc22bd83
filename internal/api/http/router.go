package http

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/lakshita-01/devPulse/internal/api/http/handlers"
	"github.com/lakshita-01/devPulse/internal/auth"
	"github.com/lakshita-01/devPulse/internal/realtime"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Workspaces     *handlers.WorkspacesHandler
	Projects       *handlers.ProjectsHandler
	Tasks          *handlers.TasksHandler
	Analytics      *handlers.AnalyticsHandler
	AI             *handlers.AIHandler
	Webhook        *handlers.WebhookHandler
	AuthMiddleware *auth.Middleware
	Registry       *realtime.Registry
	Logger         *zap.Logger
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "DevPulse API is running", "status": "ok"})
	})

	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	api.Post("/auth/register", cfg.Auth.Register)
	api.Post("/auth/login", cfg.Auth.Login)
	api.Get("/invites/:token", cfg.Workspaces.InviteDetails)
	api.Post("/webhooks", cfg.Webhook.Handle)

	protected := api.Group("", cfg.AuthMiddleware.Handle)
	protected.Post("/auth/change-password", cfg.Auth.ChangePassword)

	protected.Get("/workspaces", cfg.Workspaces.List)
	protected.Post("/workspaces", cfg.Workspaces.Create)
	protected.Get("/workspaces/:workspace_id/members", cfg.Workspaces.Members)
	protected.Post("/workspaces/:workspace_id/members", cfg.Workspaces.CreateMember)
	protected.Post("/workspaces/:workspace_id/invite", cfg.Workspaces.InviteMember)
	protected.Post("/workspaces/:workspace_id/invites", cfg.Workspaces.CreateInvite)
	protected.Post("/invites/:token/accept", cfg.Workspaces.AcceptInvite)

	protected.Get("/projects/:workspace_id", cfg.Projects.List)
	protected.Post("/projects", cfg.Projects.Create)

	protected.Get("/tasks/:workspace_id", cfg.Tasks.List)
	protected.Post("/tasks", cfg.Tasks.Create)
	protected.Patch("/tasks/:task_id", cfg.Tasks.Update)
	protected.Delete("/tasks/:task_id", cfg.Tasks.Delete)

	protected.Get("/analytics/:workspace_id", cfg.Analytics.Summary)
	protected.Post("/ai/generate-subtasks", cfg.AI.GenerateSubtasks)

	app.Use("/ws/:workspace_id", realtime.Upgrade)
	app.Get("/ws/:workspace_id", realtime.Handler(cfg.Registry, cfg.Logger))
}
