package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/lakshita-01/devPulse/internal/api/http"
	"github.com/lakshita-01/devPulse/internal/api/http/handlers"
	"github.com/lakshita-01/devPulse/internal/auth"
	"github.com/lakshita-01/devPulse/internal/config"
	"github.com/lakshita-01/devPulse/internal/observability"
	"github.com/lakshita-01/devPulse/internal/persistence"
	"github.com/lakshita-01/devPulse/internal/realtime"
	"github.com/lakshita-01/devPulse/internal/repository"
	"github.com/lakshita-01/devPulse/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mongo, err := persistence.NewMongo(ctx, cfg.Mongo, logger)
	if err != nil {
		logger.Fatal("failed to configure mongodb", zap.Error(err))
	}
	defer mongo.Close(context.Background())

	var redis *persistence.Redis
	if cfg.Redis.Enabled() {
		redis = persistence.NewRedis(cfg.Redis, logger)
		defer redis.Close()
	}

	db := mongo.Database
	userRepo := repository.NewUserRepository(db)
	workspaceRepo := repository.NewWorkspaceRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	inviteRepo := repository.NewInviteRepository(db)

	registry := realtime.NewRegistry()
	var broadcaster realtime.Broadcaster = registry
	if redis != nil {
		bridge := realtime.NewBridge(redis.Client, registry, logger)
		bridge.Start(ctx)
		broadcaster = bridge
	}

	guard := auth.NewGuard(workspaceRepo)

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		UserRepo:      userRepo,
		WorkspaceRepo: workspaceRepo,
	})
	workspaceService := service.NewWorkspaceService(*cfg, service.WorkspaceDependencies{
		WorkspaceRepo: workspaceRepo,
		UserRepo:      userRepo,
		InviteRepo:    inviteRepo,
	})
	projectService := service.NewProjectService(projectRepo)
	taskService := service.NewTaskService(service.TaskDependencies{
		TaskRepo:    taskRepo,
		UserRepo:    userRepo,
		Broadcaster: broadcaster,
	})
	analyticsService := service.NewAnalyticsService(taskRepo, userRepo)
	aiService := service.NewAIService()

	authMiddleware := auth.NewMiddleware(authService.TokenManager(), userRepo)
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, mongo, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Workspaces:     handlers.NewWorkspacesHandler(guard, workspaceService),
		Projects:       handlers.NewProjectsHandler(guard, projectService),
		Tasks:          handlers.NewTasksHandler(guard, taskService),
		Analytics:      handlers.NewAnalyticsHandler(guard, analyticsService),
		AI:             handlers.NewAIHandler(aiService),
		Webhook:        handlers.NewWebhookHandler(cfg, taskService, logger),
		AuthMiddleware: authMiddleware,
		Registry:       registry,
		Logger:         logger,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
