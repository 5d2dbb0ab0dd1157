package cmd

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/redis/rueidis"

	"task-planner.com/task-planner/internal/ai"
	config "task-planner.com/task-planner/internal/configs"
	"task-planner.com/task-planner/internal/planner"
	"task-planner.com/task-planner/internal/queue"
	repository "task-planner.com/task-planner/internal/repositories"
	"task-planner.com/task-planner/internal/services"
)

// app holds the long-lived dependencies shared by every command.
type app struct {
	cfg         config.Config
	store       *repository.Store
	redisClient rueidis.Client

	planService     *services.PlanService
	taskService     *services.TaskService
	progressService *services.ProgressService
}

// newApp wires the services. Only the server shares generation slots through
// Redis; one-off commands take a local budget so they never reset the
// server's tokens.
func newApp(ctx context.Context, sharedLimiter bool) (*app, error) {
	if err := godotenv.Load(); err != nil {
		log.Println(".env file not found, using environment variables")
	}

	cfg := config.Load()
	store := repository.NewStore(config.New(cfg.DatabaseDSN))

	a := &app{cfg: cfg, store: store}

	var tokenManager queue.TokenManager
	if sharedLimiter && cfg.GenerationLimiter == config.LimiterRedis {
		a.redisClient = config.NewRedisClient(cfg.RedisAddr)
		tokenManager = queue.NewRedisTokenManager(a.redisClient, cfg.RedisGenerationKey)
	} else {
		tokenManager = queue.NewLocalTokenManager(cfg.GenerationSlots)
	}

	if err := tokenManager.InitializeTokens(ctx, cfg.GenerationSlots); err != nil {
		a.Close()
		return nil, err
	}

	provider := ai.NewGeminiProvider(cfg.GeminiModel, cfg.GeminiAPIKey)
	decomposer := planner.NewDecomposer(provider)

	a.planService = services.NewPlanService(store, decomposer, tokenManager)
	a.taskService = services.NewTaskService(store.Tasks())
	a.progressService = services.NewProgressService(store.Plans(), store.Tasks())

	return a, nil
}

func (a *app) Close() {
	if a.redisClient != nil {
		a.redisClient.Close()
	}
	if err := a.store.Close(); err != nil {
		log.Printf("failed to close database: %v", err)
	}
}
