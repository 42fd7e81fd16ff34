package main

import (
	"context"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/fitcore/gym-management/internal/config"
	"github.com/fitcore/gym-management/internal/database"
	"github.com/fitcore/gym-management/internal/handler"
	"github.com/fitcore/gym-management/internal/queue"
	"github.com/fitcore/gym-management/internal/repository"
	"github.com/fitcore/gym-management/internal/router"
	"github.com/fitcore/gym-management/internal/service"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger, err := buildLogger(cfg.Env)
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	client, db, err := database.Open(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logger.Fatal("mongodb unavailable", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(ctx)
	}()

	validate := validator.New()

	users := repository.NewUserRepo(db, validate, logger)
	subs := repository.NewSubscriptionRepo(db, validate, logger)
	meals := repository.NewMealRepo(db, validate, logger)
	exercises := repository.NewExerciseRepo(db, validate, logger)
	mealTpls := repository.NewMealTemplateRepo(db, validate, logger)
	exerciseTpls := repository.NewExerciseTemplateRepo(db, validate, logger)
	assignments := repository.NewAssignmentRepo(db, validate, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := users.EnsureIndexes(ctx); err != nil {
		cancel()
		logger.Fatal("create user indexes", zap.Error(err))
	}
	cancel()

	rdb := config.NewRedisClient()
	if rdb == nil {
		logger.Warn("redis unavailable, rate limiting and response cache disabled")
	}

	events := service.NewPublisher(cfg.RabbitURL, logger)
	if cfg.RabbitURL != "" {
		go queue.StartConsumer(cfg.RabbitURL, logger)
	}

	e := echo.New()
	e.HideBanner = true

	router.Register(e, router.Deps{
		Cfg:           cfg,
		RateLimit:     config.LoadRateLimitConfig(),
		Cache:         config.LoadCacheConfig(),
		Redis:         rdb,
		Log:           logger,
		Auth:          handler.NewAuthHandler(cfg, users, validate, events, logger),
		OAuth:         handler.NewOAuthHandler(cfg, users, events, logger),
		Users:         handler.NewUserHandler(cfg, users, validate, logger),
		Subscriptions: handler.NewSubscriptionHandler(subs, events, logger),
		Meals:         handler.NewMealHandler(meals, logger),
		Exercises:     handler.NewExerciseHandler(exercises, logger),
		Templates:     handler.NewTemplateHandler(mealTpls, exerciseTpls, logger),
		Assignments:   handler.NewAssignmentHandler(assignments, logger),
		Pages:         handler.NewPageHandler(),
	})

	addr := ":" + cfg.Port
	logger.Info("listening", zap.String("addr", addr), zap.String("env", cfg.Env))
	if err := e.Start(addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func buildLogger(env string) (*zap.Logger, error) {
	if env == "prod" || env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
