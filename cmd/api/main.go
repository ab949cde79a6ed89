package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/GLITCH-in-MATRIX9/VDS-Vikram-Design-Studio--sub000/internal/config"
	"github.com/GLITCH-in-MATRIX9/VDS-Vikram-Design-Studio--sub000/internal/content"
	"github.com/GLITCH-in-MATRIX9/VDS-Vikram-Design-Studio--sub000/internal/database"
	"github.com/GLITCH-in-MATRIX9/VDS-Vikram-Design-Studio--sub000/internal/database/migration"
	handlers "github.com/GLITCH-in-MATRIX9/VDS-Vikram-Design-Studio--sub000/internal/http/handler"
	"github.com/GLITCH-in-MATRIX9/VDS-Vikram-Design-Studio--sub000/internal/http/middleware"
	"github.com/GLITCH-in-MATRIX9/VDS-Vikram-Design-Studio--sub000/internal/otel"
	"github.com/GLITCH-in-MATRIX9/VDS-Vikram-Design-Studio--sub000/internal/ratelimit"
	"github.com/GLITCH-in-MATRIX9/VDS-Vikram-Design-Studio--sub000/internal/repository/postgres"
	"github.com/GLITCH-in-MATRIX9/VDS-Vikram-Design-Studio--sub000/internal/service"
	"github.com/GLITCH-in-MATRIX9/VDS-Vikram-Design-Studio--sub000/internal/storage"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	ctx := context.Background()

	shutdownTracing, err := otel.Init(ctx, time.UTC)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer shutdownTracing(ctx)

	// Initialize PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, time.UTC, cfg.Database.Host); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	storeMetrics, err := storage.NewMetrics(registry)
	if err != nil {
		log.Fatalf("failed to register storage metrics: %v", err)
	}

	// Object store, wrapped with bounded retry for transient failures
	objStore, err := storage.NewMinIO(cfg.MinIO, time.Duration(cfg.Assets.UploadTimeoutSec)*time.Second)
	if err != nil {
		log.Fatalf("failed to initialize object storage: %v", err)
	}
	uploader := storage.NewRetryUploader(objStore, storage.RetryPolicy{
		MaxAttempts: cfg.Assets.MaxAttempts,
		BaseBackoff: time.Duration(cfg.Assets.BaseBackoffMs) * time.Millisecond,
	}, log.Default(), storeMetrics)

	// Content pipeline: validation, inline payload conversion, orphan cleanup
	imageValidator := content.NewValidator(content.ImagePolicy(cfg.Assets.MaxImageBytes))
	resumeValidator := content.NewValidator(content.ResumePolicy(cfg.Assets.MaxResumeBytes))
	rewriter := content.NewRewriter(imageValidator, uploader)
	reconciler := content.NewReconciler(uploader, log.Default(), storeMetrics)

	// Repositories and services
	projectSvc := service.NewProjectService(postgres.NewProjectPostgres(db), rewriter, reconciler)
	pageSvc := service.NewPageService(postgres.NewPagePostgres(db), rewriter, reconciler)
	appSvc := service.NewApplicationService(postgres.NewApplicationPostgres(db), uploader, resumeValidator, reconciler)

	// Counter store for the public-form rate limiter; Redis when configured,
	// in-process otherwise
	var limiter ratelimit.CounterStore
	if cfg.RateLimit.RedisAddr != "" {
		redisStore, err := ratelimit.NewRedisStore(cfg.RateLimit.RedisAddr)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		defer redisStore.Close()
		limiter = redisStore
	} else {
		limiter = ratelimit.NewMemoryStore()
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		BodyLimit:    16 << 20, // inline payloads are base64, allow headroom over the asset ceiling
	})

	promMW, err := middleware.NewPrometheusMiddleware(registry)
	if err != nil {
		log.Fatalf("failed to register http metrics: %v", err)
	}

	// Register global middleware
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	app.Use(promMW.Handler())

	handlers.RegisterRoutes(app, handlers.RouteDeps{
		DB:           db,
		Projects:     projectSvc,
		Pages:        pageSvc,
		Applications: appSvc,
		Limiter:      limiter,
		LimiterMax:   cfg.RateLimit.Limit,
		LimiterWin:   time.Duration(cfg.RateLimit.WindowSec) * time.Second,
		Registry:     registry,
	})

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
