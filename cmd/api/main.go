package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"

	"movie-discovery/internal/catalog"
	"movie-discovery/internal/chat"
	"movie-discovery/internal/config"
	"movie-discovery/internal/database"
	"movie-discovery/internal/handler"
	"movie-discovery/internal/middleware"
	"movie-discovery/internal/repository"
	"movie-discovery/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))

	var db *sql.DB
	if cfg.NeedsPostgres() {
		db, err = database.NewPostgres(cfg.DB)
		if err != nil {
			slog.Error("failed to connect to PostgreSQL", "error", err)
			os.Exit(1)
		}
		defer db.Close()
	}

	rdb, err := database.NewRedis(cfg.Redis)
	if err != nil {
		if cfg.Storage.Backend == config.StorageRedis {
			slog.Error("Redis is required for STORAGE_BACKEND=redis", "error", err)
			os.Exit(1)
		}
		slog.Warn("Redis unavailable, running without cache and rate limiting", "error", err)
	}

	movies, err := loadCatalog(cfg, db)
	if err != nil {
		slog.Error("failed to load catalog", "error", err)
		os.Exit(1)
	}

	var store repository.Persistence
	switch cfg.Storage.Backend {
	case config.StorageRedis:
		store = database.NewRedisKV(rdb)
	case config.StoragePostgres:
		store = database.NewPostgresKV(db)
	default:
		store = database.NewMemoryKV()
	}
	slog.Info("user state storage selected", "backend", cfg.Storage.Backend)

	tokens, err := service.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		slog.Error("failed to create token manager", "error", err)
		os.Exit(1)
	}

	state := repository.NewStateStore(store)
	authSvc := service.NewAuthService(repository.NewUserStore(), tokens, cfg.Auth.DemoMode)

	h := handler.Handlers{
		Movies:       handler.NewMovieHandler(service.NewMovieService(movies, rdb, cfg.PageSize)),
		Interactions: handler.NewInteractionHandler(service.NewInteractionService(movies, state), service.NewReviewService(movies, state), authSvc),
		Collections:  handler.NewCollectionHandler(service.NewCollectionService(movies, state)),
		Auth:         handler.NewAuthHandler(authSvc),
		Chat:         handler.NewChatHandler(service.NewChatService(newCompleter(cfg.Chat), cfg.Chat.Timeout)),
		Recommend:    handler.NewRecommendationHandler(service.NewRecommendationService(movies, state, nil)),
	}

	swaggerYAML, err := os.ReadFile("docs/swagger.yaml")
	if err != nil {
		slog.Warn("swagger document not found, swagger UI will be unavailable", "error", err)
	}

	app := fiber.New(fiber.Config{
		AppName:         "Movie Discovery API",
		ServerHeader:    "Movie-Discovery",
		ErrorHandler:    handler.ErrorHandler,
		StructValidator: handler.NewStructValidator(),
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())
	app.Use(middleware.NewRateLimiter(rdb, cfg.RateLimit.Max, cfg.RateLimit.WindowSeconds).Handler())

	handler.RegisterSwagger(app, "Movie Discovery API", swaggerYAML)
	handler.RegisterRoutes(app, h, middleware.AuthMiddleware(authSvc))

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("movie discovery API starting", "port", cfg.Port, "movies", movies.Len())
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down movie discovery API...")

	if err := app.Shutdown(); err != nil {
		slog.Error("error shutting down HTTP server", "error", err)
	}
	slog.Info("HTTP server stopped")

	if rdb != nil {
		if err := rdb.Close(); err != nil {
			slog.Error("error closing Redis connection", "error", err)
		} else {
			slog.Info("Redis connection closed")
		}
	}

	slog.Info("shutdown complete")
}

func loadCatalog(cfg *config.Config, db *sql.DB) (*catalog.Catalog, error) {
	if cfg.Catalog.Source == config.CatalogSourcePostgres {
		return catalog.LoadFrom(context.Background(), repository.NewCatalogRepository(db))
	}
	return catalog.LoadFile(cfg.Catalog.Path)
}

func newCompleter(cfg config.ChatConfig) chat.Completer {
	if cfg.Mode == config.ChatModeLLM {
		slog.Info("chat uses completion API", "model", cfg.Model)
		return chat.NewHTTPCompleter(cfg.APIURL, cfg.APIKey, cfg.Model)
	}
	return chat.NewStaticCompleter(cfg.StaticDelay)
}
