package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"movie-discovery/internal/catalog"
	"movie-discovery/internal/config"
	"movie-discovery/internal/database"
	"movie-discovery/internal/models"
	"movie-discovery/internal/repository"
	"movie-discovery/internal/service"
	"movie-discovery/internal/tmdb"
)

func main() {
	pages := flag.Int("pages", 5, "number of TMDB discover pages to fetch")
	out := flag.String("out", "", "write the synced catalog to this JSON file")
	toDB := flag.Bool("db", true, "upsert synced movies into PostgreSQL")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))

	if cfg.TMDB.APIKey == "" {
		slog.Error("TMDB_API_KEY is required")
		os.Exit(1)
	}
	if *pages < 1 || *pages > 50 {
		slog.Error("pages must be between 1 and 50", "pages", *pages)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var sink service.MovieSink
	if *toDB {
		db, err := database.NewPostgres(cfg.DB)
		if err != nil {
			slog.Error("failed to connect to PostgreSQL", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		sink = repository.NewCatalogRepository(db)
	}

	syncSvc := service.NewSyncService(tmdb.NewClient(cfg.TMDB.APIKey, cfg.TMDB.BaseURL), sink)
	movies, err := syncSvc.SyncMovies(ctx, *pages)
	if err != nil {
		slog.Error("sync failed", "error", err)
		os.Exit(1)
	}

	if *out != "" {
		if err := writeCatalog(*out, movies); err != nil {
			slog.Error("failed to write catalog file", "path", *out, "error", err)
			os.Exit(1)
		}
		slog.Info("catalog file written", "path", *out, "movies", len(movies))
	}

	if *toDB {
		// Cached listings are stale once the table changes.
		if rdb, err := database.NewRedis(cfg.Redis); err == nil {
			service.InvalidateCache(ctx, rdb)
			_ = rdb.Close()
		}
	}
}

func writeCatalog(path string, movies []models.Movie) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := catalog.Encode(f, movies); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
