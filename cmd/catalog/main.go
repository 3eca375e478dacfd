package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gamecatalog/internal/catalog"
	"gamecatalog/internal/config"
	"gamecatalog/internal/middleware"
	"gamecatalog/internal/routes"
	"gamecatalog/internal/storage/localcache"
	"gamecatalog/internal/storage/mariadb"
)

const (
	envLocal = "local"
	envProd  = "prod"

	sourceMemory = "memory"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("starting server", slog.String("env", cfg.Env))

	var (
		source  catalog.Source
		storage *mariadb.Storage
	)

	if cfg.Catalog.Source == sourceMemory {
		games := catalog.Fixtures()
		if cfg.Catalog.SnapshotPath != "" {
			if loaded, err := catalog.LoadSnapshot(cfg.Catalog.SnapshotPath); err == nil {
				games = loaded
			}
		}

		mem := catalog.NewMemoryCatalog(games, cfg.Catalog.SnapshotPath, log)
		defer func() {
			if err := mem.Close(); err != nil {
				log.Error("failed to close memory catalog", slog.String("error", err.Error()))
			}
		}()

		source = mem
		log.Info("catalog init", slog.String("source", sourceMemory))
	} else {
		st, err := mariadb.New(cfg.Database)
		if err != nil {
			log.Error("failed to create database", slog.String("error", err.Error()))
			panic("db-err")
		}
		storage = st

		defer func() {
			if err := storage.Close(); err != nil {
				log.Error("failed to close database", slog.String("error", err.Error()))
			}
		}()

		if err := storage.Migrate(); err != nil {
			log.Error("migration", slog.String("error", err.Error()))
			panic("table-err")
		}

		if err := storage.SeedGames(catalog.Fixtures()); err != nil {
			log.Error("seeding", slog.String("error", err.Error()))
		}

		source = catalog.NewDBCatalog(storage)
		log.Info("catalog init", slog.String("source", "db"))
	}

	var cache *localcache.Cache
	if cfg.Favorites.LocalCachePath != "" {
		c, err := localcache.Open(cfg.Favorites.LocalCachePath)
		if err != nil {
			// The cache is a fallback; run without it rather than die.
			log.Error("failed to open favorites cache", slog.String("error", err.Error()))
		} else {
			cache = c
			defer func() {
				if err := cache.Close(); err != nil {
					log.Error("failed to close favorites cache", slog.String("error", err.Error()))
				}
			}()
		}
	}

	admin := middleware.NewAdminAuth(cfg.Admin.Login, cfg.Admin.Password)

	r := routes.SetupRouter(log, source, storage, cache, admin, cfg.Cors)

	log.Info("routes init")

	server := &http.Server{
		Addr:         cfg.Address,
		Handler:      r,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	serverErrors := make(chan error, 1)

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Info("starting server", slog.String("address", cfg.Address))
		serverErrors <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		log.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)

	case sig := <-shutdown:
		log.Info("shutting down", slog.String("signal", sig.String()))
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Error("graceful shutdown error", slog.String("error", err.Error()))
			if err := server.Close(); err != nil {
				log.Error("force shutdown error", slog.String("error", err.Error()))
			}
		}
	}
	log.Info("server stopped")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger
	switch env {
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	}
	return log
}
