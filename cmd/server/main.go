package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/eivindh/rpa-radar/internal/config"
	"github.com/eivindh/rpa-radar/internal/database"
	"github.com/eivindh/rpa-radar/internal/modules/analytics"
	"github.com/eivindh/rpa-radar/internal/modules/processes"
	"github.com/eivindh/rpa-radar/internal/scheduler"
	"github.com/eivindh/rpa-radar/internal/server"
	"github.com/eivindh/rpa-radar/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Logger is not up yet; write directly and exit.
		panic(err)
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})

	log.Info().Msg("Starting RPA Radar")

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	if err := db.Migrate(processes.Schema, analytics.SnapshotSchema); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	sched := scheduler.New(log)
	sched.Start()
	defer sched.Stop()

	if err := registerJobs(sched, db, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("Failed to register jobs")
	}

	srv := server.New(server.Config{
		Port:    cfg.Port,
		Log:     log,
		DB:      db,
		Config:  cfg,
		DevMode: cfg.DevMode,
	})

	go func() {
		if err := srv.Start(); err != nil {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Int("port", cfg.Port).Msg("Server started successfully")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}

func registerJobs(sched *scheduler.Scheduler, db *database.DB, cfg *config.Config, log zerolog.Logger) error {
	processRepo := processes.NewRepository(db.Conn(), log)
	analyticsService := analytics.NewService(processRepo, log)
	snapshotRepo := analytics.NewSnapshotRepository(db.Conn(), log)

	return sched.AddJob(cfg.SnapshotSchedule, scheduler.NewSnapshotJob(analyticsService, snapshotRepo, log))
}
