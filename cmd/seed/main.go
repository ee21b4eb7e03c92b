package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"taskboard-backend/internal/common/config"
	"taskboard-backend/internal/common/logger"
	"taskboard-backend/internal/domain/task"
	"taskboard-backend/internal/platform/database"
	"taskboard-backend/internal/seed"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger.Init("taskboard-seed", cfg.Debug, logger.FileOptions{})

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	db, err := database.Open(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Failed to migrate database")
	}

	summary, err := seed.Run(ctx, db.DB)
	if err != nil {
		logger.Fatal().Err(err).Msg("Seeding failed")
	}

	logger.Info().
		Int("users", summary.Users).
		Int("tasks", summary.Tasks).
		Int("done", summary.ByStatus[task.StatusDone]).
		Int("in_progress", summary.ByStatus[task.StatusInProgress]).
		Int("todo", summary.ByStatus[task.StatusTodo]).
		Int("high", summary.ByPriority[task.PriorityHigh]).
		Int("medium", summary.ByPriority[task.PriorityMedium]).
		Int("low", summary.ByPriority[task.PriorityLow]).
		Msg("Database seeded")
}
