// Command migrate applies or inspects the database migrations without
// starting the API. Usage: migrate [up|status]
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/ghuser/shoppinglist/migrations"
	"github.com/ghuser/shoppinglist/pkg/config"
	"github.com/ghuser/shoppinglist/pkg/database"
	"github.com/ghuser/shoppinglist/pkg/logger"
	"github.com/ghuser/shoppinglist/pkg/migrator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg)

	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	ctx := context.Background()
	pool, err := database.NewPool(ctx, cfg.DatabaseDriver, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer pool.Close() //nolint:errcheck

	files, err := migrations.FS(cfg.DatabaseDriver)
	if err != nil {
		log.Error("failed to load migrations", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	switch cmd {
	case "up":
		err = migrator.RunMigrations(ctx, pool.DB().DB, cfg.DatabaseDriver, files, log)
	case "status":
		err = migrator.Status(ctx, pool.DB().DB, cfg.DatabaseDriver, files, log)
	default:
		log.Error("unknown command, expected up or status", "command", cmd)
		os.Exit(2)
	}
	if err != nil {
		log.Error("migration failed", "command", cmd, "error", err)
		os.Exit(1)
	}
}
