package main

import (
	"context"
	"flag"
	"os"

	"locallibrary/internal/config"
	"locallibrary/internal/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

func main() {
	var (
		command = flag.String("command", "up", "Migration command: up, down, status, create")
		name    = flag.String("name", "", "Name for 'create' command")
	)
	flag.Parse()

	config.LoadEnvFiles()
	log := logger.New(os.Stderr, os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))

	if *command == "create" {
		if *name == "" {
			log.Fatal("name is required for 'create' command")
		}
		if err := goose.Create(nil, migrationsDir(), *name, "sql"); err != nil {
			log.WithError(err).Fatal("failed to create migration")
		}
		log.WithField("name", *name).Info("migration created")
		return
	}

	dsn := config.DatabaseDSN()
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.WithError(err).WithField("dsn", config.RedactDSN(dsn)).Fatal("failed to connect to database")
	}
	defer pool.Close()

	sqlDB := stdlib.OpenDBFromPool(pool)
	defer sqlDB.Close()

	fsys, dir := migrationSource()
	goose.SetBaseFS(fsys)
	if err := goose.SetDialect("postgres"); err != nil {
		log.WithError(err).Fatal("unsupported dialect")
	}

	switch *command {
	case "up":
		if err := goose.UpContext(ctx, sqlDB, dir); err != nil {
			log.WithError(err).Fatal("failed to run migrations")
		}
		log.Info("migrations applied successfully")
	case "down":
		if err := goose.DownContext(ctx, sqlDB, dir); err != nil {
			log.WithError(err).Fatal("failed to roll back migrations")
		}
		log.Info("migrations rolled back successfully")
	case "status":
		if err := goose.StatusContext(ctx, sqlDB, dir); err != nil {
			log.WithError(err).Fatal("failed to check migration status")
		}
	default:
		log.Fatalf("unknown command: %s. Use: up, down, status, create", *command)
	}
}
