package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"locallibrary/internal/catalog"
	"locallibrary/internal/config"
	"locallibrary/internal/ingest"
	"locallibrary/internal/logger"
	"locallibrary/internal/platform/openlibrary"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

func main() {
	booksMax := flag.Int("books", 0, "Stop once the catalog holds this many books (default INGEST_BOOKS_MAX)")
	subjects := flag.String("subjects", "", "Comma separated Open Library subjects (default INGEST_SUBJECTS)")
	flag.Parse()

	cfg, err := config.LoadIngest()
	log := logger.New(os.Stderr, os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}
	timeout, err := config.QueryTimeout()
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}
	if *booksMax > 0 {
		cfg.BooksMax = *booksMax
	}
	if list := config.SplitList(*subjects); len(list) > 0 {
		cfg.Subjects = list
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dsn := config.DatabaseDSN()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.WithError(err).WithField("dsn", config.RedactDSN(dsn)).Fatal("failed to connect to database")
	}
	defer pool.Close()

	svc := ingest.NewService(
		openlibrary.NewClient(cfg.UserAgent, cfg.RPS, cfg.MaxRetries),
		catalog.NewService(catalog.NewPostgresRepo(pool, timeout)),
		ingest.Config{BooksMax: cfg.BooksMax, Subjects: cfg.Subjects, BatchSize: cfg.BatchSize},
		log,
	)

	start := time.Now()
	res, err := svc.Run(ctx)
	fields := logrus.Fields{
		"books_fetched":     res.BooksFetched,
		"books_imported":    res.BooksImported,
		"authors_created":   res.AuthorsCreated,
		"languages_created": res.LanguagesCreated,
		"genres_created":    res.GenresCreated,
		"skipped":           res.Skipped,
		"duration_ms":       time.Since(start).Milliseconds(),
	}
	if err != nil {
		log.WithError(err).WithFields(fields).Fatal("import failed")
	}
	log.WithFields(fields).Info("import completed")
}
