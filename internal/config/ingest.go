package config

import (
	"fmt"
	"strconv"
)

// IngestConfig drives the Open Library import.
type IngestConfig struct {
	UserAgent  string
	RPS        float64
	MaxRetries int

	BooksMax  int
	Subjects  []string
	BatchSize int
}

// LoadIngest reads the OPENLIBRARY_* and INGEST_* variables.
func LoadIngest() (IngestConfig, error) {
	LoadEnvFiles()

	cfg := IngestConfig{
		UserAgent: getEnv("OPENLIBRARY_USER_AGENT", "locallibrary/1.0 (catalog import)"),
		Subjects:  SplitList(getEnv("INGEST_SUBJECTS", "fantasy,science_fiction,classics")),
	}

	var err error
	if cfg.RPS, err = strconv.ParseFloat(getEnv("OPENLIBRARY_RPS", "1"), 64); err != nil {
		return IngestConfig{}, fmt.Errorf("OPENLIBRARY_RPS: %w", err)
	}
	if cfg.MaxRetries, err = strconv.Atoi(getEnv("OPENLIBRARY_MAX_RETRIES", "3")); err != nil {
		return IngestConfig{}, fmt.Errorf("OPENLIBRARY_MAX_RETRIES: %w", err)
	}
	if cfg.BooksMax, err = strconv.Atoi(getEnv("INGEST_BOOKS_MAX", "100")); err != nil {
		return IngestConfig{}, fmt.Errorf("INGEST_BOOKS_MAX: %w", err)
	}
	if cfg.BatchSize, err = strconv.Atoi(getEnv("INGEST_BATCH_SIZE", "20")); err != nil {
		return IngestConfig{}, fmt.Errorf("INGEST_BATCH_SIZE: %w", err)
	}
	if cfg.RPS <= 0 {
		return IngestConfig{}, fmt.Errorf("OPENLIBRARY_RPS must be positive")
	}
	return cfg, nil
}
