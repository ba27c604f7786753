package main

import (
	"io/fs"
	"os"

	"locallibrary/db"
)

// migrationSource returns the filesystem and directory goose reads from.
// MIGRATIONS_DIR switches from the embedded migrations to a directory on disk.
func migrationSource() (fs.FS, string) {
	if v := os.Getenv("MIGRATIONS_DIR"); v != "" {
		return nil, v
	}
	return db.Migrations, db.MigrationsDir
}

// migrationsDir is where "create" writes new files.
func migrationsDir() string {
	if v := os.Getenv("MIGRATIONS_DIR"); v != "" {
		return v
	}
	return "db/migrations"
}
