// Package db holds the SQL migrations for the catalog schema.
package db

import "embed"

// Migrations contains every goose migration under migrations/.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir is the path of the migrations inside Migrations.
const MigrationsDir = "migrations"
