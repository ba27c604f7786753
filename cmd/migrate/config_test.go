package main

import (
	"testing"

	"locallibrary/db"
)

func TestMigrationsDir_EnvOverride(t *testing.T) {
	t.Setenv("MIGRATIONS_DIR", "/custom/migrations")

	if got := migrationsDir(); got != "/custom/migrations" {
		t.Fatalf("expected MIGRATIONS_DIR override, got %q", got)
	}
	fsys, dir := migrationSource()
	if fsys != nil || dir != "/custom/migrations" {
		t.Fatalf("expected on-disk source, got fs=%v dir=%q", fsys, dir)
	}
}

func TestMigrationsDir_Default(t *testing.T) {
	t.Setenv("MIGRATIONS_DIR", "")

	if got := migrationsDir(); got != "db/migrations" {
		t.Fatalf("expected default migrations dir, got %q", got)
	}
	fsys, dir := migrationSource()
	if fsys == nil || dir != db.MigrationsDir {
		t.Fatalf("expected embedded source, got dir=%q", dir)
	}
}
