// Package migration applies the embedded profile schema with sql-migrate.
package migration

import (
	"context"
	"database/sql"
	"embed"

	migrate "github.com/rubenv/sql-migrate"
)

//go:embed sql/*.sql
var migrations embed.FS

const migrationDir = "sql"

func migrationSource() *migrate.EmbedFileSystemMigrationSource {
	return &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrations,
		Root:       migrationDir,
	}
}

// execMigrations is a seam for tests.
var execMigrations = func(ctx context.Context, db *sql.DB, source migrate.MigrationSource) (int, error) {
	return migrate.ExecContext(ctx, db, "postgres", source, migrate.Up)
}

// Run applies every pending migration and returns how many ran.
func Run(ctx context.Context, db *sql.DB) (int, error) {
	return execMigrations(ctx, db, migrationSource())
}
