package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"go.uber.org/zap"

	"lumina/internal/config"
	"lumina/internal/logger"
)

//go:embed migrations
var migrationsFS embed.FS

// Migrations lists the embedded .up.sql files for a dialect in execution order.
func Migrations(storageDriver string) ([]string, error) {
	dir := path.Join("migrations", storageDriver)
	entries, err := fs.ReadDir(migrationsFS, dir)
	if err != nil {
		return nil, fmt.Errorf("no migrations for %q: %w", storageDriver, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".up.sql") {
			continue
		}
		files = append(files, path.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// RunMigrations executes every migration for the dialect. Each script is
// idempotent, so running it against an up-to-date schema is harmless.
func RunMigrations(ctx context.Context, db *sql.DB, storageDriver string) error {
	if storageDriver != config.DriverOracle && storageDriver != config.DriverPostgres {
		return fmt.Errorf("storage driver %q has no SQL schema", storageDriver)
	}
	files, err := Migrations(storageDriver)
	if err != nil {
		return err
	}

	log := logger.Get()
	for _, file := range files {
		content, err := migrationsFS.ReadFile(file)
		if err != nil {
			return fmt.Errorf("could not read migration file %s: %w", file, err)
		}
		if _, err := db.ExecContext(ctx, strings.TrimSpace(string(content))); err != nil {
			return fmt.Errorf("could not execute migration %s: %w", file, err)
		}
		log.Info("Executed migration", zap.String("file", file))
	}

	log.Info("Migrations completed successfully", zap.Int("count", len(files)))
	return nil
}
