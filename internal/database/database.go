package database

import (
	"context"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver, registers "pgx"
	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/reflectx"
	_ "github.com/sijms/go-ora/v2" // Oracle driver, registers "oracle"

	"lumina/internal/config"
)

func init() {
	// go-ora binds :name placeholders, which sqlx does not know for this driver name.
	sqlx.BindDriver("oracle", sqlx.NAMED)
}

// DriverName maps a storage driver to the database/sql driver it uses.
func DriverName(storageDriver string) (string, error) {
	switch storageDriver {
	case config.DriverOracle:
		return "oracle", nil
	case config.DriverPostgres:
		return "pgx", nil
	default:
		return "", fmt.Errorf("storage driver %q is not a SQL database", storageDriver)
	}
}

// NewSQLXDB connects to the SQL database selected by cfg.Storage.Driver.
func NewSQLXDB(ctx context.Context, cfg *config.Config) (*sqlx.DB, error) {
	driver, err := DriverName(cfg.Storage.Driver)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.ConnectContext(ctx, driver, cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", cfg.Storage.Driver, err)
	}
	ConfigureMapper(db, cfg.Storage.Driver)
	return db, nil
}

// ConfigureMapper lets the upper-case db tags used by the models match the
// lower-case column names PostgreSQL reports. Oracle reports upper case.
func ConfigureMapper(db *sqlx.DB, storageDriver string) {
	if storageDriver == config.DriverPostgres {
		db.Mapper = reflectx.NewMapperTagFunc("db", strings.ToLower, strings.ToLower)
	}
}
