package database

import (
	"database/sql"
	"embed"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"meem-backend/pkg/utils"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Migrate applies pending schema migrations. Goose needs database/sql, so a
// short-lived stdlib connection is opened next to the pgx pool.
func Migrate(config utils.DatabaseConfig) error {
	db, err := sql.Open("pgx", buildConnStr(config))
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	return nil
}
