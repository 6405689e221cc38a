package migrations

import (
	"database/sql"
	"embed"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"catchpac/internal/pkg/errs"
)

//go:embed *.sql
var migrationFS embed.FS

// Run applies all pending migrations against the given DSN.
func Run(dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return errs.Wrap(err, "failed to open migration connection")
	}
	defer db.Close()

	goose.SetBaseFS(migrationFS)
	if err := goose.SetDialect("postgres"); err != nil {
		return errs.Wrap(err, "failed to set goose dialect")
	}

	if err := goose.Up(db, "."); err != nil {
		return errs.Wrap(err, "failed to apply migrations")
	}
	return nil
}
