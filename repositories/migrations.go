package repositories

import (
	"context"
	"database/sql"
	"embed"
	"log/slog"

	"github.com/caseward/caseward-backend/infra"
	"github.com/cockroachdb/errors"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

type Migrater struct {
	pgConfig infra.PgConfig
	logger   *slog.Logger
}

func NewMigrater(pgConfig infra.PgConfig, logger *slog.Logger) *Migrater {
	return &Migrater{
		pgConfig: pgConfig,
		logger:   logger,
	}
}

func (m *Migrater) Run(ctx context.Context) error {
	db, err := sql.Open("pgx", m.pgConfig.GetConnectionString())
	if err != nil {
		return errors.Wrap(err, "unable to connect to database")
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return errors.Wrap(err, "unable to ping database")
	}

	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "could not set goose dialect")
	}

	m.logger.InfoContext(ctx, "running migrations")
	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return errors.Wrap(err, "goose up failed")
	}
	return nil
}
