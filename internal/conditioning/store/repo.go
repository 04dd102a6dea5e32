// Package store is the PostgreSQL implementation of conditioning.RecordStore.
package store

import (
	"context"
	"embed"
	"fmt"

	"github.com/2beens/kondisca/internal/conditioning"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	log "github.com/sirupsen/logrus"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

var _ conditioning.RecordStore = (*Repo)(nil)

type Repo struct {
	db    *pgxpool.Pool
	newID func() string
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db:    db,
		newID: uuid.NewString,
	}
}

// Migrate brings the schema up to date, using the embedded goose migrations.
func Migrate(ctx context.Context, db *pgxpool.Pool) error {
	sqlDB := stdlib.OpenDBFromPool(db)
	defer func() {
		if err := sqlDB.Close(); err != nil {
			log.Warnf("close migrations db: %s", err)
		}
	}()

	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, sqlDB, "migrations"); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	log.Debugln("db migrations done")
	return nil
}
