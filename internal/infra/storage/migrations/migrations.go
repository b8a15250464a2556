package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var FS embed.FS

// Migrator применяет миграции схемы к PostgreSQL
type Migrator struct {
	db *sql.DB
}

// NewMigrator создает мигратор для подключения
func NewMigrator(db *sql.DB) *Migrator {
	return &Migrator{db: db}
}

// Migrate применяет все миграции, уже примененные пропускаются
func (m *Migrator) Migrate(ctx context.Context) error {
	goose.SetBaseFS(FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("migrations: set dialect: %w", err)
	}
	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return fmt.Errorf("migrations: goose up: %w", err)
	}
	return nil
}
