package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"lucas-asistente/internal/model"
	"lucas-asistente/internal/store"
)

// Store is the SQLite-backed implementation of store.Store.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path, runs the schema
// and seeds default categories and settings when the store is empty.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("failed to create store directory: %w", err)
		}
	}

	dsn := path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	s := &Store{db: db}
	if err := s.seed(context.Background()); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// seed inserts the default categories and the settings row when absent.
func (s *Store) seed(ctx context.Context) error {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM categorias`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}
	if count == 0 {
		for _, c := range model.DefaultCategories {
			_, err := s.db.ExecContext(ctx,
				`INSERT INTO categorias (nombre, color, es_default, orden) VALUES (?, ?, ?, ?)`,
				c.Name, c.Color, c.IsDefault, c.Order)
			if err != nil {
				return fmt.Errorf("failed to seed category %q: %w", c.Name, err)
			}
		}
	}

	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM ajustes`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count settings: %w", err)
	}
	if count == 0 {
		offsets, err := encodeOffsets(model.DefaultSettings.NotifyOffsets)
		if err != nil {
			return err
		}
		_, err = s.db.ExecContext(ctx,
			`INSERT INTO ajustes (notificaciones_activas, tiempos_notificacion, categoria_default) VALUES (?, ?, ?)`,
			model.DefaultSettings.NotificationsEnabled, offsets, model.DefaultSettings.DefaultCategory)
		if err != nil {
			return fmt.Errorf("failed to seed settings: %w", err)
		}
	}

	return nil
}

var _ store.Store = (*Store)(nil)
