package sqlite

import (
	"context"
	"fmt"

	"lucas-asistente/internal/model"
)

// GetSettings returns the single settings row.
func (s *Store) GetSettings(ctx context.Context) (model.Settings, error) {
	var (
		out     model.Settings
		offsets string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, notificaciones_activas, tiempos_notificacion, categoria_default
		 FROM ajustes ORDER BY id LIMIT 1`).
		Scan(&out.ID, &out.NotificationsEnabled, &offsets, &out.DefaultCategory)
	if err != nil {
		return model.Settings{}, fmt.Errorf("failed to get settings: %w", err)
	}

	if out.NotifyOffsets, err = decodeOffsets(offsets); err != nil {
		return model.Settings{}, err
	}
	return out, nil
}

// UpdateSettings replaces the settings row values.
func (s *Store) UpdateSettings(ctx context.Context, in model.Settings) error {
	offsets, err := encodeOffsets(in.NotifyOffsets)
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE ajustes SET notificaciones_activas = ?, tiempos_notificacion = ?, categoria_default = ? WHERE id = ?`,
		in.NotificationsEnabled, offsets, in.DefaultCategory, in.ID)
	if err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}
	return requireRow(res)
}
