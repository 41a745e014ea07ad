package sqlite

import (
	"context"
	"fmt"
	"time"

	"lucas-asistente/internal/model"
)

// AppendNotification records an emitted notification. The
// (reminder, offset) pair is unique so a re-emit attempt fails rather
// than duplicating.
func (s *Store) AppendNotification(ctx context.Context, n model.Notification) (int64, error) {
	emitted := n.EmittedAt
	if emitted.IsZero() {
		emitted = time.Now()
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO notificaciones (recordatorio_id, offset_minutos, titulo, cuerpo, emitida_en)
		 VALUES (?, ?, ?, ?, ?)`,
		n.ReminderID, n.OffsetMinutes, n.Title, n.Body, emitted.Unix())
	if err != nil {
		return 0, fmt.Errorf("failed to insert notification: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read notification id: %w", err)
	}
	return id, nil
}

// ListNotificationsSince returns notifications emitted at or after the
// given time, oldest first.
func (s *Store) ListNotificationsSince(ctx context.Context, since time.Time) ([]model.Notification, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, recordatorio_id, offset_minutos, titulo, cuerpo, emitida_en
		 FROM notificaciones WHERE emitida_en >= ? ORDER BY emitida_en, id`,
		since.Unix())
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var out []model.Notification
	for rows.Next() {
		var (
			n       model.Notification
			emitted int64
		)
		if err := rows.Scan(&n.ID, &n.ReminderID, &n.OffsetMinutes, &n.Title, &n.Body, &emitted); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		n.EmittedAt = time.Unix(emitted, 0)
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notifications: %w", err)
	}
	return out, nil
}
