package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"lucas-asistente/internal/model"
	"lucas-asistente/internal/store"
)

const reminderColumns = `id, titulo, descripcion, fecha_hora, notificar_antes,
	completado, notificaciones_enviadas, exportado_a_calendar, creado_en, actualizado_en`

// CreateReminder inserts a new reminder and returns it with its id.
func (s *Store) CreateReminder(ctx context.Context, input store.CreateReminderInput) (model.Reminder, error) {
	now := time.Now()

	notify := input.NotifyBefore
	if len(notify) == 0 {
		notify = model.DefaultNotifyBefore
	}
	encoded, err := encodeOffsets(notify)
	if err != nil {
		return model.Reminder{}, err
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO recordatorios (titulo, descripcion, fecha_hora, notificar_antes, creado_en, actualizado_en)
		VALUES (?, ?, ?, ?, ?, ?)`,
		input.Title, input.Description, input.FireAt.Unix(), encoded, now.Unix(), now.Unix())
	if err != nil {
		return model.Reminder{}, fmt.Errorf("failed to insert reminder: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return model.Reminder{}, fmt.Errorf("failed to read reminder id: %w", err)
	}

	return s.GetReminder(ctx, id)
}

// GetReminder fetches one reminder by id.
func (s *Store) GetReminder(ctx context.Context, id int64) (model.Reminder, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+reminderColumns+` FROM recordatorios WHERE id = ?`, id)

	r, err := scanReminder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Reminder{}, store.ErrNotFound
	}
	return r, err
}

// ListReminders returns incomplete reminders matching the query,
// ascending by fire moment.
func (s *Store) ListReminders(ctx context.Context, q store.ReminderQuery) ([]model.Reminder, error) {
	query := `SELECT ` + reminderColumns + ` FROM recordatorios WHERE completado = 0`
	args := []any{}

	switch q.Filter {
	case store.ReminderFilterHoy:
		dayStart := time.Date(q.Now.Year(), q.Now.Month(), q.Now.Day(), 0, 0, 0, 0, q.Now.Location())
		dayEnd := dayStart.AddDate(0, 0, 1)
		query += ` AND fecha_hora >= ? AND fecha_hora < ?`
		args = append(args, dayStart.Unix(), dayEnd.Unix())
	case store.ReminderFilterProximos:
		weekEnd := q.Now.AddDate(0, 0, 7)
		query += ` AND fecha_hora >= ? AND fecha_hora <= ?`
		args = append(args, q.Now.Unix(), weekEnd.Unix())
	case store.ReminderFilterTodos, "":
		// no extra predicate
	default:
		return nil, fmt.Errorf("unknown reminder filter %q", q.Filter)
	}

	query += ` ORDER BY fecha_hora`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}
	defer rows.Close()

	var reminders []model.Reminder
	for rows.Next() {
		r, err := scanReminder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reminder: %w", err)
		}
		reminders = append(reminders, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reminders: %w", err)
	}
	return reminders, nil
}

// MarkOffsetNotified appends the offset to the sent set. Marking an
// already-sent offset leaves the set unchanged.
func (s *Store) MarkOffsetNotified(ctx context.Context, id int64, minutes int) error {
	r, err := s.GetReminder(ctx, id)
	if err != nil {
		return err
	}
	if r.OffsetNotified(minutes) {
		return nil
	}

	encoded, err := encodeOffsets(append(r.NotifiedOffsets, minutes))
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE recordatorios SET notificaciones_enviadas = ?, actualizado_en = ? WHERE id = ?`,
		encoded, time.Now().Unix(), id)
	if err != nil {
		return fmt.Errorf("failed to mark offset notified: %w", err)
	}
	return requireRow(res)
}

// SetExportedToCalendar flags the reminder as mirrored to the calendar.
func (s *Store) SetExportedToCalendar(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE recordatorios SET exportado_a_calendar = 1, actualizado_en = ? WHERE id = ?`,
		time.Now().Unix(), id)
	if err != nil {
		return fmt.Errorf("failed to flag calendar export: %w", err)
	}
	return requireRow(res)
}

// CompleteReminder marks a reminder done.
func (s *Store) CompleteReminder(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE recordatorios SET completado = 1, actualizado_en = ? WHERE id = ?`,
		time.Now().Unix(), id)
	if err != nil {
		return fmt.Errorf("failed to complete reminder: %w", err)
	}
	return requireRow(res)
}

// DeleteReminder removes a reminder.
func (s *Store) DeleteReminder(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM recordatorios WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete reminder: %w", err)
	}
	return requireRow(res)
}

func scanReminder(row rowScanner) (model.Reminder, error) {
	var (
		r        model.Reminder
		fireAt   int64
		notify   string
		notified string
		created  int64
		updated  int64
	)

	err := row.Scan(&r.ID, &r.Title, &r.Description, &fireAt, &notify,
		&r.Completed, &notified, &r.ExportedToCalendar, &created, &updated)
	if err != nil {
		return model.Reminder{}, err
	}

	r.FireAt = time.Unix(fireAt, 0)
	r.CreatedAt = time.Unix(created, 0)
	r.UpdatedAt = time.Unix(updated, 0)

	if r.NotifyBefore, err = decodeOffsets(notify); err != nil {
		return model.Reminder{}, err
	}
	if r.NotifiedOffsets, err = decodeOffsets(notified); err != nil {
		return model.Reminder{}, err
	}

	return r, nil
}
