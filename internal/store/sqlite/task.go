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

const taskColumns = `id, titulo, descripcion, fecha_limite, prioridad, categoria,
	completada, completada_en, orden, parent_id, creada_en, actualizada_en`

// CreateTask inserts a new task and returns it with its assigned id.
func (s *Store) CreateTask(ctx context.Context, input store.CreateTaskInput) (model.Task, error) {
	now := time.Now()

	priority := input.Priority
	if !priority.Valid() {
		priority = model.PriorityMedia
	}
	category := input.Category
	if category == "" {
		category = model.DefaultCategoryName
	}

	var parent sql.NullInt64
	if input.ParentID != nil {
		parent = sql.NullInt64{Int64: *input.ParentID, Valid: true}
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO tareas (titulo, descripcion, fecha_limite, prioridad, categoria, parent_id, creada_en, actualizada_en)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		input.Title, input.Description, unixPtr(input.DueDate), string(priority), category,
		parent, now.Unix(), now.Unix())
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to insert task: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to read task id: %w", err)
	}

	return s.GetTask(ctx, id)
}

// GetTask fetches one task by id.
func (s *Store) GetTask(ctx context.Context, id int64) (model.Task, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+taskColumns+` FROM tareas WHERE id = ?`, id)

	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, store.ErrNotFound
	}
	return t, err
}

// ListTasks returns top-level tasks matching the query, ordered by
// creation time.
func (s *Store) ListTasks(ctx context.Context, q store.TaskQuery) ([]model.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tareas WHERE parent_id IS NULL`
	args := []any{}

	if q.Category != "" {
		query += ` AND categoria = ?`
		args = append(args, q.Category)
	}

	switch q.Filter {
	case store.TaskFilterHoy:
		dayStart := time.Date(q.Now.Year(), q.Now.Month(), q.Now.Day(), 0, 0, 0, 0, q.Now.Location())
		dayEnd := dayStart.AddDate(0, 0, 1)
		query += ` AND fecha_limite IS NOT NULL AND fecha_limite >= ? AND fecha_limite < ?`
		args = append(args, dayStart.Unix(), dayEnd.Unix())
	case store.TaskFilterPendientes:
		query += ` AND completada = 0`
	case store.TaskFilterCompletadas:
		query += ` AND completada = 1`
	case store.TaskFilterTodas, "":
		// no extra predicate
	default:
		return nil, fmt.Errorf("unknown task filter %q", q.Filter)
	}

	query += ` ORDER BY creada_en`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	return collectTasks(rows)
}

// SearchOpenTasks matches incomplete top-level tasks whose title or
// description contains the text. LIKE on lowered columns keeps the match
// case-insensitive without accent folding.
func (s *Store) SearchOpenTasks(ctx context.Context, text string) ([]model.Task, error) {
	pattern := "%" + text + "%"
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+taskColumns+` FROM tareas
		WHERE parent_id IS NULL AND completada = 0
		  AND (LOWER(titulo) LIKE LOWER(?) OR LOWER(descripcion) LIKE LOWER(?))
		ORDER BY creada_en`,
		pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to search tasks: %w", err)
	}
	defer rows.Close()

	return collectTasks(rows)
}

// CompleteTask marks a task done, recording the completion time.
func (s *Store) CompleteTask(ctx context.Context, id int64) error {
	now := time.Now().Unix()
	res, err := s.db.ExecContext(ctx,
		`UPDATE tareas SET completada = 1, completada_en = ?, actualizada_en = ? WHERE id = ?`,
		now, now, id)
	if err != nil {
		return fmt.Errorf("failed to complete task: %w", err)
	}
	return requireRow(res)
}

// DeleteTask removes a task; subtasks cascade.
func (s *Store) DeleteTask(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM tareas WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return requireRow(res)
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (model.Task, error) {
	var (
		t           model.Task
		due         sql.NullInt64
		completedAt sql.NullInt64
		parent      sql.NullInt64
		priority    string
		created     int64
		updated     int64
	)

	err := row.Scan(&t.ID, &t.Title, &t.Description, &due, &priority, &t.Category,
		&t.Completed, &completedAt, &t.Order, &parent, &created, &updated)
	if err != nil {
		return model.Task{}, err
	}

	t.Priority = model.Priority(priority)
	t.DueDate = timePtr(due)
	t.CompletedAt = timePtr(completedAt)
	if parent.Valid {
		t.ParentID = &parent.Int64
	}
	t.CreatedAt = time.Unix(created, 0)
	t.UpdatedAt = time.Unix(updated, 0)

	return t, nil
}

func collectTasks(rows *sql.Rows) ([]model.Task, error) {
	var tasks []model.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}
	return tasks, nil
}
