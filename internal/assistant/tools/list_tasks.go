package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"lucas-asistente/internal/model"
	"lucas-asistente/internal/store"
	pkgLog "lucas-asistente/pkg/log"
)

type ListTasksTool struct {
	tasks store.TaskRepository
	l     pkgLog.Logger
}

func NewListTasksTool(tasks store.TaskRepository, l pkgLog.Logger) *ListTasksTool {
	return &ListTasksTool{
		tasks: tasks,
		l:     l,
	}
}

func (t *ListTasksTool) Name() string {
	return "list_tasks"
}

func (t *ListTasksTool) Description() string {
	return "Obtiene las tareas del usuario según un filtro"
}

func (t *ListTasksTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"filtro": map[string]interface{}{
				"type":        "string",
				"enum":        []string{"hoy", "pendientes", "completadas", "todas"},
				"description": "Filtro para las tareas",
			},
			"categoria": map[string]interface{}{
				"type":        "string",
				"description": "Filtrar por categoría específica",
			},
		},
	}
}

type listTasksInput struct {
	Filtro    string `json:"filtro"`
	Categoria string `json:"categoria"`
}

var emptyTaskListMessages = map[store.TaskFilter]string{
	store.TaskFilterHoy:         "No tienes tareas para hoy. ¡Día libre!",
	store.TaskFilterPendientes:  "¡No tienes tareas pendientes! Todo al día.",
	store.TaskFilterCompletadas: "Aún no has completado ninguna tarea.",
	store.TaskFilterTodas:       "No tienes ninguna tarea creada.",
}

func (t *ListTasksTool) Execute(ctx context.Context, args map[string]interface{}) (string, error) {
	raw, err := json.Marshal(args)
	if err != nil {
		return "", fmt.Errorf("failed to marshal input: %w", err)
	}
	var params listTasksInput
	if err := json.Unmarshal(raw, &params); err != nil {
		return "", fmt.Errorf("failed to parse input: %w", err)
	}

	filter := store.TaskFilter(params.Filtro)
	if params.Filtro == "" {
		filter = store.TaskFilterPendientes
	}
	if _, known := emptyTaskListMessages[filter]; !known {
		return "No encontré tareas con ese filtro.", nil
	}

	tasks, err := t.tasks.ListTasks(ctx, store.TaskQuery{
		Filter:   filter,
		Category: params.Categoria,
		Now:      time.Now(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to list tasks: %w", err)
	}

	if len(tasks) == 0 {
		return emptyTaskListMessages[filter], nil
	}

	var b strings.Builder
	for i, task := range tasks {
		if i == maxListRows {
			break
		}
		estado := "○"
		if task.Completed {
			estado = "✓"
		}
		fmt.Fprintf(&b, "%d. %s %s %s\n", i+1, estado, priorityGlyph(task.Priority), task.Title)
	}

	titulo := string(filter)
	if filter == store.TaskFilterHoy {
		titulo = "para hoy"
	}
	out := fmt.Sprintf("Aquí están tus tareas %s:\n\n%s", titulo, strings.TrimRight(b.String(), "\n"))
	if len(tasks) > maxListRows {
		out += fmt.Sprintf("\n\n...y %d más", len(tasks)-maxListRows)
	}
	return out, nil
}

func priorityGlyph(p model.Priority) string {
	switch p {
	case model.PriorityAlta:
		return "🔴"
	case model.PriorityBaja:
		return "🟢"
	default:
		return "🟡"
	}
}

var _ Tool = (*ListTasksTool)(nil)
