package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"lucas-asistente/internal/model"
	"lucas-asistente/internal/store"
	syncpkg "lucas-asistente/internal/sync"
	"lucas-asistente/pkg/dateparse"
	pkgLog "lucas-asistente/pkg/log"
)

type CreateTaskTool struct {
	tasks  store.TaskRepository
	parser *dateparse.Parser
	outbox syncpkg.Emitter
	l      pkgLog.Logger
}

func NewCreateTaskTool(tasks store.TaskRepository, parser *dateparse.Parser, outbox syncpkg.Emitter, l pkgLog.Logger) *CreateTaskTool {
	return &CreateTaskTool{
		tasks:  tasks,
		parser: parser,
		outbox: outbox,
		l:      l,
	}
}

func (t *CreateTaskTool) Name() string {
	return "create_task"
}

func (t *CreateTaskTool) Description() string {
	return "Crea una nueva tarea para el usuario"
}

func (t *CreateTaskTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"titulo": map[string]interface{}{
				"type":        "string",
				"description": "El título de la tarea",
			},
			"descripcion": map[string]interface{}{
				"type":        "string",
				"description": "Descripción opcional de la tarea",
			},
			"prioridad": map[string]interface{}{
				"type":        "string",
				"enum":        []string{"alta", "media", "baja"},
				"description": "Prioridad de la tarea",
			},
			"categoria": map[string]interface{}{
				"type":        "string",
				"description": "Categoría de la tarea (Personal, Trabajo, Salud, Compras, Hogar, Finanzas)",
			},
			"fechaLimite": map[string]interface{}{
				"type":        "string",
				"description": "Fecha límite: expresión en español (mañana, el martes a las 9) o fecha ISO",
			},
		},
		"required": []string{"titulo"},
	}
}

type createTaskInput struct {
	Titulo      string `json:"titulo"`
	Descripcion string `json:"descripcion"`
	Prioridad   string `json:"prioridad"`
	Categoria   string `json:"categoria"`
	FechaLimite string `json:"fechaLimite"`
}

func (t *CreateTaskTool) Execute(ctx context.Context, args map[string]interface{}) (string, error) {
	raw, err := json.Marshal(args)
	if err != nil {
		return "", fmt.Errorf("failed to marshal input: %w", err)
	}
	var params createTaskInput
	if err := json.Unmarshal(raw, &params); err != nil {
		return "", fmt.Errorf("failed to parse input: %w", err)
	}

	// An unparseable due phrase is non-fatal: the task is created
	// without a due date.
	var dueDate *time.Time
	if s := strings.TrimSpace(params.FechaLimite); s != "" {
		if moment, err := t.parser.Parse(s, time.Now()); err == nil {
			dueDate = &moment
		} else {
			t.l.Warnf(ctx, "create_task: unparseable due phrase %q", s)
		}
	}

	task, err := t.tasks.CreateTask(ctx, store.CreateTaskInput{
		Title:       params.Titulo,
		Description: params.Descripcion,
		DueDate:     dueDate,
		Priority:    model.Priority(params.Prioridad),
		Category:    params.Categoria,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create task: %w", err)
	}

	t.outbox.Emit(ctx, syncpkg.Event{
		Collection: syncpkg.CollectionTasks,
		Action:     syncpkg.ActionUpsert,
		ID:         task.ID,
	})

	var fechaStr string
	if dueDate != nil {
		fechaStr = fmt.Sprintf(" para %s", spanishDate(*dueDate))
	}
	return fmt.Sprintf("He creado la tarea %q%s. ¡Ya está en tu lista!", params.Titulo, fechaStr), nil
}

var _ Tool = (*CreateTaskTool)(nil)
