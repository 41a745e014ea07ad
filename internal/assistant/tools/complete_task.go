package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"lucas-asistente/internal/store"
	syncpkg "lucas-asistente/internal/sync"
	pkgLog "lucas-asistente/pkg/log"
)

type CompleteTaskTool struct {
	tasks  store.TaskRepository
	outbox syncpkg.Emitter
	l      pkgLog.Logger
}

func NewCompleteTaskTool(tasks store.TaskRepository, outbox syncpkg.Emitter, l pkgLog.Logger) *CompleteTaskTool {
	return &CompleteTaskTool{
		tasks:  tasks,
		outbox: outbox,
		l:      l,
	}
}

func (t *CompleteTaskTool) Name() string {
	return "complete_task"
}

func (t *CompleteTaskTool) Description() string {
	return "Marca una tarea como completada buscándola por texto"
}

func (t *CompleteTaskTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"busqueda": map[string]interface{}{
				"type":        "string",
				"description": "Texto para buscar y encontrar la tarea a completar",
			},
		},
		"required": []string{"busqueda"},
	}
}

type completeTaskInput struct {
	Busqueda string `json:"busqueda"`
}

func (t *CompleteTaskTool) Execute(ctx context.Context, args map[string]interface{}) (string, error) {
	raw, err := json.Marshal(args)
	if err != nil {
		return "", fmt.Errorf("failed to marshal input: %w", err)
	}
	var params completeTaskInput
	if err := json.Unmarshal(raw, &params); err != nil {
		return "", fmt.Errorf("failed to parse input: %w", err)
	}

	matches, err := t.tasks.SearchOpenTasks(ctx, params.Busqueda)
	if err != nil {
		return "", fmt.Errorf("failed to search tasks: %w", err)
	}

	switch {
	case len(matches) == 0:
		return fmt.Sprintf("No encontré ninguna tarea pendiente que coincida con %q. ¿Quieres que busque de otra manera?",
			params.Busqueda), nil

	case len(matches) == 1:
		task := matches[0]
		if err := t.tasks.CompleteTask(ctx, task.ID); err != nil {
			return "", fmt.Errorf("failed to complete task: %w", err)
		}
		t.outbox.Emit(ctx, syncpkg.Event{
			Collection: syncpkg.CollectionTasks,
			Action:     syncpkg.ActionUpsert,
			ID:         task.ID,
		})
		return fmt.Sprintf("¡Genial! He marcado como completada la tarea %q. ¡Buen trabajo! 🎉", task.Title), nil

	default:
		// Never guess among several matches; list candidates and let
		// the user pick. Nothing is mutated on this path.
		var b strings.Builder
		for i, task := range matches {
			if i == maxDisambiguation {
				break
			}
			fmt.Fprintf(&b, "%d. %s\n", i+1, task.Title)
		}
		return fmt.Sprintf("Encontré varias tareas que coinciden:\n\n%s\n¿Cuál quieres completar? Puedes decirme el número o ser más específico.",
			b.String()), nil
	}
}

var _ Tool = (*CompleteTaskTool)(nil)
