package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"lucas-asistente/internal/store"
	pkgLog "lucas-asistente/pkg/log"
)

type ListRemindersTool struct {
	reminders store.ReminderRepository
	l         pkgLog.Logger
}

func NewListRemindersTool(reminders store.ReminderRepository, l pkgLog.Logger) *ListRemindersTool {
	return &ListRemindersTool{
		reminders: reminders,
		l:         l,
	}
}

func (t *ListRemindersTool) Name() string {
	return "list_reminders"
}

func (t *ListRemindersTool) Description() string {
	return "Obtiene los recordatorios del usuario"
}

func (t *ListRemindersTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"filtro": map[string]interface{}{
				"type":        "string",
				"enum":        []string{"hoy", "proximos", "todos"},
				"description": "Filtro para los recordatorios",
			},
		},
	}
}

type listRemindersInput struct {
	Filtro string `json:"filtro"`
}

var emptyReminderListMessages = map[store.ReminderFilter]string{
	store.ReminderFilterHoy:      "No tienes recordatorios para hoy.",
	store.ReminderFilterProximos: "No tienes recordatorios próximos.",
	store.ReminderFilterTodos:    "No tienes ningún recordatorio activo.",
}

func (t *ListRemindersTool) Execute(ctx context.Context, args map[string]interface{}) (string, error) {
	raw, err := json.Marshal(args)
	if err != nil {
		return "", fmt.Errorf("failed to marshal input: %w", err)
	}
	var params listRemindersInput
	if err := json.Unmarshal(raw, &params); err != nil {
		return "", fmt.Errorf("failed to parse input: %w", err)
	}

	filter := store.ReminderFilter(params.Filtro)
	if params.Filtro == "" {
		filter = store.ReminderFilterProximos
	}
	if _, known := emptyReminderListMessages[filter]; !known {
		return "No encontré recordatorios con ese filtro.", nil
	}

	reminders, err := t.reminders.ListReminders(ctx, store.ReminderQuery{
		Filter: filter,
		Now:    time.Now(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to list reminders: %w", err)
	}

	if len(reminders) == 0 {
		return emptyReminderListMessages[filter], nil
	}

	var b strings.Builder
	for i, r := range reminders {
		if i == maxListRows {
			break
		}
		fmt.Fprintf(&b, "%d. 🔔 %s - %s\n", i+1, r.Title, shortDateTime(r.FireAt))
	}

	titulo := string(filter)
	if filter == store.ReminderFilterHoy {
		titulo = "para hoy"
	}
	out := fmt.Sprintf("Tus recordatorios %s:\n\n%s", titulo, strings.TrimRight(b.String(), "\n"))
	if len(reminders) > maxListRows {
		out += fmt.Sprintf("\n\n...y %d más", len(reminders)-maxListRows)
	}
	return out, nil
}

var _ Tool = (*ListRemindersTool)(nil)
