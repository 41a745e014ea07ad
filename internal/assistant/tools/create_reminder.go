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

type CreateReminderTool struct {
	reminders store.ReminderRepository
	parser    *dateparse.Parser
	outbox    syncpkg.Emitter
	l         pkgLog.Logger
}

func NewCreateReminderTool(reminders store.ReminderRepository, parser *dateparse.Parser, outbox syncpkg.Emitter, l pkgLog.Logger) *CreateReminderTool {
	return &CreateReminderTool{
		reminders: reminders,
		parser:    parser,
		outbox:    outbox,
		l:         l,
	}
}

func (t *CreateReminderTool) Name() string {
	return "create_reminder"
}

func (t *CreateReminderTool) Description() string {
	return "Crea un nuevo recordatorio con notificación"
}

func (t *CreateReminderTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"titulo": map[string]interface{}{
				"type":        "string",
				"description": "El título del recordatorio",
			},
			"descripcion": map[string]interface{}{
				"type":        "string",
				"description": "Descripción opcional",
			},
			"fechaHora": map[string]interface{}{
				"type":        "string",
				"description": "Fecha y hora: expresión en español (martes a las 9, mañana a las 14:30) o fecha ISO",
			},
		},
		"required": []string{"titulo", "fechaHora"},
	}
}

type createReminderInput struct {
	Titulo      string `json:"titulo"`
	Descripcion string `json:"descripcion"`
	FechaHora   string `json:"fechaHora"`
}

func (t *CreateReminderTool) Execute(ctx context.Context, args map[string]interface{}) (string, error) {
	raw, err := json.Marshal(args)
	if err != nil {
		return "", fmt.Errorf("failed to marshal input: %w", err)
	}
	var params createReminderInput
	if err := json.Unmarshal(raw, &params); err != nil {
		return "", fmt.Errorf("failed to parse input: %w", err)
	}

	phrase := strings.TrimSpace(params.FechaHora)
	fireAt, err := t.parser.Parse(phrase, time.Now())
	if err != nil {
		// No partial writes: an unparseable moment means no reminder.
		t.l.Warnf(ctx, "create_reminder: unparseable phrase %q", phrase)
		return fmt.Sprintf("No pude entender la fecha y hora %q. ¿Podrías especificarla de otra manera?", phrase), nil
	}

	reminder, err := t.reminders.CreateReminder(ctx, store.CreateReminderInput{
		Title:        params.Titulo,
		Description:  params.Descripcion,
		FireAt:       fireAt,
		NotifyBefore: model.DefaultNotifyBefore,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create reminder: %w", err)
	}

	t.outbox.Emit(ctx, syncpkg.Event{
		Collection: syncpkg.CollectionReminders,
		Action:     syncpkg.ActionUpsert,
		ID:         reminder.ID,
	})

	return fmt.Sprintf("He creado el recordatorio %q para %s. Te avisaré cuando sea el momento.",
		params.Titulo, spanishDateTime(fireAt)), nil
}

var _ Tool = (*CreateReminderTool)(nil)
