package supabase

// TaskRecord is the remote row shape for the tareas table.
type TaskRecord struct {
	ID          int64    `json:"id"`
	Title       string   `json:"titulo"`
	Description *string  `json:"descripcion"`
	DueDate     *string  `json:"fecha_limite"`
	Priority    string   `json:"prioridad"`
	Category    string   `json:"categoria"`
	Completed   bool     `json:"completada"`
	CompletedAt *string  `json:"completada_en"`
	Order       int      `json:"orden"`
	ParentID    *int64   `json:"parent_id"`
	Images      []string `json:"imagenes"`
	CreatedAt   string   `json:"creada_en"`
	UpdatedAt   string   `json:"actualizada_en"`
}

// ReminderRecord is the remote row shape for the recordatorios table.
type ReminderRecord struct {
	ID                 int64   `json:"id"`
	Title              string  `json:"titulo"`
	Description        *string `json:"descripcion"`
	FireAt             string  `json:"fecha_hora"`
	NotifyBefore       []int   `json:"notificar_antes"`
	Completed          bool    `json:"completado"`
	NotifiedOffsets    []int   `json:"notificaciones_enviadas"`
	ExportedToCalendar bool    `json:"exportado_a_calendar"`
	CreatedAt          string  `json:"creado_en"`
	UpdatedAt          string  `json:"actualizado_en"`
}
