package sqlite

// Timestamps are stored as Unix seconds; offset sets as JSON arrays.
const schema = `
CREATE TABLE IF NOT EXISTS tareas (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	titulo         TEXT NOT NULL,
	descripcion    TEXT NOT NULL DEFAULT '',
	fecha_limite   INTEGER,
	prioridad      TEXT NOT NULL DEFAULT 'media',
	categoria      TEXT NOT NULL DEFAULT 'Personal',
	completada     INTEGER NOT NULL DEFAULT 0,
	completada_en  INTEGER,
	orden          INTEGER NOT NULL DEFAULT 0,
	parent_id      INTEGER REFERENCES tareas(id) ON DELETE CASCADE,
	creada_en      INTEGER NOT NULL,
	actualizada_en INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_tareas_completada ON tareas(completada);
CREATE INDEX IF NOT EXISTS idx_tareas_parent ON tareas(parent_id);

CREATE TABLE IF NOT EXISTS recordatorios (
	id                       INTEGER PRIMARY KEY AUTOINCREMENT,
	titulo                   TEXT NOT NULL,
	descripcion              TEXT NOT NULL DEFAULT '',
	fecha_hora               INTEGER NOT NULL,
	notificar_antes          TEXT NOT NULL DEFAULT '[]',
	completado               INTEGER NOT NULL DEFAULT 0,
	notificaciones_enviadas  TEXT NOT NULL DEFAULT '[]',
	exportado_a_calendar     INTEGER NOT NULL DEFAULT 0,
	creado_en                INTEGER NOT NULL,
	actualizado_en           INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_recordatorios_fecha ON recordatorios(fecha_hora);

CREATE TABLE IF NOT EXISTS conversaciones (
	id             TEXT PRIMARY KEY,
	titulo         TEXT NOT NULL,
	creada_en      INTEGER NOT NULL,
	actualizada_en INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS mensajes (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	conversacion_id TEXT NOT NULL REFERENCES conversaciones(id) ON DELETE CASCADE,
	rol             TEXT NOT NULL,
	contenido       TEXT NOT NULL,
	creado_en       INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_mensajes_conversacion ON mensajes(conversacion_id, creado_en);

CREATE TABLE IF NOT EXISTS categorias (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	nombre     TEXT NOT NULL UNIQUE,
	color      TEXT NOT NULL DEFAULT '',
	es_default INTEGER NOT NULL DEFAULT 0,
	orden      INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS ajustes (
	id                     INTEGER PRIMARY KEY AUTOINCREMENT,
	notificaciones_activas INTEGER NOT NULL DEFAULT 0,
	tiempos_notificacion   TEXT NOT NULL DEFAULT '[]',
	categoria_default      TEXT NOT NULL DEFAULT 'Personal'
);

CREATE TABLE IF NOT EXISTS notificaciones (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	recordatorio_id INTEGER NOT NULL,
	offset_minutos  INTEGER NOT NULL,
	titulo          TEXT NOT NULL,
	cuerpo          TEXT NOT NULL,
	emitida_en      INTEGER NOT NULL,
	UNIQUE(recordatorio_id, offset_minutos)
);
`
