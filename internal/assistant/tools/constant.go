package tools

const (
	maxListRows       = 10
	maxDisambiguation = 5

	msgUnknownOperation = "No reconozco esa acción."
	msgGenericError     = "Hubo un error al procesar tu solicitud. ¿Podrías intentarlo de nuevo?"
)
