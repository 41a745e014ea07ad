package tools

import (
	"fmt"
	"time"
)

var spanishWeekdays = [...]string{
	"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado",
}

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// spanishDate renders "martes 10 de marzo".
func spanishDate(t time.Time) string {
	return fmt.Sprintf("%s %d de %s",
		spanishWeekdays[t.Weekday()], t.Day(), spanishMonths[t.Month()-1])
}

// spanishDateTime renders "martes 10 de marzo a las 09:00".
func spanishDateTime(t time.Time) string {
	return fmt.Sprintf("%s a las %02d:%02d", spanishDate(t), t.Hour(), t.Minute())
}

// shortDateTime renders "10/3 a las 09:00" for compact listings.
func shortDateTime(t time.Time) string {
	return fmt.Sprintf("%d/%d a las %02d:%02d", t.Day(), int(t.Month()), t.Hour(), t.Minute())
}
