package dateparse

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrUnparseable is returned when a phrase yields neither a date nor a time.
var ErrUnparseable = errors.New("unparseable date expression")

// Parser converts free-form Spanish date/time phrases to absolute time.Time
// values. Phrases like "martes a las 9", "mañana a las 14:30" or
// "en 3 días" resolve relative to a caller-supplied base time.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Europe/Madrid"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// dateRule tries to resolve the date component of a normalized phrase.
// Rules are tried in order; the first match wins.
type dateRule func(p *Parser, text string, base time.Time) (time.Time, bool)

var dateRules = []dateRule{
	(*Parser).matchLiteralDay,
	(*Parser).matchWeekday,
	(*Parser).matchDayOffset,
	(*Parser).matchNextWeek,
	(*Parser).matchISO,
	(*Parser).matchLooseDate,
}

// Parse resolves a phrase into a fully-specified local instant.
// Date resolution and time-of-day extraction run as independent layers:
// "martes a las 9", "a las 9" (implicit today) and "martes" (default
// 09:00) all share the same time-extraction pass. When the phrase names a
// day but no time, 09:00 is substituted for midnight.
func (p *Parser) Parse(text string, base time.Time) (time.Time, error) {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return time.Time{}, ErrUnparseable
	}

	base = base.In(p.location)

	date, dateOK := p.resolveDate(normalized, base)
	hour, minute, timeOK := extractTime(normalized)

	switch {
	case !dateOK && !timeOK:
		return time.Time{}, ErrUnparseable
	case !dateOK:
		// Time-only phrase: the date defaults to today.
		date = p.startOfDay(base)
	}

	if timeOK {
		return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, p.location), nil
	}

	// A bare day with no time would land on midnight; users asking for
	// "el jueves" expect a sane default instead.
	if date.Hour() == 0 && date.Minute() == 0 {
		return time.Date(date.Year(), date.Month(), date.Day(), 9, 0, 0, 0, p.location), nil
	}

	return date, nil
}

func (p *Parser) resolveDate(text string, base time.Time) (time.Time, bool) {
	for _, rule := range dateRules {
		if t, ok := rule(p, text, base); ok {
			return t, true
		}
	}
	return time.Time{}, false
}

// matchLiteralDay handles "hoy", "mañana" and "pasado mañana" prefixes.
func (p *Parser) matchLiteralDay(text string, base time.Time) (time.Time, bool) {
	switch {
	case strings.HasPrefix(text, "pasado mañana"), strings.HasPrefix(text, "pasado manana"):
		return p.startOfDay(base.AddDate(0, 0, 2)), true
	case strings.HasPrefix(text, "hoy"), strings.HasPrefix(text, "today"):
		return p.startOfDay(base), true
	case strings.HasPrefix(text, "mañana"), strings.HasPrefix(text, "manana"),
		strings.HasPrefix(text, "tomorrow"):
		return p.startOfDay(base.AddDate(0, 0, 1)), true
	}
	return time.Time{}, false
}

var weekdayNames = []struct {
	name string
	day  time.Weekday
}{
	{"domingo", time.Sunday},
	{"lunes", time.Monday},
	{"martes", time.Tuesday},
	{"miercoles", time.Wednesday},
	{"jueves", time.Thursday},
	{"viernes", time.Friday},
	{"sabado", time.Saturday},
}

// matchWeekday resolves a weekday name (optionally preceded by "el",
// "este" or "próximo") to its next occurrence strictly after the base
// day. A name matching today's weekday resolves 7 days out, never today.
func (p *Parser) matchWeekday(text string, base time.Time) (time.Time, bool) {
	folded := foldAccents(text)

	for _, w := range weekdayNames {
		re := regexp.MustCompile(`\b` + w.name + `\b`)
		if !re.MatchString(folded) {
			continue
		}

		daysUntil := int(w.day - base.Weekday())
		if daysUntil <= 0 {
			daysUntil += 7
		}
		return p.startOfDay(base.AddDate(0, 0, daysUntil)), true
	}
	return time.Time{}, false
}

var dayOffsetRe = regexp.MustCompile(`(?:en|dentro de)\s+(\d+)\s+d[ií]as?`)

// matchDayOffset handles "en N días" and "dentro de N días".
func (p *Parser) matchDayOffset(text string, base time.Time) (time.Time, bool) {
	m := dayOffsetRe.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return time.Time{}, false
	}
	return p.startOfDay(base.AddDate(0, 0, n)), true
}

// matchNextWeek handles "la próxima semana" / "siguiente semana" at week
// granularity, with no day-of-week narrowing.
func (p *Parser) matchNextWeek(text string, base time.Time) (time.Time, bool) {
	folded := foldAccents(text)
	if strings.Contains(folded, "proxima semana") || strings.Contains(folded, "siguiente semana") {
		return p.startOfDay(base.AddDate(0, 0, 7)), true
	}
	return time.Time{}, false
}

var isoLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// matchISO parses strict ISO 8601 date or date-time literals.
func (p *Parser) matchISO(text string, base time.Time) (time.Time, bool) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return time.Time{}, false
	}
	// Normalization lowercased the phrase; restore the ISO separator.
	candidate := strings.ToUpper(fields[0])
	for _, layout := range isoLayouts {
		if t, err := time.ParseInLocation(layout, candidate, p.location); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

var looseLayouts = []string{
	"2/1/2006",
	"2-1-2006",
	"2006/1/2",
	"January 2, 2006",
	"2 January 2006",
}

// matchLooseDate is the last-resort native parse. Results with a year of
// 2000 or earlier are rejected so short strings like "9" never resolve
// as a date.
func (p *Parser) matchLooseDate(text string, base time.Time) (time.Time, bool) {
	for _, layout := range looseLayouts {
		t, err := time.ParseInLocation(layout, text, p.location)
		if err != nil {
			continue
		}
		if t.Year() <= 2000 {
			continue
		}
		return t, true
	}
	return time.Time{}, false
}

func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}

func foldAccents(s string) string {
	replacer := strings.NewReplacer(
		"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ü", "u",
	)
	return replacer.Replace(s)
}
