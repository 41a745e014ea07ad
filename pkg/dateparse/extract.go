package dateparse

import (
	"regexp"
	"strconv"
)

// Time-of-day patterns, tried in order. Each candidate is validated
// (hour in [0,23], minute in [0,59]); an invalid candidate is discarded
// and the next pattern is tried.
var (
	clock24Re  = regexp.MustCompile(`\b(\d{1,2}):(\d{2})\b`)
	meridiemRe = regexp.MustCompile(`\b(\d{1,2})\s*([ap])\.?m\.?`)
	mananaRe   = regexp.MustCompile(`\b(\d{1,2})\s+de la ma[ñn]ana`)
	tardeRe    = regexp.MustCompile(`\b(\d{1,2})\s+de la (?:tarde|noche)`)
	aLasRe     = regexp.MustCompile(`a las\s+(\d{1,2})(?::(\d{2}))?`)
	horasRe    = regexp.MustCompile(`\b(\d{1,2})\s*(?:hrs|horas)\b`)
)

// extractTime pulls a time-of-day out of a normalized phrase,
// independently of whichever date rule matched.
func extractTime(text string) (hour, minute int, ok bool) {
	if m := clock24Re.FindStringSubmatch(text); m != nil {
		h, _ := strconv.Atoi(m[1])
		min, _ := strconv.Atoi(m[2])
		if validClock(h, min) {
			return h, min, true
		}
	}

	if m := meridiemRe.FindStringSubmatch(text); m != nil {
		h, _ := strconv.Atoi(m[1])
		if h >= 1 && h <= 12 {
			if m[2] == "a" {
				if h == 12 {
					h = 0
				}
			} else if h != 12 {
				h += 12
			}
			return h, 0, true
		}
	}

	if m := mananaRe.FindStringSubmatch(text); m != nil {
		h, _ := strconv.Atoi(m[1])
		if validClock(h, 0) {
			return h, 0, true
		}
	}

	if m := tardeRe.FindStringSubmatch(text); m != nil {
		h, _ := strconv.Atoi(m[1])
		if h < 12 {
			h += 12
		}
		if validClock(h, 0) {
			return h, 0, true
		}
	}

	if m := aLasRe.FindStringSubmatch(text); m != nil {
		h, _ := strconv.Atoi(m[1])
		min := 0
		if m[2] != "" {
			min, _ = strconv.Atoi(m[2])
		}
		if validClock(h, min) {
			return h, min, true
		}
	}

	if m := horasRe.FindStringSubmatch(text); m != nil {
		h, _ := strconv.Atoi(m[1])
		if validClock(h, 0) {
			return h, 0, true
		}
	}

	return 0, 0, false
}

func validClock(hour, minute int) bool {
	return hour >= 0 && hour <= 23 && minute >= 0 && minute <= 59
}
