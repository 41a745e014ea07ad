package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

func encodeOffsets(offsets []int) (string, error) {
	if offsets == nil {
		offsets = []int{}
	}
	raw, err := json.Marshal(offsets)
	if err != nil {
		return "", fmt.Errorf("failed to encode offsets: %w", err)
	}
	return string(raw), nil
}

func decodeOffsets(raw string) ([]int, error) {
	var offsets []int
	if err := json.Unmarshal([]byte(raw), &offsets); err != nil {
		return nil, fmt.Errorf("failed to decode offsets %q: %w", raw, err)
	}
	return offsets, nil
}

func unixPtr(t *time.Time) sql.NullInt64 {
	if t == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: t.Unix(), Valid: true}
}

func timePtr(v sql.NullInt64) *time.Time {
	if !v.Valid {
		return nil
	}
	t := time.Unix(v.Int64, 0)
	return &t
}
