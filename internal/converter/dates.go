package converter

import (
	"errors"
	"time"
)

var ErrInvalidFecha = errors.New("invalid date value")

// Clients send dates in a handful of shapes; the UI uses plain ISO dates,
// scripted clients send full timestamps.
var fechaLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

func parseFecha(s string) (time.Time, error) {
	for _, layout := range fechaLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidFecha
}
