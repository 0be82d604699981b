package repository

import "fmt"

// NoSuitableSourceError reports that a read exhausted the primary statement
// and every fallback candidate for an entity on one sede. It usually means
// schema drift: neither the suffixed nor the generic table is usable.
type NoSuitableSourceError struct {
	Entity string
	Sede   string
	Cause  error
}

func (e *NoSuitableSourceError) Error() string {
	return fmt.Sprintf("no suitable source for %s on sede %s: %v", e.Entity, e.Sede, e.Cause)
}

func (e *NoSuitableSourceError) Unwrap() error {
	return e.Cause
}
