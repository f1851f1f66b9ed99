// Package handler contains the Echo HTTP handlers. Handlers validate input,
// orchestrate repository calls (opening transactions where a write spans
// several statements) and translate repository errors into HTTP responses.
package handler

import (
	"time"

	"github.com/google/uuid"
)

// validUUID reports whether s parses as a UUID. Path and body ids are
// validated before any query so malformed ids never reach the store.
func validUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// parseRFC3339 parses a date string from a request body. All stored dates
// are normalized to UTC.
func parseRFC3339(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
