// Package repository contains the data access layer, separated from HTTP
// handlers. Sentinel errors defined here let handlers distinguish failure
// classes: absent entities map to 404, rule conflicts to 409, and a write
// that unexpectedly affects zero rows maps to the write-failure class
// rather than a business rejection.
package repository

import (
	"errors"
	"strings"
)

// ErrCourseNotFound is returned when a course id or name matches no row.
var ErrCourseNotFound = errors.New("course not found")

// ErrLocationNotFound is returned when a district or city lookup matches no row.
var ErrLocationNotFound = errors.New("location not found")

// ErrCategoryNotFound is returned when a category or subcategory lookup
// matches no row.
var ErrCategoryNotFound = errors.New("category not found")

// ErrNoRowsAffected signals a storage-layer anomaly: an insert that the
// business logic expected to create a row reported zero affected rows.
// Callers must roll back the surrounding transaction.
var ErrNoRowsAffected = errors.New("no rows affected")

// IsDuplicateKey reports whether err is a MySQL duplicate-key violation
// (error 1062). Handlers treat it as the authoritative duplicate signal;
// the application-level pre-checks only exist for friendlier messages.
func IsDuplicateKey(err error) bool {
	return err != nil && strings.Contains(err.Error(), "1062")
}

// IsForeignKeyViolation reports whether err is a MySQL foreign-key failure
// (error 1452), e.g. a bridge row referencing a city id that does not exist.
func IsForeignKeyViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "1452")
}
