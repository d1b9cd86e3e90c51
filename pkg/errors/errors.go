// Package errors holds the sentinel errors shared between services and
// handlers, so handlers can pick a status code without string matching.
package errors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates a requested resource does not exist
var ErrNotFound = errors.New("not found")

// NotFoundError wraps ErrNotFound with the missing resource's name
func NotFoundError(resource string) error {
	return fmt.Errorf("%s %w", resource, ErrNotFound)
}

// Is reports whether err matches target, unwrapping as needed
func Is(err, target error) bool {
	return errors.Is(err, target)
}
