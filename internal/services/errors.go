package services

import (
	"errors"
	"fmt"
)

var (
	// ErrFlightNotFound is returned when no flight has the requested id
	ErrFlightNotFound = errors.New("flight not found")
	// ErrAirportNotFound is returned when no airport has the requested id
	ErrAirportNotFound = errors.New("airport not found")
)

// ValidationError reports caller input that cannot be used as given
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// StoreFault wraps a persistence failure. It is the only error airport
// resolution lets through.
type StoreFault struct {
	Op  string
	Err error
}

func (e *StoreFault) Error() string {
	return fmt.Sprintf("store %s failed: %v", e.Op, e.Err)
}

func (e *StoreFault) Unwrap() error {
	return e.Err
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
