package models

import (
	"errors"
	"fmt"
)

var (
	ErrOrderNotFound = errors.New("order_not_found")

	// ErrStatusNotAllowed is returned by the store when a guarded status
	// update matched no row: the id is unknown or the current status is
	// outside the allowed set. Callers re-fetch to tell the two apart.
	ErrStatusNotAllowed = errors.New("status_not_allowed")
)

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

type ConflictError struct {
	Current OrderStatus
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("Cannot move to InProgress from %s.", e.Current)
}
