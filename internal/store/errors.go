package store

import (
	"errors"
	"fmt"
)

// NotFoundError indicates a referenced entity does not exist.
type NotFoundError struct {
	// Kind names the entity type ("task", "workflow").
	Kind string
	// ID is the identifier that failed to resolve.
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// ConflictError indicates an id collision on creation.
type ConflictError struct {
	// Kind names the entity type ("task", "workflow").
	Kind string
	// ID is the identifier that already exists.
	ID string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %s already exists", e.Kind, e.ID)
}

// InvalidStateError indicates a mutation that violates the monotonic status
// contract, such as completing an already-completed task.
type InvalidStateError struct {
	// ID is the entity the mutation targeted.
	ID string
	// Reason describes the violated contract.
	Reason string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("invalid state for %s: %s", e.ID, e.Reason)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsConflict reports whether err is a ConflictError.
func IsConflict(err error) bool {
	var c *ConflictError
	return errors.As(err, &c)
}

// IsInvalidState reports whether err is an InvalidStateError.
func IsInvalidState(err error) bool {
	var is *InvalidStateError
	return errors.As(err, &is)
}
