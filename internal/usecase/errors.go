package usecase

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"nyumbanii_maintenance/internal/domain/entities"
)

var (
	ErrValidation     = errors.New("validation failed")
	ErrNotFound       = errors.New("not found")
	ErrTransition     = errors.New("invalid status transition")
	ErrStore          = errors.New("store failure")
	ErrPartialFailure = errors.New("partial failure")
)

// ValidationError reports missing or malformed input. Nothing was written.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func newValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// NotFoundError reports a referenced staff member, request or quote that does not exist.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// TransitionError reports an operation that is not valid for the request's current status.
// Nothing was written.
type TransitionError struct {
	RequestID string
	Operation string
	Current   entities.RequestStatus
	Allowed   []entities.RequestStatus
}

func (e *TransitionError) Error() string {
	allowed := make([]string, 0, len(e.Allowed))
	for _, s := range e.Allowed {
		allowed = append(allowed, string(s))
	}
	return fmt.Sprintf("cannot %s request %s in status %q (allowed from: %s)",
		e.Operation, e.RequestID, e.Current, strings.Join(allowed, ", "))
}

func (e *TransitionError) Is(target error) bool { return target == ErrTransition }

// StoreError wraps a persistence or network failure. Callers may retry.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

func (e *StoreError) Is(target error) bool { return target == ErrStore }

func storeError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}

// PartialFailureError reports a quote approval whose commit point succeeded but whose
// follow-up quote writes did not all land. The reconciler finishes the job.
type PartialFailureError struct {
	RequestID string
	Failed    map[string]error
}

func (e *PartialFailureError) Error() string {
	ids := make([]string, 0, len(e.Failed))
	for id := range e.Failed {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return fmt.Sprintf("request %s approved but %d quote write(s) failed: %s",
		e.RequestID, len(ids), strings.Join(ids, ", "))
}

func (e *PartialFailureError) Is(target error) bool { return target == ErrPartialFailure }
