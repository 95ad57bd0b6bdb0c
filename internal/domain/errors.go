package domain

import (
	"errors"
	"fmt"
)

// Sentinels carried inside the typed errors below; match them with errors.Is.
var (
	ErrInvalidDateRange   = errors.New("end date is before start date")
	ErrInvalidMethod      = errors.New("unknown payment method")
	ErrInvalidCategory    = errors.New("unknown vehicle category")
	ErrInvalidStatus      = errors.New("unknown payment status")
	ErrDuplicate          = errors.New("duplicate value")
	ErrAlreadyReturned    = errors.New("rental already returned")
	ErrAlreadyPaid        = errors.New("rental already paid")
	ErrVehicleUnavailable = errors.New("vehicle is not available")
)

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

// ConflictError covers both uniqueness collisions (Err = ErrDuplicate) and
// lifecycle precondition failures (ErrAlreadyReturned, ErrAlreadyPaid,
// ErrVehicleUnavailable).
type ConflictError struct {
	Resource string
	Msg      string
	Err      error
}

func (e ConflictError) Error() string {
	switch {
	case e.Msg != "" && e.Resource != "":
		return fmt.Sprintf("%s conflict: %s", e.Resource, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Resource != "" && e.Err != nil:
		return fmt.Sprintf("%s conflict: %v", e.Resource, e.Err)
	case e.Resource != "":
		return fmt.Sprintf("%s conflict", e.Resource)
	default:
		return "conflict"
	}
}

func (e ConflictError) Unwrap() error { return e.Err }

// InternalError marks a storage failure. Its message is never shown to callers.
type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" && e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target ConflictError
	return errors.As(err, &target)
}

// IsConstraintViolation reports a uniqueness collision.
func IsConstraintViolation(err error) bool {
	return IsConflict(err) && errors.Is(err, ErrDuplicate)
}

// IsStateConflict reports a lifecycle precondition failure.
func IsStateConflict(err error) bool {
	return IsConflict(err) && !errors.Is(err, ErrDuplicate)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}

// Storage wraps an unexpected store error unless it is already typed.
func Storage(msg string, err error) error {
	if err == nil {
		return nil
	}
	if IsNotFound(err) || IsValidation(err) || IsConflict(err) || IsInternal(err) {
		return err
	}
	return InternalError{Msg: msg, Err: err}
}
