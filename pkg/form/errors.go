package form

import (
	"errors"
	"fmt"
)

var (
	ErrMissingID         = errors.New("input must have an id")
	ErrMissingType       = errors.New("attempted to initialize input without a type")
	ErrUnknownType       = errors.New("invalid input type")
	ErrUnknownValidation = errors.New("invalid input validation")
	ErrInvalidAttribute  = errors.New("invalid input attribute")
	ErrMissingSubmit     = errors.New("could not find a submit form button")
	ErrDuplicateID       = errors.New("input id already registered")
	ErrNotFound          = errors.New("could not find required input")
)

// ConstructionError is returned when an input or a form cannot be built.
// It is never recoverable: the form definition itself is wrong.
type ConstructionError struct {
	ID     string
	Detail string
	Err    error
}

func (e *ConstructionError) Error() string {
	msg := e.Err.Error()
	if e.Detail != "" {
		msg = fmt.Sprintf("%s '%s'", msg, e.Detail)
	}
	if e.ID != "" {
		return fmt.Sprintf("input '%s': %s", e.ID, msg)
	}
	return msg
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}

func constructionErr(id string, err error, detail string) error {
	return &ConstructionError{ID: id, Detail: detail, Err: err}
}
