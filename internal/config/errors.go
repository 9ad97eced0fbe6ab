package config

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfRange   = errors.New("value out of range")
	ErrWrongType    = errors.New("wrong value type")
	ErrInvalidColor = errors.New("invalid color")
	ErrUnknownTheme = errors.New("unknown theme")
)

// FieldError reports a configuration value that was rejected and replaced by a default.
type FieldError struct {
	Field string
	Value any
	Err   error
}

func (e *FieldError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s=%v: %v", e.Field, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

func fieldErr(field string, value any, err error) error {
	return &FieldError{Field: field, Value: value, Err: err}
}
