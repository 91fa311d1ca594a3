package schemavalidator

import (
	"errors"
	"fmt"
)

// ErrInvalidResult is returned by Result.Decode when the result carries no
// cleaned data, i.e. validation failed.
var ErrInvalidResult = errors.New("schemavalidator: result is not valid")

// ErrorCode classifies a validation error.
type ErrorCode string

const (
	// CodeRequired indicates a required field is absent.
	CodeRequired ErrorCode = "required"
	// CodeNull indicates an explicit null on a non-nullable field.
	CodeNull ErrorCode = "null"
	// CodeUnknownField indicates a data key not declared in the schema (strict mode).
	CodeUnknownField ErrorCode = "unknown-field"
	// CodeType indicates the value's runtime category disagrees with the declared type.
	CodeType ErrorCode = "type"
	// CodeRule indicates a declared constraint predicate returned false.
	CodeRule ErrorCode = "rule"
)

// ValidationError represents a single validation error.
// Errors are data: the engine never panics or returns them through the
// error interface during validation.
type ValidationError struct {
	// Field is the dotted/bracketed path to the offending field,
	// e.g. "user.profile.firstName" or "tags[2]".
	Field string `json:"field"`

	// Message is the human-readable description of the violation.
	Message string `json:"message"`

	// Value is the offending value. Nil for absent fields.
	Value any `json:"value,omitempty"`

	// Code classifies the error.
	Code ErrorCode `json:"code,omitempty"`
}

// String returns a human-readable representation of the error.
func (e ValidationError) String() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// RequiredError reports a required field that is absent from the data.
func RequiredError(field string) ValidationError {
	return ValidationError{
		Field:   field,
		Message: fmt.Sprintf("Field '%s' is required", field),
		Code:    CodeRequired,
	}
}

// NullError reports an explicit null on a field that is not nullable.
func NullError(field string) ValidationError {
	return ValidationError{
		Field:   field,
		Message: fmt.Sprintf("Field '%s' cannot be null", field),
		Code:    CodeNull,
	}
}

// UnknownFieldError reports a data key with no matching schema field.
func UnknownFieldError(field string, value any) ValidationError {
	return ValidationError{
		Field:   field,
		Message: fmt.Sprintf("Unknown field '%s'", field),
		Value:   value,
		Code:    CodeUnknownField,
	}
}

// TypeError reports a value whose runtime category does not match the
// declared field type.
func TypeError(field string, want FieldType, value any) ValidationError {
	return ValidationError{
		Field:   field,
		Message: fmt.Sprintf("Field '%s' must be of type %s", field, want),
		Value:   value,
		Code:    CodeType,
	}
}

// RuleError reports a failed constraint rule.
func RuleError(field, message string, value any) ValidationError {
	return ValidationError{
		Field:   field,
		Message: message,
		Value:   value,
		Code:    CodeRule,
	}
}

// Prefixed returns a copy of the error with its field path prefixed by the
// given parent path, joined with a dot. Message and value are preserved
// verbatim so nested errors surface unchanged.
func (e ValidationError) Prefixed(parent string) ValidationError {
	if parent == "" {
		return e
	}
	out := e
	if e.Field == "" {
		out.Field = parent
	} else {
		out.Field = parent + "." + e.Field
	}
	return out
}
