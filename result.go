package schemavalidator

import (
	"github.com/mitchellh/mapstructure"
)

// Result contains the outcome of validating a value against a schema.
type Result struct {
	// Valid is true if no errors were found.
	Valid bool `json:"valid"`

	// Errors contains all validation errors in traversal order.
	Errors []ValidationError `json:"errors,omitempty"`

	// Data is the cleaned output: validated values with transforms and
	// defaults applied. It is non-nil if and only if Valid is true; an
	// invalid result never carries a partially-built object.
	Data map[string]any `json:"data,omitempty"`
}

// NewResult creates an empty, valid result.
func NewResult() *Result {
	return &Result{Valid: true}
}

// AddError appends a validation error and marks the result invalid.
func (r *Result) AddError(err ValidationError) {
	r.Errors = append(r.Errors, err)
	r.Valid = false
	r.Data = nil
}

// AddErrors appends multiple validation errors.
func (r *Result) AddErrors(errs []ValidationError) {
	if len(errs) == 0 {
		return
	}
	r.Errors = append(r.Errors, errs...)
	r.Valid = false
	r.Data = nil
}

// HasErrors returns true if any errors were recorded.
func (r *Result) HasErrors() bool {
	return len(r.Errors) > 0
}

// ErrorCount returns the number of recorded errors.
func (r *Result) ErrorCount() int {
	return len(r.Errors)
}

// Fields returns the distinct field paths that have errors, in first-seen order.
func (r *Result) Fields() []string {
	var fields []string
	seen := make(map[string]bool, len(r.Errors))
	for _, e := range r.Errors {
		if !seen[e.Field] {
			fields = append(fields, e.Field)
			seen[e.Field] = true
		}
	}
	return fields
}

// ByField returns all errors recorded for the given field path.
func (r *Result) ByField(field string) []ValidationError {
	var errs []ValidationError
	for _, e := range r.Errors {
		if e.Field == field {
			errs = append(errs, e)
		}
	}
	return errs
}

// Messages returns the error messages in traversal order.
func (r *Result) Messages() []string {
	if len(r.Errors) == 0 {
		return nil
	}
	msgs := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		msgs[i] = e.Message
	}
	return msgs
}

// Decode maps the cleaned Data onto target, which must be a pointer to a
// struct or map. It returns ErrInvalidResult if the result is not valid.
func (r *Result) Decode(target any) error {
	if !r.Valid || r.Data == nil {
		return ErrInvalidResult
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "schema",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(r.Data)
}
