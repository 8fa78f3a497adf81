package errors

import (
	"fmt"
	"strings"
)

// EmptyInputError is returned when report generation is attempted on a
// table with no rows. It is fatal and raised before any sheet is built.
type EmptyInputError struct{}

// Error implements the error interface
func (e *EmptyInputError) Error() string {
	return "cannot generate report from empty table"
}

// NewEmptyInputError creates an EmptyInputError
func NewEmptyInputError() *EmptyInputError {
	return &EmptyInputError{}
}

// MissingFieldsError is returned when required canonical fields are
// absent after column mapping. Fields preserves canonical order
// (vendor, amount, date).
type MissingFieldsError struct {
	Fields []string
}

// Error implements the error interface
func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("missing required fields: [%s]", strings.Join(e.Fields, ", "))
}

// NewMissingFieldsError creates a MissingFieldsError for the given fields
func NewMissingFieldsError(fields []string) *MissingFieldsError {
	return &MissingFieldsError{Fields: fields}
}
