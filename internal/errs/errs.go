// Package errs defines the error taxonomy shared by the checklist engine,
// its storage layer and the RPC handlers.
//
// Callers detect a category with errors.As (or the Is* helpers) and never by
// matching message text.
package errs

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError reports malformed caller input. It is always raised before
// any mutation takes place.
type ValidationError struct {
	// Field names the input that failed (e.g. "items", "num_outfits").
	Field string

	// Tokens holds the offending bulk-add tokens, if any.
	Tokens []string

	// Message is the user-facing explanation.
	Message string
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	if e.Field != "" {
		b.WriteString(e.Field)
		b.WriteString(": ")
	}
	b.WriteString(e.Message)
	if len(e.Tokens) > 0 {
		fmt.Fprintf(&b, " (%s)", strings.Join(quoteAll(e.Tokens), ", "))
	}
	return b.String()
}

// NotFoundError reports an unknown id, or one the caller cannot see.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

// PermissionError reports a forbidden mutation.
type PermissionError struct {
	Action string
	Reason string
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("permission denied: cannot %s: %s", e.Action, e.Reason)
}

// PersistenceError wraps a storage-layer failure.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Invalid builds a ValidationError for a single field.
func Invalid(field, message string, tokens ...string) error {
	return &ValidationError{Field: field, Message: message, Tokens: tokens}
}

// NotFound builds a NotFoundError.
func NotFound(kind, id string) error {
	return &NotFoundError{Kind: kind, ID: id}
}

// Forbidden builds a PermissionError.
func Forbidden(action, reason string) error {
	return &PermissionError{Action: action, Reason: reason}
}

// Persistence wraps err as a PersistenceError. A nil err stays nil, and errors
// that already belong to the taxonomy pass through untouched.
func Persistence(op string, err error) error {
	if err == nil {
		return nil
	}
	if IsValidation(err) || IsNotFound(err) || IsPermission(err) {
		return err
	}
	var pe *PersistenceError
	if errors.As(err, &pe) {
		return err
	}
	return &PersistenceError{Op: op, Err: err}
}

// IsValidation reports whether err wraps a ValidationError.
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsNotFound reports whether err wraps a NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsPermission reports whether err wraps a PermissionError.
func IsPermission(err error) bool {
	var target *PermissionError
	return errors.As(err, &target)
}

// IsPersistence reports whether err wraps a PersistenceError.
func IsPersistence(err error) bool {
	var target *PersistenceError
	return errors.As(err, &target)
}

func quoteAll(tokens []string) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = fmt.Sprintf("%q", t)
	}
	return out
}
