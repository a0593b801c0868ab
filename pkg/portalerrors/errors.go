// Package portalerrors carries the internal error envelope shared by the
// use cases and the HTTP boundary.
package portalerrors

import "fmt"

// InternalError records where an error happened and a message that is safe
// to show to a user.
type InternalError struct {
	File          string
	Call          string
	Function      string
	Message       string
	OriginalError error
}

// CreatePortalError returns an empty envelope tagged with the owning file or component.
func CreatePortalError(file string) InternalError {
	return InternalError{File: file}
}

func (e InternalError) Error() string {
	if e.OriginalError == nil {
		return fmt.Sprintf("%s - %s - %s: %s", e.File, e.Call, e.Function, e.Message)
	}

	return fmt.Sprintf("%s - %s - %s: %v", e.File, e.Call, e.Function, e.OriginalError)
}

func (e InternalError) Unwrap() error {
	return e.OriginalError
}

// Wrap fills in the call site and the underlying error.
func (e *InternalError) Wrap(call, function string, err error) error {
	e.Call = call
	e.Function = function
	e.OriginalError = err

	return e
}

// FriendlyMessage -.
func (e InternalError) FriendlyMessage() string {
	return e.Message
}
