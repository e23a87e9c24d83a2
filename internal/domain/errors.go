package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain operations
var (
	// ErrAuthFailed indicates the service rejected the supplied credentials
	ErrAuthFailed = errors.New("authentication failed")

	// ErrValidation indicates the service rejected the submitted fields
	ErrValidation = errors.New("request rejected by server validation")

	// ErrNotFound indicates the requested id could not be resolved,
	// remotely or in a local cache
	ErrNotFound = errors.New("not found")

	// ErrNotAuthenticated indicates a mutating operation was attempted
	// with no logged-in user
	ErrNotAuthenticated = errors.New("no user is logged in")

	// ErrAlreadyLoggedIn indicates a login attempt while a session user is set
	ErrAlreadyLoggedIn = errors.New("a user is already logged in")

	// ErrIndexOutOfRange indicates a caller-supplied index outside the
	// current bounds of a cached list
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrNoChanges indicates an edit call with nothing to change
	ErrNoChanges = errors.New("nothing to edit")

	// ErrEmptyCollection indicates a positional access into an empty cached list
	ErrEmptyCollection = errors.New("collection is empty")

	// ErrInvalidKind indicates an unrecognized entity kind
	ErrInvalidKind = errors.New("invalid entity kind")
)

// RemoteError wraps a transport or service failure from the catalog client.
// The local cache is left as it was before the failed call.
type RemoteError struct {
	Op     string // Remote operation, e.g. "addSong"
	Status int    // HTTP status if one was received, else 0
	Err    error  // Underlying cause
}

func (e *RemoteError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("catalog %s: status %d: %v", e.Op, e.Status, e.Err)
	}
	return fmt.Sprintf("catalog %s: %v", e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error { return e.Err }

// ConversionError indicates a remote record could not be mapped into a
// domain entity. Callers do not suppress it; it propagates.
type ConversionError struct {
	Kind   Kind   // Target entity kind
	Reason string // What was malformed
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("convert %s record: %s", e.Kind, e.Reason)
}

func indexError(index, length int) error {
	return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, index, length)
}
