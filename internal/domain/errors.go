package domain

import "errors"

// ErrNotFound is returned when the requested session or unit does not exist.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails a business rule
// (e.g. blank barcode, notes longer than MaxNotesLength, unknown unit).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrInvalidTransition is returned when an event arrives that the current
// phase does not accept. The session is left untouched.
// Handlers should map this to HTTP 409 Conflict.
var ErrInvalidTransition = errors.New("invalid transition")

// ErrIncompleteData is returned when a confirm is attempted while the
// recipient name or address is still missing. The session stays in review.
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrIncompleteData = errors.New("incomplete data")

// ErrSessionClosed is returned for any event delivered to a session that
// has already been closed. A closed session is never resurrected.
var ErrSessionClosed = errors.New("session closed")

// ErrRevisionConflict is returned when an edit names an expected revision
// that no longer matches the session.
// Handlers should map this to HTTP 409 Conflict.
var ErrRevisionConflict = errors.New("revision conflict")

// ErrSubmissionFailed is returned when a completed session could not be
// handed to the submission service. The session is kept so the hand-off
// can be retried.
// Handlers should map this to HTTP 502 Bad Gateway.
var ErrSubmissionFailed = errors.New("submission failed")
