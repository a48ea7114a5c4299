package service

import "errors"

var (
	// ErrEmptyNote is returned by Create for empty or whitespace-only bodies.
	ErrEmptyNote = errors.New("note body is empty")

	// ErrNotesUnavailable means the notes service could not be reached or
	// failed on its side.
	ErrNotesUnavailable = errors.New("notes service unavailable")

	// ErrNoteRejected means the notes service refused the request.
	ErrNoteRejected = errors.New("notes service rejected the request")

	// ErrUnexpectedResponse means the service answered with something that is
	// not a note list.
	ErrUnexpectedResponse = errors.New("unexpected response from notes service")
)
