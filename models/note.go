// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the data types exchanged between the memo client and
// the remote notes service.
package models

import (
	"bytes"
	"encoding/json"
	"errors"
)

// ErrInvalidNoteID is returned when a note "id" is neither a JSON number nor a
// JSON string.
var ErrInvalidNoteID = errors.New("invalid note id")

// NoteID is the opaque identifier the notes service assigns to a note.
//
// The client never interprets it. The service may send it as a number or as a
// string, both are kept in their textual form and used only as a stable key
// for rendering.
type NoteID string

// UnmarshalJSON accepts either a JSON number or a JSON string.
func (id *NoteID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = NoteID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return ErrInvalidNoteID
	}
	*id = NoteID(n.String())
	return nil
}

// String returns the textual form of the id.
func (id NoteID) String() string {
	return string(id)
}

// Note is a single stored note.
type Note struct {
	// ID is assigned by the service and is never set by the client.
	ID NoteID `json:"id"`

	// Body is the note text as the user typed it.
	Body string `json:"body"`
}

// CreateNoteRequest is the payload of POST <notes-endpoint>.
//
// Body is sent exactly as typed, surrounding whitespace included.
type CreateNoteRequest struct {
	Body string `json:"body"`
}
