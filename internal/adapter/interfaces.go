// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for talking to the remote
// notes service.
//
// The primary abstraction is [NotesAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPNotesAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-memo/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/notes_adapter_mock.go -package=mock

// NotesAdapter defines communication with the notes service.
type NotesAdapter interface {
	// ListNotes fetches the whole note collection in the order the service
	// returns it. An absent, empty, or null response body yields an empty,
	// non-nil slice.
	ListNotes(ctx context.Context) ([]models.Note, error)

	// CreateNote sends req to the service. Only the response status is
	// inspected; the body of a successful response is ignored.
	CreateNote(ctx context.Context, req models.CreateNoteRequest) error
}
