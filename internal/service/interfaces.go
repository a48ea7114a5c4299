// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-memo/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/notes_service_mock.go -package=mock

// NotesService defines the client-side contract the note list view relies
// on. It hides the transport and translates transport failures into the
// errors in errors.go.
type NotesService interface {
	// List returns the current note collection, in service order. It never
	// returns a nil slice on success.
	List(ctx context.Context) ([]models.Note, error)

	// Create submits a new note whose body is exactly body. Blank bodies are
	// rejected with [ErrEmptyNote] without contacting the service.
	Create(ctx context.Context, body string) error
}
