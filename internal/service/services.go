package service

import (
	"errors"

	"github.com/MKhiriev/go-memo/internal/adapter"
	"github.com/MKhiriev/go-memo/internal/logger"
)

var errNilAdapter = errors.New("notes adapter is nil")

// ClientServices groups the services the client UI works with.
type ClientServices struct {
	NotesService NotesService
}

// NewClientServices wires every client service on top of notesAdapter.
func NewClientServices(notesAdapter adapter.NotesAdapter, logger *logger.Logger) (*ClientServices, error) {
	if notesAdapter == nil {
		return nil, errNilAdapter
	}

	return &ClientServices{
		NotesService: NewNotesService(notesAdapter, logger.GetChildLogger()),
	}, nil
}
