package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-memo/internal/adapter"
	"github.com/MKhiriev/go-memo/internal/logger"
	"github.com/MKhiriev/go-memo/internal/validators"
	"github.com/MKhiriev/go-memo/models"
)

type notesService struct {
	adapter   adapter.NotesAdapter
	validator validators.Validator
	logger    *logger.Logger
}

// NewNotesService creates a [NotesService] backed by notesAdapter.
func NewNotesService(notesAdapter adapter.NotesAdapter, logger *logger.Logger) NotesService {
	return &notesService{
		adapter:   notesAdapter,
		validator: validators.NewNoteValidator(),
		logger:    logger,
	}
}

// List implements [NotesService].
func (s *notesService) List(ctx context.Context) ([]models.Note, error) {
	notes, err := s.adapter.ListNotes(ctx)
	if err != nil {
		s.logger.Err(err).Msg("list notes")
		return nil, mapAdapterError(err)
	}
	if notes == nil {
		notes = []models.Note{}
	}

	return notes, nil
}

// Create implements [NotesService]. The guard trims body; the request does
// not.
func (s *notesService) Create(ctx context.Context, body string) error {
	req := models.CreateNoteRequest{Body: body}
	if err := s.validator.Validate(ctx, req, validators.FieldBody); err != nil {
		return fmt.Errorf("%w: %w", ErrEmptyNote, err)
	}

	if err := s.adapter.CreateNote(ctx, req); err != nil {
		s.logger.Err(err).Int("body_len", len(body)).Msg("create note")
		return mapAdapterError(err)
	}

	s.logger.Info().Int("body_len", len(body)).Msg("note created")
	return nil
}
