package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-memo/models"
)

// FieldBody targets the text of a note.
const FieldBody = "body"

// NoteValidator implements the Validator interface for outgoing note
// requests.
type NoteValidator struct {
}

// NewNoteValidator constructs a new NoteValidator and returns it as the
// Validator interface.
func NewNoteValidator() Validator {
	return &NoteValidator{}
}

// Validate accepts models.CreateNoteRequest by value or pointer. With no
// fields given every field is checked.
func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateNoteRequest:
		return v.validateCreateNoteRequest(ctx, value, fields...)
	case *models.CreateNoteRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateCreateNoteRequest(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *NoteValidator) validateCreateNoteRequest(_ context.Context, req models.CreateNoteRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldBody}
	}

	for _, field := range fields {
		switch field {
		case FieldBody:
			// whitespace-only counts as empty, the body itself is sent as typed
			if strings.TrimSpace(req.Body) == "" {
				return ErrEmptyBody
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}
