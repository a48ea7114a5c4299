package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-memo/internal/config"
	"github.com/MKhiriev/go-memo/internal/logger"
	"github.com/MKhiriev/go-memo/internal/utils"
	"github.com/MKhiriev/go-memo/models"
)

// RequestIDHeader carries the per-request ID attached to every call.
const RequestIDHeader = "X-Request-ID"

type httpNotesAdapter struct {
	client   *utils.HTTPClient
	notesURL string

	logger *logger.Logger
}

// NewHTTPNotesAdapter constructs an HTTP/REST implementation of
// [NotesAdapter] talking to the single notes collection URL in
// adapterCfg.NotesURL. Every request is bounded by adapterCfg.RequestTimeout
// and stamped with a UUID in the X-Request-ID header.
//
// Returns an error if the URL is empty, is not http or https, or has no host.
func NewHTTPNotesAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (NotesAdapter, error) {
	notesURL, err := normalizeNotesURL(adapterCfg.NotesURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter notes url: %w", err)
	}

	client := utils.NewHTTPClient().WithRequestID(RequestIDHeader, utils.NewUUIDGenerator())
	client.
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &httpNotesAdapter{client: client, notesURL: notesURL, logger: logger}, nil
}

func normalizeNotesURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("address must use http or https")
	}
	if u.Host == "" {
		return "", fmt.Errorf("address must include a host")
	}

	return u.String(), nil
}

// ListNotes implements [NotesAdapter]. It sends GET <notes-url> and decodes
// the JSON array of notes.
func (h *httpNotesAdapter) ListNotes(ctx context.Context) ([]models.Note, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(h.notesURL)
	if err != nil {
		h.logger.Err(err).Str("url", h.notesURL).Msg("list notes request failed")
		return nil, fmt.Errorf("list notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Err(err).Int("status", resp.StatusCode()).Msg("list notes rejected")
		return nil, err
	}

	notes, err := decodeNotes(resp.Body())
	if err != nil {
		h.logger.Err(err).Msg("decode notes")
		return nil, err
	}

	h.logger.Debug().
		Str("request_id", resp.Request.Header.Get(RequestIDHeader)).
		Int("count", len(notes)).
		Msg("notes listed")
	return notes, nil
}

// CreateNote implements [NotesAdapter]. It sends POST <notes-url> with req
// as the JSON body.
func (h *httpNotesAdapter) CreateNote(ctx context.Context, req models.CreateNoteRequest) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(h.notesURL)
	if err != nil {
		h.logger.Err(err).Str("url", h.notesURL).Msg("create note request failed")
		return fmt.Errorf("create note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Err(err).Int("status", resp.StatusCode()).Msg("create note rejected")
		return err
	}

	h.logger.Debug().
		Str("request_id", resp.Request.Header.Get(RequestIDHeader)).
		Int("status", resp.StatusCode()).
		Msg("note created")
	return nil
}

// decodeNotes treats an empty or null body as an empty collection.
func decodeNotes(body []byte) ([]models.Note, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return []models.Note{}, nil
	}

	var notes []models.Note
	if err := json.Unmarshal(body, &notes); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if notes == nil {
		notes = []models.Note{}
	}

	return notes, nil
}
