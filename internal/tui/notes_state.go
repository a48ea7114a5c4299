// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-memo/internal/app"
	"github.com/MKhiriev/go-memo/models"
)

// Phase is the loading phase of the note collection.
type Phase int

const (
	// PhaseLoading is the phase before the first fetch resolves.
	PhaseLoading Phase = iota
	// PhaseLoaded means notes hold the result of the last successful fetch.
	PhaseLoaded
	// PhaseError means the last fetch failed.
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseLoaded:
		return "loaded"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

// NotesState is the in-memory state of the note list view. It is owned by a
// single view instance and never shared.
//
// notes is replaced wholesale by every successful fetch and is never
// modified locally, so a new note shows up only after the refetch that
// follows its creation.
type NotesState struct {
	notes  []models.Note
	draft  string
	phase  Phase
	err    error
	status string
	failed bool
	cursor int

	// statusSeq changes with every status write so a delayed clear only
	// removes the status it was scheduled for.
	statusSeq uint64

	// submitting covers the whole create-then-refetch sequence.
	submitting bool
}

// NewNotesState returns the state of a freshly displayed view.
func NewNotesState() NotesState {
	return NotesState{
		notes: []models.Note{},
		phase: PhaseLoading,
	}
}

// Notes returns the notes of the last successful fetch.
func (s NotesState) Notes() []models.Note { return s.notes }

// Draft returns the uncommitted input text.
func (s NotesState) Draft() string { return s.draft }

// Phase returns the loading phase.
func (s NotesState) Phase() Phase { return s.phase }

// Err returns the last fetch or create failure, if it is still relevant.
func (s NotesState) Err() error { return s.err }

// Submitting reports whether a create-then-refetch sequence is in flight.
func (s NotesState) Submitting() bool { return s.submitting }

// SetDraft records the current input value.
func (s *NotesState) SetDraft(v string) {
	s.draft = v
}

// BeginSubmit decides whether the current draft may be sent. It returns the
// draft exactly as typed and true when a create request must be issued.
// Blank drafts and drafts typed while another submission is in flight are
// refused without touching the state.
func (s *NotesState) BeginSubmit() (string, bool) {
	if s.submitting || strings.TrimSpace(s.draft) == "" {
		return "", false
	}

	s.submitting = true
	s.setStatus("")
	return s.draft, true
}

// ApplyCreated records the outcome of a create request and reports whether
// the view must refetch. On failure the draft is kept so it can be retried.
func (s *NotesState) ApplyCreated(err error) bool {
	if err != nil {
		s.submitting = false
		s.err = err
		s.setFailure(app.MsgSaveFailed + ": " + humanizeError(err))
		return false
	}

	s.draft = ""
	s.err = nil
	s.setStatus(app.MsgSaved)
	return true
}

// ApplyFetched records the outcome of a fetch-all request. afterCreate marks
// the refetch that ends a submission.
func (s *NotesState) ApplyFetched(notes []models.Note, err error, afterCreate bool) {
	if afterCreate {
		s.submitting = false
	}

	if err != nil {
		s.phase = PhaseError
		s.err = err
		return
	}

	if notes == nil {
		notes = []models.Note{}
	}
	s.notes = notes
	s.phase = PhaseLoaded
	s.err = nil
	s.clampCursor()
}

// Cursor returns the index of the selected note.
func (s NotesState) Cursor() int { return s.cursor }

// MoveCursor shifts the selection by delta, staying inside the list.
func (s *NotesState) MoveCursor(delta int) {
	s.cursor += delta
	s.clampCursor()
}

// Selected returns the note under the cursor.
func (s NotesState) Selected() (models.Note, bool) {
	if s.cursor < 0 || s.cursor >= len(s.notes) {
		return models.Note{}, false
	}
	return s.notes[s.cursor], true
}

// Status returns the transient feedback line and whether it reports a failure.
func (s NotesState) Status() (string, bool) { return s.status, s.failed }

// StatusSeq identifies the current status line.
func (s NotesState) StatusSeq() uint64 { return s.statusSeq }

// ClearStatus removes the status line only if it is still the one
// identified by seq.
func (s *NotesState) ClearStatus(seq uint64) {
	if seq != s.statusSeq {
		return
	}
	s.setStatus("")
}

func (s *NotesState) setStatus(status string) {
	s.status = status
	s.failed = false
	s.statusSeq++
}

func (s *NotesState) setFailure(status string) {
	s.status = status
	s.failed = true
	s.statusSeq++
}

func (s *NotesState) clampCursor() {
	if s.cursor >= len(s.notes) {
		s.cursor = len(s.notes) - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}
