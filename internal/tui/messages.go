package tui

import (
	"github.com/MKhiriev/go-memo/models"
)

type notesLoadedMsg struct {
	notes       []models.Note
	err         error
	afterCreate bool
}

type noteCreatedMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct {
	seq uint64
}
