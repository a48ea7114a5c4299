// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-memo/internal/app"
	"github.com/MKhiriev/go-memo/internal/service"
	"github.com/MKhiriev/go-memo/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const draftCharLimit = 4096

var writeClipboard = clipboard.WriteAll

type notesModel struct {
	ctx       context.Context
	svc       service.NotesService
	buildInfo models.AppBuildInfo

	state NotesState
	input textinput.Model

	showBuildInfo bool
}

func newNotesModel(ctx context.Context, svc service.NotesService, buildInfo models.AppBuildInfo) notesModel {
	input := textinput.New()
	input.Placeholder = "Write a note and press enter"
	input.CharLimit = draftCharLimit
	input.Prompt = "> "
	input.Focus()

	return notesModel{
		ctx:       ctx,
		svc:       svc,
		buildInfo: buildInfo,
		state:     NewNotesState(),
		input:     input,
	}
}

func (m notesModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.cmdLoadNotes(false))
}

func (m notesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 8 {
			m.input.Width = msg.Width - 8
		}
		return m, nil

	case notesLoadedMsg:
		m.state.ApplyFetched(msg.notes, msg.err, msg.afterCreate)
		if msg.afterCreate {
			return m, cmdClearStatus(m.state.StatusSeq())
		}
		return m, nil

	case noteCreatedMsg:
		if !m.state.ApplyCreated(msg.err) {
			return m, nil
		}
		m.input.Reset()
		return m, m.cmdLoadNotes(true)

	case copiedMsg:
		if msg.err != nil {
			m.state.setFailure(app.MsgCopyFailed + ": " + msg.err.Error())
		} else {
			m.state.setStatus(app.MsgCopied)
		}
		return m, cmdClearStatus(m.state.StatusSeq())

	case clearStatusMsg:
		m.state.ClearStatus(msg.seq)
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m notesModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		return m, tea.Quit
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.back) || key.Matches(msg, keys.info) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.back):
		return m, tea.Quit
	case key.Matches(msg, keys.info):
		m.showBuildInfo = true
		return m, nil
	case key.Matches(msg, keys.submit):
		body, ok := m.state.BeginSubmit()
		if !ok {
			return m, nil
		}
		return m, m.cmdCreateNote(body)
	case key.Matches(msg, keys.refresh):
		// the refetch that ends a submission is the one that counts
		if m.state.Submitting() {
			return m, nil
		}
		return m, m.cmdLoadNotes(false)
	case key.Matches(msg, keys.up):
		m.state.MoveCursor(-1)
		return m, nil
	case key.Matches(msg, keys.down):
		m.state.MoveCursor(1)
		return m, nil
	case key.Matches(msg, keys.copy):
		note, ok := m.state.Selected()
		if !ok {
			m.state.setStatus(app.MsgNothingToCopy)
			return m, cmdClearStatus(m.state.StatusSeq())
		}
		return m, cmdCopyToClipboard(note.Body)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.state.SetDraft(m.input.Value())
	return m, cmd
}

func (m notesModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}

	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.state.Submitting() {
		b.WriteString(helpStyle.Render("Saving..."))
	} else {
		b.WriteString(helpStyle.Render("Press enter to save"))
	}
	b.WriteString("\n")

	if line := m.statusLine(); line != "" {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.renderNotes())

	hotKeys := helpLine(keys.submit, keys.refresh, keys.up, keys.down, keys.copy, keys.info, keys.back)
	return renderPage("MEMO APP", b.String(), hotKeys)
}

func (m notesModel) statusLine() string {
	s := m.state
	switch {
	case s.phase == PhaseError && s.err != nil:
		return errorStyle.Render("Error: " + humanizeError(s.err))
	case s.status != "" && s.failed:
		return errorStyle.Render(s.status)
	case s.status != "":
		return statusStyle.Render(s.status)
	}
	return ""
}

func (m notesModel) renderNotes() string {
	s := m.state
	if s.phase == PhaseLoading {
		return app.MsgLoading
	}
	if len(s.notes) == 0 {
		if s.phase == PhaseError {
			return ""
		}
		return app.MsgNoNotes
	}

	lines := make([]string, 0, len(s.notes))
	for i, note := range s.notes {
		if i == s.cursor {
			lines = append(lines, selectedStyle.Render("› "+indentContinuation(note.Body, "  ")))
			continue
		}
		lines = append(lines, "  "+indentContinuation(note.Body, "  "))
	}
	return strings.Join(lines, "\n")
}

func (m notesModel) cmdLoadNotes(afterCreate bool) tea.Cmd {
	ctx := m.ctx
	svc := m.svc
	return func() tea.Msg {
		notes, err := svc.List(ctx)
		return notesLoadedMsg{notes: notes, err: err, afterCreate: afterCreate}
	}
}

func (m notesModel) cmdCreateNote(body string) tea.Cmd {
	ctx := m.ctx
	svc := m.svc
	return func() tea.Msg {
		err := svc.Create(ctx, body)
		return noteCreatedMsg{err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus(seq uint64) tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}
