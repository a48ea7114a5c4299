package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-memo/internal/logger"
	"github.com/MKhiriev/go-memo/internal/service"
	"github.com/MKhiriev/go-memo/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrNilServices = errors.New("tui: services are nil")

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if services == nil || services.NotesService == nil {
		return nil, ErrNilServices
	}
	if log == nil {
		log = logger.Nop()
	}
	return &TUI{services: services, buildInfo: buildInfo, logger: log}, nil
}

// Run shows the note list until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newNotesModel(ctx, t.services.NotesService, t.buildInfo)

	t.logger.Info().Msg("starting note list view")
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			t.logger.Info().Err(ctx.Err()).Msg("note list view closed by context")
			return nil
		}
		return err
	}

	t.logger.Info().Msg("note list view closed")
	return nil
}
