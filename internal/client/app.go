package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-memo/internal/logger"
)

var ErrNilUI = errors.New("client: ui is nil")

type App struct {
	ui     UI
	logger *logger.Logger
}

func NewApp(ui UI, log *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, ErrNilUI
	}
	if log == nil {
		log = logger.Nop()
	}
	return &App{ui: ui, logger: log}, nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(parent context.Context) error {
	ctx, cancel := context.WithCancel(a.logger.WithContext(parent))
	// requests still running when the view is gone must not outlive it
	defer cancel()

	a.logger.Info().Msg("client started")
	if err := a.ui.Run(ctx); err != nil {
		a.logger.Err(err).Msg("ui stopped with error")
		return fmt.Errorf("run ui: %w", err)
	}

	a.logger.Info().Msg("client stopped")
	return nil
}
