package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-dream-journal/internal/config"
	"github.com/MKhiriev/go-dream-journal/internal/logger"
	"github.com/MKhiriev/go-dream-journal/internal/service"
)

var _ Client = (*App)(nil)

type App struct {
	services *service.ClientServices
	ui       UI
	storage  io.Closer
	workers  config.ClientWorkers

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, storage io.Closer, workers config.ClientWorkers, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client: services and ui are required")
	}

	return &App{
		services: services,
		ui:       ui,
		storage:  storage,
		workers:  workers,
		logger:   logger,
	}, nil
}

// Run starts the refresh job, blocks in the UI and releases the storage on
// the way out.
func (a *App) Run(ctx context.Context) (err error) {
	defer func() {
		if a.storage == nil {
			return
		}
		if closeErr := a.storage.Close(); closeErr != nil {
			a.logger.Err(closeErr).Str("func", "App.Run").Msg("error closing storage")
			err = errors.Join(err, closeErr)
		}
	}()

	a.services.RefreshJob.Start(ctx, a.workers.RefreshInterval)
	defer a.services.RefreshJob.Stop()

	a.logger.Info().Dur("refresh_interval", a.workers.RefreshInterval).Msg("client started")

	if err = a.ui.Run(ctx); err != nil {
		return fmt.Errorf("ui: %w", err)
	}

	a.logger.Info().Msg("client stopped")
	return nil
}
