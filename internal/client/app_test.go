package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-dream-journal/internal/config"
	"github.com/MKhiriev/go-dream-journal/internal/logger"
	"github.com/MKhiriev/go-dream-journal/internal/mock"
	"github.com/MKhiriev/go-dream-journal/internal/service"
)

type uiFunc func(ctx context.Context) error

func (f uiFunc) Run(ctx context.Context) error { return f(ctx) }

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func TestNewApp_RequiresDependencies(t *testing.T) {
	_, err := NewApp(nil, uiFunc(func(context.Context) error { return nil }), nil, config.ClientWorkers{}, logger.Nop())
	assert.Error(t, err)

	_, err = NewApp(&service.ClientServices{}, nil, nil, config.ClientWorkers{}, logger.Nop())
	assert.Error(t, err)
}

func TestApp_RunLifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	job := mock.NewMockClientRefreshJob(ctrl)

	var steps []string
	gomock.InOrder(
		job.EXPECT().Start(gomock.Any(), time.Minute).Do(func(context.Context, time.Duration) { steps = append(steps, "start") }),
		job.EXPECT().Stop().Do(func() { steps = append(steps, "stop") }),
	)

	ui := uiFunc(func(context.Context) error {
		steps = append(steps, "ui")
		return nil
	})
	storage := closerFunc(func() error {
		steps = append(steps, "close")
		return nil
	})

	app, err := NewApp(&service.ClientServices{RefreshJob: job}, ui, storage, config.ClientWorkers{RefreshInterval: time.Minute}, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, []string{"start", "ui", "stop", "close"}, steps)
}

func TestApp_RunReportsUIAndCloseErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	job := mock.NewMockClientRefreshJob(ctrl)
	job.EXPECT().Start(gomock.Any(), gomock.Any())
	job.EXPECT().Stop()

	uiErr := errors.New("terminal gone")
	closeErr := errors.New("close failed")

	app, err := NewApp(
		&service.ClientServices{RefreshJob: job},
		uiFunc(func(context.Context) error { return uiErr }),
		closerFunc(func() error { return closeErr }),
		config.ClientWorkers{},
		logger.Nop(),
	)
	require.NoError(t, err)

	err = app.Run(context.Background())
	assert.ErrorIs(t, err, uiErr)
	assert.ErrorIs(t, err, closeErr)
}
