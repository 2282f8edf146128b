// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end of the dream journal client.
//
// It renders the cached collections, re-renders whenever the session store
// replaces one of them, and turns navigation and key presses into calls on
// the client services.
package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-dream-journal/internal/logger"
	"github.com/MKhiriev/go-dream-journal/internal/service"
	"github.com/MKhiriev/go-dream-journal/internal/store"
	"github.com/MKhiriev/go-dream-journal/models"
)

// CollectionSource exposes the cached collections and their change feed.
// It is satisfied by *store.SessionStore.
type CollectionSource interface {
	Collection(name models.Collection) []models.Dream
	Subscribe(name models.Collection, sub store.Subscriber)
}

var _ CollectionSource = (*store.SessionStore)(nil)

type TUI struct {
	services  *service.ClientServices
	source    CollectionSource
	events    *Events
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

// New builds the UI and subscribes it to every collection of source. events
// must be the same bridge the services were built with.
func New(services *service.ClientServices, source CollectionSource, events *Events, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || source == nil || events == nil {
		return nil, errors.New("tui: services, source and events are required")
	}

	for _, name := range models.Collections {
		source.Subscribe(name, store.SubscriberFunc(func(name models.Collection, items []models.Dream) error {
			events.send(collectionChangedMsg{name: name, items: items})
			return nil
		}))
	}

	return &TUI{
		services:  services,
		source:    source,
		events:    events,
		buildInfo: buildInfo,
		logger:    logger,
	}, nil
}

// Run shows the main screen until the user quits or ctx is done.
func (t *TUI) Run(ctx context.Context) error {
	model := newMainModel(ctx, t.services, t.source, t.buildInfo)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	t.events.attach(p.Send)
	defer t.events.detach()

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
