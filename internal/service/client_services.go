package service

import (
	"github.com/MKhiriev/go-dream-journal/internal/adapter"
	"github.com/MKhiriev/go-dream-journal/internal/config"
	"github.com/MKhiriev/go-dream-journal/internal/identity"
	"github.com/MKhiriev/go-dream-journal/internal/logger"
	"github.com/MKhiriev/go-dream-journal/internal/store"
)

var _ SessionStorage = (*store.SessionStore)(nil)

type ClientServices struct {
	AuthService  ClientAuthService
	DreamService ClientDreamService
	ViewService  ClientViewService
	RefreshJob   ClientRefreshJob
}

func NewClientServices(
	cfg config.ClientApp,
	session SessionStorage,
	serverAdapter adapter.ServerAdapter,
	resolver identity.Resolver,
	notifier Notifier,
	loading LoadingIndicator,
	logger *logger.Logger,
) *ClientServices {
	if notifier == nil {
		notifier = NewLogNotifier(logger)
	}
	if loading == nil {
		loading = NopLoadingIndicator
	}

	authSvc := NewClientAuthService(session, serverAdapter, resolver, logger)
	dreamSvc := NewClientDreamService(session, serverAdapter, notifier, logger)
	viewSvc := NewClientViewService(dreamSvc, loading, cfg.FreshnessTTL, logger)

	return &ClientServices{
		AuthService:  authSvc,
		DreamService: dreamSvc,
		ViewService:  viewSvc,
		RefreshJob:   NewClientRefreshJob(viewSvc),
	}
}
