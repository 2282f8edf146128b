// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-dream-journal/internal/adapter"
	"github.com/MKhiriev/go-dream-journal/internal/identity"
	"github.com/MKhiriev/go-dream-journal/internal/logger"
	"github.com/MKhiriev/go-dream-journal/models"
)

type clientAuthService struct {
	session  SessionStorage
	adapter  adapter.ServerAdapter
	resolver identity.Resolver

	// flow serializes EnsureAuth calls.
	flow sync.Mutex

	mu    sync.RWMutex
	state models.AuthState

	logger *logger.Logger
}

func NewClientAuthService(session SessionStorage, serverAdapter adapter.ServerAdapter, resolver identity.Resolver, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		session:  session,
		adapter:  serverAdapter,
		resolver: resolver,
		state:    models.AuthNoSession,
		logger:   logger,
	}
}

func (a *clientAuthService) EnsureAuth(ctx context.Context) (models.Session, bool) {
	a.flow.Lock()
	defer a.flow.Unlock()

	// 1: a stored token is validated first
	if token, ok := a.session.Token(); ok {
		if session, valid := a.validate(ctx, token); valid {
			return session, true
		}
	}

	// 2: otherwise exchange an identity credential for a new token
	credential, ok := a.resolver.Resolve()
	if !ok {
		a.logger.Info().Str("func", "clientAuthService.EnsureAuth").Msg("no identity credential, continuing anonymously")
		a.setState(models.AuthAnonymous)
		return models.Session{}, false
	}

	return a.exchange(ctx, credential)
}

// validate checks token against the server. A rejected token is cleared
// together with the profile; an unreachable server keeps the session as is.
func (a *clientAuthService) validate(ctx context.Context, token string) (models.Session, bool) {
	a.setState(models.AuthValidating)

	profile, err := a.adapter.LoginInfo(ctx, token)
	switch {
	case err == nil:
		a.session.SaveProfile(ctx, profile)
		a.setState(models.AuthAuthenticated)
		return a.session.Session(), true
	case adapter.IsNoResponse(err):
		a.logger.Warn().Err(err).Str("func", "clientAuthService.validate").Msg("token not validated, keeping cached session")
		a.setState(models.AuthAuthenticated)
		return a.session.Session(), true
	default:
		a.logger.Info().Err(err).Str("func", "clientAuthService.validate").Msg("stored token rejected, clearing session")
		a.session.Clear(ctx)
		return models.Session{}, false
	}
}

func (a *clientAuthService) exchange(ctx context.Context, credential string) (models.Session, bool) {
	a.setState(models.AuthExchanging)

	resp, err := a.adapter.LoginTelegram(ctx, credential)
	if err != nil {
		a.logger.Warn().Err(err).Str("func", "clientAuthService.exchange").Msg("identity exchange failed")
		a.setState(models.AuthAnonymous)
		return models.Session{}, false
	}

	token := resp.IssuedToken()
	if !resp.Succeeded() || token == "" {
		a.logger.Warn().
			Str("func", "clientAuthService.exchange").
			Bool("success", resp.Succeeded()).
			Bool("has_token", token != "").
			Msg("identity exchange refused")
		a.setState(models.AuthAnonymous)
		return models.Session{}, false
	}

	a.session.SaveToken(ctx, token)

	// 3: populate the profile when the exchange did not carry one
	profile := resp.User
	if profile == nil {
		info, infoErr := a.adapter.LoginInfo(ctx, token)
		if infoErr != nil {
			a.logger.Warn().Err(infoErr).Str("func", "clientAuthService.exchange").Msg("profile fetch after exchange failed")
		}
		profile = info
	}
	if profile != nil {
		a.session.SaveProfile(ctx, profile)
	}

	a.setState(models.AuthAuthenticated)
	return a.session.Session(), true
}

func (a *clientAuthService) Logout(ctx context.Context) {
	a.flow.Lock()
	defer a.flow.Unlock()

	a.session.Clear(ctx)
	a.setState(models.AuthAnonymous)
	a.logger.Info().Str("func", "clientAuthService.Logout").Msg("session cleared")
}

func (a *clientAuthService) State() models.AuthState {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.state
}

func (a *clientAuthService) Session() models.Session {
	return a.session.Session()
}

func (a *clientAuthService) setState(state models.AuthState) {
	a.mu.Lock()
	a.state = state
	a.mu.Unlock()
}
