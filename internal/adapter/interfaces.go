// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the dream journal API.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) guarded by a circuit breaker.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401). [IsNoResponse] separates a server
// that answered from one that could not be reached.
//
// Inbound dream lists arrive in several envelope shapes; [Normalize] turns any
// of them into a flat sequence of raw elements.
package adapter

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-dream-journal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the dream
// journal API. Implementations are stateless with respect to the session:
// credentials are passed in by the caller on every request.
type ServerAdapter interface {
	// LoginInfo validates token and returns the profile bound to it. A
	// rejection by the server is returned as a status error; a 2xx response
	// without a profile yields [ErrMalformedResponse].
	LoginInfo(ctx context.Context, token string) (*models.Profile, error)

	// LoginTelegram exchanges the raw identity credential for an API token.
	// The decoded response is returned as is; judging the success flag is
	// up to the caller.
	LoginTelegram(ctx context.Context, initData string) (models.TelegramLoginResponse, error)

	// GetPublicDreams fetches the global feed and returns its normalized
	// elements.
	GetPublicDreams(ctx context.Context) ([]json.RawMessage, error)

	// GetPersonalDreams fetches the dreams of username, or of the token owner
	// when username is empty. A non-nil filter switches the request to POST.
	GetPersonalDreams(ctx context.Context, username, token string, filter *models.DreamFilter) ([]json.RawMessage, error)

	// CreateDream posts a new dream on behalf of username and returns the
	// response body, or nil when the body is empty or not JSON.
	CreateDream(ctx context.Context, username string, dream models.Dream) (json.RawMessage, error)

	// DeleteDream removes the dream with the given id.
	DeleteDream(ctx context.Context, id models.DreamID) error
}
