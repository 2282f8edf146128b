// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-dream-journal/internal/adapter"
	"github.com/MKhiriev/go-dream-journal/internal/app"
)

// noticeFor turns a failed operation into a status-line message: the
// operation's notice followed by a short reason when one is known.
func noticeFor(notice string, err error) string {
	reason := reasonFor(err)
	if reason == "" {
		return notice
	}
	return notice + ": " + reason
}

func reasonFor(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingUsername):
		return app.MsgMissingUsername
	case errors.Is(err, ErrInvalidDream):
		return app.MsgInvalidDream
	case adapter.IsNoResponse(err):
		return app.MsgServerUnreachable
	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrForbidden):
		return app.MsgNotAuthorized
	case errors.Is(err, adapter.ErrNotFound):
		return app.MsgNotFound
	case errors.Is(err, adapter.ErrInternalServerError), errors.Is(err, adapter.ErrBadGateway):
		return app.MsgServerError
	case errors.Is(err, adapter.ErrBadRequest), errors.Is(err, adapter.ErrConflict),
		errors.Is(err, adapter.ErrUnexpectedStatus), errors.Is(err, adapter.ErrMalformedResponse):
		return app.MsgRejected
	default:
		return ""
	}
}
