// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// dream journal client services and terminal UI.
//
// All Msg* constants are human-readable notices shown on the status line or
// written into log entries to describe the outcome of an operation. Keeping
// them in one place ensures consistent wording throughout the client.
package app

const (
	// MsgPublicLoadFailed is shown when the global feed could not be fetched
	// and the cached snapshot is displayed instead.
	MsgPublicLoadFailed = "Failed to load public dreams"

	// MsgPersonalLoadFailed is shown when the personal feed could not be
	// fetched and the cached snapshot is displayed instead.
	MsgPersonalLoadFailed = "Failed to load personal dreams"

	// MsgCreateFailed is shown when a new dream was not accepted.
	MsgCreateFailed = "Create failed"

	// MsgDeleteFailed is shown when a dream could not be deleted.
	MsgDeleteFailed = "Delete failed"

	// MsgMissingUsername is shown when an operation needs the profile
	// username but nobody is signed in.
	MsgMissingUsername = "Sign in to manage your dreams"

	// MsgInvalidDream is shown when a draft fails local validation.
	MsgInvalidDream = "Dream is incomplete"

	// MsgCreated is shown after a dream was created.
	MsgCreated = "Dream created"

	// MsgDeleted is shown after a dream was deleted.
	MsgDeleted = "Dream deleted"

	// MsgCopied is shown after a dream body was copied to the clipboard.
	MsgCopied = "Copied to clipboard"

	// MsgCopyFailed is shown when the clipboard is unavailable.
	MsgCopyFailed = "Copy failed"

	// MsgLoggedOut is shown after the session was cleared.
	MsgLoggedOut = "Signed out"

	// MsgAnonymous is shown at startup when no session could be established.
	MsgAnonymous = "Browsing anonymously"

	// MsgServerUnreachable describes a request that never got a response.
	MsgServerUnreachable = "server unreachable"

	// MsgNotAuthorized describes a request rejected for missing credentials.
	MsgNotAuthorized = "not authorized"

	// MsgNotFound describes a request for a resource that does not exist.
	MsgNotFound = "not found"

	// MsgServerError describes a 5xx response.
	MsgServerError = "server error"

	// MsgRejected describes any other rejection.
	MsgRejected = "rejected by server"
)
