// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

// ErrEmptyProfile is returned when a profile payload is JSON null.
var ErrEmptyProfile = errors.New("empty profile")

// LoginInfoResponse is the body of GET /user/login_info.
type LoginInfoResponse struct {
	Data *Profile `json:"data"`
}

// TelegramLoginRequest is the body of POST /user/login_telegram. InitData is
// the raw identity credential, forwarded verbatim.
type TelegramLoginRequest struct {
	InitData string `json:"initData"`
}

// TelegramLoginResponse is the body returned by the identity exchange.
//
// Success is a pointer so that a missing flag can be told apart from an
// explicit false; both are treated as a failed login.
type TelegramLoginResponse struct {
	Success *bool    `json:"success"`
	Token   string   `json:"token,omitempty"`
	APIKey  string   `json:"apiKey,omitempty"`
	Key     string   `json:"key,omitempty"`
	User    *Profile `json:"user,omitempty"`
}

// IssuedToken returns the first non-empty token field.
func (r TelegramLoginResponse) IssuedToken() string {
	switch {
	case r.Token != "":
		return r.Token
	case r.APIKey != "":
		return r.APIKey
	default:
		return r.Key
	}
}

// Succeeded reports whether the server explicitly confirmed the login.
func (r TelegramLoginResponse) Succeeded() bool {
	return r.Success != nil && *r.Success
}
