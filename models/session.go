// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
)

// Session is the authenticated identity context held by the client.
// A zero Session means the client is anonymous.
type Session struct {
	// Token is the opaque API token returned by the identity exchange.
	Token string

	// Profile is the last profile fetched for Token. It may be nil right
	// after an exchange whose profile fetch failed.
	Profile *Profile
}

// IsAuthenticated reports whether the session carries a token.
func (s Session) IsAuthenticated() bool {
	return s.Token != ""
}

// Username returns the profile username or an empty string.
func (s Session) Username() string {
	if s.Profile == nil {
		return ""
	}
	return s.Profile.Username
}

// Profile is the user profile returned by the login endpoints.
//
// Only Username and DisplayName are interpreted by the client; every other
// server-defined field is kept verbatim in Fields so that the profile survives
// a cache round trip unchanged.
type Profile struct {
	Username    string
	DisplayName string
	Fields      map[string]json.RawMessage
}

// Clone returns a deep copy of p.
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}
	c := &Profile{Username: p.Username, DisplayName: p.DisplayName}
	if p.Fields != nil {
		c.Fields = make(map[string]json.RawMessage, len(p.Fields))
		for k, v := range p.Fields {
			c.Fields[k] = bytes.Clone(v)
		}
	}
	return c
}

// Name returns the display name, falling back to the username.
func (p *Profile) Name() string {
	if p == nil {
		return ""
	}
	if p.DisplayName != "" {
		return p.DisplayName
	}
	return p.Username
}

// UnmarshalJSON implements [json.Unmarshaler]. Both "displayName" and
// "display_name" are accepted; a non-empty "displayName" takes precedence.
func (p *Profile) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("decode profile: %w", err)
	}
	if raw == nil {
		return fmt.Errorf("decode profile: %w", ErrEmptyProfile)
	}

	out := Profile{Fields: make(map[string]json.RawMessage)}
	var snakeName string
	for k, v := range raw {
		switch k {
		case "username":
			if err := decodeOptionalString(v, &out.Username); err != nil {
				return fmt.Errorf("decode profile username: %w", err)
			}
		case "displayName":
			if err := decodeOptionalString(v, &out.DisplayName); err != nil {
				return fmt.Errorf("decode profile display name: %w", err)
			}
		case "display_name":
			if err := decodeOptionalString(v, &snakeName); err != nil {
				return fmt.Errorf("decode profile display name: %w", err)
			}
		default:
			out.Fields[k] = v
		}
	}
	// displayName wins over display_name when both are set.
	if out.DisplayName == "" {
		out.DisplayName = snakeName
	}

	*p = out
	return nil
}

// MarshalJSON implements [json.Marshaler].
func (p Profile) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(p.Fields)+2)
	for k, v := range p.Fields {
		out[k] = v
	}
	out["username"] = p.Username
	if p.DisplayName != "" {
		out["displayName"] = p.DisplayName
	}
	return json.Marshal(out)
}

// Equal reports whether two profiles carry the same data.
func (p *Profile) Equal(o *Profile) bool {
	if p == nil || o == nil {
		return p == o
	}
	return p.Username == o.Username &&
		p.DisplayName == o.DisplayName &&
		maps.EqualFunc(p.Fields, o.Fields, func(a, b json.RawMessage) bool { return bytes.Equal(a, b) })
}

func decodeOptionalString(raw json.RawMessage, dst *string) error {
	if bytes.Equal(bytes.TrimSpace(raw), jsonNull) {
		return nil
	}
	return json.Unmarshal(raw, dst)
}

// AuthState is the phase of the authentication flow.
type AuthState int

const (
	// AuthNoSession means no authentication attempt has been made yet.
	AuthNoSession AuthState = iota
	// AuthValidating means a stored token is being checked.
	AuthValidating
	// AuthExchanging means an identity credential is being exchanged.
	AuthExchanging
	// AuthAuthenticated means a token is held.
	AuthAuthenticated
	// AuthAnonymous means no token could be obtained.
	AuthAnonymous
)

func (s AuthState) String() string {
	switch s {
	case AuthNoSession:
		return "no_session"
	case AuthValidating:
		return "validating"
	case AuthExchanging:
		return "exchanging"
	case AuthAuthenticated:
		return "authenticated"
	case AuthAnonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}
