// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package identity

import (
	"net/url"
	"strings"

	"github.com/MKhiriev/go-dream-journal/internal/logger"
)

// credentialParams are the fragment parameters that may carry the
// credential, in lookup order.
var credentialParams = []string{"tgWebAppData", "initData", "init_data", "auth_data"}

type resolver struct {
	provider  CredentialProvider
	launchURL string
	logger    *logger.Logger
}

// NewResolver returns a [Resolver] that prefers provider (may be nil) and
// falls back to the fragment of launchURL.
func NewResolver(provider CredentialProvider, launchURL string, log *logger.Logger) Resolver {
	return &resolver{provider: provider, launchURL: launchURL, logger: log}
}

func (r *resolver) Resolve() (string, bool) {
	if r.provider != nil {
		if cred, ok := r.provider.Credential(); ok {
			r.logger.Debug().Str("source", "provider").Msg("identity credential resolved")
			return cred, true
		}
	}

	_, fragment, found := strings.Cut(r.launchURL, "#")
	if !found {
		r.logger.Debug().Msg("no identity credential available")
		return "", false
	}

	cred, ok := FromFragment(fragment)
	if ok {
		r.logger.Debug().Str("source", "fragment").Msg("identity credential resolved")
	} else {
		r.logger.Debug().Msg("launch fragment carries no identity credential")
	}
	return cred, ok
}

// FromFragment extracts the credential from an address fragment (without the
// leading '#'). It tries, in order:
//  1. a fragment that already is the credential (has hash= and auth_date=),
//     percent-decoded once;
//  2. the first known parameter among tgWebAppData, initData, init_data and
//     auth_data, its value percent-decoded up to twice;
//  3. the whole fragment percent-decoded up to twice, re-checking for the
//     credential markers after each pass.
//
// Undecodable input makes the respective step a non-match.
func FromFragment(fragment string) (string, bool) {
	fragment = strings.TrimPrefix(fragment, "#")
	if fragment == "" {
		return "", false
	}

	if hasCredentialMarkers(fragment) {
		if decoded, err := url.PathUnescape(fragment); err == nil {
			return decoded, true
		}
	}

	if cred, ok := fromParams(fragment); ok {
		return cred, true
	}

	decoded := fragment
	for range 2 {
		next, err := url.PathUnescape(decoded)
		if err != nil {
			return "", false
		}
		if hasCredentialMarkers(next) {
			return next, true
		}
		decoded = next
	}

	return "", false
}

func fromParams(fragment string) (string, bool) {
	params := make(map[string]string)
	for _, pair := range strings.Split(fragment, "&") {
		rawKey, rawValue, _ := strings.Cut(pair, "=")
		key, err := url.PathUnescape(rawKey)
		if err != nil {
			continue
		}
		if _, seen := params[key]; !seen {
			params[key] = rawValue
		}
	}

	for _, name := range credentialParams {
		rawValue, ok := params[name]
		if !ok {
			continue
		}
		if value, ok := decodeTwice(rawValue); ok && value != "" {
			return value, true
		}
	}
	return "", false
}

// decodeTwice percent-decodes s, and once more when the result still looks
// encoded. A failed second pass keeps the first result.
func decodeTwice(s string) (string, bool) {
	once, err := url.PathUnescape(s)
	if err != nil {
		return "", false
	}
	if !strings.Contains(once, "%") {
		return once, true
	}
	twice, err := url.PathUnescape(once)
	if err != nil {
		return once, true
	}
	return twice, true
}

func hasCredentialMarkers(s string) bool {
	return strings.Contains(s, "hash=") && strings.Contains(s, "auth_date=")
}
