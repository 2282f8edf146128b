// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package identity

import (
	"os"
	"strings"
)

// EnvProvider reads the injected credential from the environment variable
// Name.
type EnvProvider struct {
	Name string
}

// Credential implements [CredentialProvider].
func (p EnvProvider) Credential() (string, bool) {
	if p.Name == "" {
		return "", false
	}
	v, ok := os.LookupEnv(p.Name)
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return v, true
}

// StaticProvider always yields the same credential. An empty value yields
// nothing.
type StaticProvider string

// Credential implements [CredentialProvider].
func (p StaticProvider) Credential() (string, bool) {
	return string(p), strings.TrimSpace(string(p)) != ""
}
