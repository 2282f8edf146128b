// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package identity

//go:generate mockgen -source=interfaces.go -destination=../mock/identity_mock.go -package=mock

// CredentialProvider yields a credential injected by the hosting runtime.
// The value is trusted and used verbatim.
type CredentialProvider interface {
	Credential() (string, bool)
}

// Resolver produces the raw identity credential, or false when none is
// available. It never fails.
type Resolver interface {
	Resolve() (string, bool)
}
