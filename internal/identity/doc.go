// Package identity locates the raw Telegram identity credential (initData)
// that the client exchanges for an API token.
//
// Two sources are consulted in order: a [CredentialProvider] through which a
// hosting runtime injects the credential, then the fragment of the address
// the client was launched with.
package identity
