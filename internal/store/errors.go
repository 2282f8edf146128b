package store

import "errors"

// Sentinel errors returned by the key-value backends. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrKeyNotFound is returned by [KeyValueStore.Get] when nothing is stored
	// under the requested key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrUnknownBackend is returned by [NewClientStorages] when the configured
	// backend name is not one of sqlite, redis or memory.
	ErrUnknownBackend = errors.New("unknown storage backend")
)

// Low-level database operation errors. These are returned (or wrapped) by the
// sqlite backend when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a statement against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")
)
