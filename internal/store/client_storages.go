package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-dream-journal/internal/config"
	"github.com/MKhiriev/go-dream-journal/internal/logger"
)

// ClientStorages groups the client-side storage layer into a single value
// that can be passed around the service layer.
type ClientStorages struct {
	// KeyValue is the durable backend selected by configuration.
	KeyValue KeyValueStore

	// Session is the session and collection cache written through to
	// KeyValue.
	Session *SessionStore
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens the backend named by cfg.Backend: for sqlite it connects to
//     cfg.DB.DSN (creating the file when needed) and runs the schema
//     migrations; for redis it connects to cfg.Redis.URL; memory needs no
//     setup.
//  2. Wraps the backend into a [SessionStore] and restores the persisted
//     session and snapshots.
//
// Returns an error if the backend cannot be reached or migrated.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Str("backend", cfg.Backend).Msg("creating new storages...")

	kv, err := newKeyValueStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	session := NewSessionStore(kv, logger)
	session.Restore(ctx)

	return &ClientStorages{
		KeyValue: kv,
		Session:  session,
	}, nil
}

func newKeyValueStore(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (KeyValueStore, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		db, err := NewConnectSQLite(ctx, cfg.DB, logger)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		if err = db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		return NewSQLiteKeyValueStore(db, logger), nil
	case config.BackendRedis:
		kv, err := NewRedisKeyValueStore(ctx, cfg.Redis, logger)
		if err != nil {
			return nil, fmt.Errorf("redis connection error: %w", err)
		}
		return kv, nil
	case config.BackendMemory:
		return NewMemoryKeyValueStore(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}

// Close releases the durable backend.
func (c *ClientStorages) Close() error {
	return c.KeyValue.Close()
}
