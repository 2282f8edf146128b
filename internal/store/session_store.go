// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-dream-journal/internal/logger"
	"github.com/MKhiriev/go-dream-journal/models"
)

// Durable keys of the session state.
const (
	TokenKey   = "X_API_TOKEN"
	ProfileKey = "X_USER_INFO"
)

// SessionStore owns the client's session and cached dream lists.
//
// Reads are served from memory and always return copies. Every mutation is
// written through to the [KeyValueStore]; a failed write is logged and
// otherwise ignored, so the in-memory state stays authoritative for the
// lifetime of the process.
type SessionStore struct {
	kv     KeyValueStore
	logger *logger.Logger

	// writeMu orders collection replacements end to end: memory, snapshot
	// and notifications of one write complete before the next write starts.
	writeMu sync.Mutex

	mu          sync.RWMutex
	token       string
	profile     *models.Profile
	collections map[models.Collection][]models.Dream
	subscribers map[models.Collection][]Subscriber
}

// NewSessionStore returns an empty store writing through to kv. Call
// [SessionStore.Restore] to load previously persisted state.
func NewSessionStore(kv KeyValueStore, log *logger.Logger) *SessionStore {
	return &SessionStore{
		kv:          kv,
		logger:      log,
		collections: make(map[models.Collection][]models.Dream),
		subscribers: make(map[models.Collection][]Subscriber),
	}
}

// Restore loads the token, the profile and every collection snapshot from
// durable storage. Unreadable entries are skipped. Subscribers are not
// notified.
func (s *SessionStore) Restore(ctx context.Context) {
	token := s.read(ctx, TokenKey)

	var profile *models.Profile
	if raw := s.read(ctx, ProfileKey); raw != "" {
		p := new(models.Profile)
		if err := json.Unmarshal([]byte(raw), p); err != nil {
			s.logger.Warn().Err(err).Str("func", "SessionStore.Restore").Msg("cached profile is unreadable")
		} else {
			profile = p
		}
	}

	snapshots := make(map[models.Collection][]models.Dream, len(models.Collections))
	for _, name := range models.Collections {
		snapshots[name] = s.Snapshot(ctx, name)
	}

	s.mu.Lock()
	s.token = token
	s.profile = profile
	for name, items := range snapshots {
		s.collections[name] = items
	}
	s.mu.Unlock()

	s.logger.Debug().
		Str("func", "SessionStore.Restore").
		Bool("has_token", token != "").
		Bool("has_profile", profile != nil).
		Msg("session restored")
}

// Token returns the stored API token.
func (s *SessionStore) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

// SaveToken replaces the stored token. An empty token clears it.
func (s *SessionStore) SaveToken(ctx context.Context, token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	if token == "" {
		s.remove(ctx, TokenKey)
		return
	}
	s.write(ctx, TokenKey, token)
}

// Profile returns a copy of the stored profile.
func (s *SessionStore) Profile() (*models.Profile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile.Clone(), s.profile != nil
}

// SaveProfile replaces the stored profile wholesale. nil clears it.
func (s *SessionStore) SaveProfile(ctx context.Context, profile *models.Profile) {
	profile = profile.Clone()

	s.mu.Lock()
	s.profile = profile
	s.mu.Unlock()

	if profile == nil {
		s.remove(ctx, ProfileKey)
		return
	}

	payload, err := json.Marshal(profile)
	if err != nil {
		s.logger.Err(err).Str("func", "SessionStore.SaveProfile").Msg("failed to encode profile")
		return
	}
	s.write(ctx, ProfileKey, string(payload))
}

// Session returns a copy of the stored token and profile.
func (s *SessionStore) Session() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.Session{Token: s.token, Profile: s.profile.Clone()}
}

// Clear drops the token and the profile.
func (s *SessionStore) Clear(ctx context.Context) {
	s.SaveToken(ctx, "")
	s.SaveProfile(ctx, nil)
}

// Collection returns a deep copy of the named collection. Unknown or never
// written collections are empty.
func (s *SessionStore) Collection(name models.Collection) []models.Dream {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.CloneDreams(s.collections[name])
}

// SetCollection replaces the named collection, persists its snapshot and
// notifies the collection's subscribers in registration order. Concurrent
// calls are applied one at a time, so the last replacement wins in memory,
// in the snapshot and for subscribers alike. Subscribers must not call
// SetCollection themselves.
func (s *SessionStore) SetCollection(ctx context.Context, name models.Collection, items []models.Dream) {
	items = models.CloneDreams(items)

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	s.collections[name] = items
	subs := append([]Subscriber(nil), s.subscribers[name]...)
	s.mu.Unlock()

	payload, err := json.Marshal(items)
	if err != nil {
		s.logger.Err(err).Str("func", "SessionStore.SetCollection").Str("collection", string(name)).Msg("failed to encode snapshot")
	} else {
		s.write(ctx, name.SnapshotKey(), string(payload))
	}

	for _, sub := range subs {
		s.notify(name, sub, models.CloneDreams(items))
	}
}

// SetCollectionJSON is [SessionStore.SetCollection] for untyped input. Anything
// that is not a JSON array becomes an empty collection; array elements that
// are not dream objects are dropped.
func (s *SessionStore) SetCollectionJSON(ctx context.Context, name models.Collection, raw []byte) {
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		s.logger.Debug().Err(err).Str("collection", string(name)).Msg("collection input is not a sequence")
		elems = nil
	}

	items, skipped := models.DecodeDreams(elems)
	for _, err := range skipped {
		s.logger.Warn().Err(err).Str("collection", string(name)).Msg("dropped non-dream element")
	}
	s.SetCollection(ctx, name, items)
}

// Snapshot reads the last durable snapshot of the named collection. A missing
// or unreadable snapshot yields an empty collection.
func (s *SessionStore) Snapshot(ctx context.Context, name models.Collection) []models.Dream {
	raw := s.read(ctx, name.SnapshotKey())
	if raw == "" {
		return []models.Dream{}
	}

	var elems []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &elems); err != nil {
		s.logger.Warn().Err(err).Str("collection", string(name)).Msg("snapshot is unreadable")
		return []models.Dream{}
	}

	items, _ := models.DecodeDreams(elems)
	return items
}

// Subscribe registers sub for replacements of the named collection.
func (s *SessionStore) Subscribe(name models.Collection, sub Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers[name] = append(s.subscribers[name], sub)
}

func (s *SessionStore) notify(name models.Collection, sub Subscriber, items []models.Dream) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error().
				Str("func", "SessionStore.notify").
				Str("collection", string(name)).
				Interface("panic", r).
				Msg("subscriber panicked")
		}
	}()

	if err := sub.OnCollectionChanged(name, items); err != nil {
		s.logger.Err(err).
			Str("func", "SessionStore.notify").
			Str("collection", string(name)).
			Msg("subscriber failed")
	}
}

func (s *SessionStore) read(ctx context.Context, key string) string {
	value, err := s.kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			s.logger.Warn().Err(err).Str("key", key).Msg("durable read failed")
		}
		return ""
	}
	return value
}

func (s *SessionStore) write(ctx context.Context, key, value string) {
	if err := s.kv.Set(ctx, key, value); err != nil {
		s.logger.Warn().Err(fmt.Errorf("write %s: %w", key, err)).Msg("durable write failed, keeping in-memory state")
	}
}

func (s *SessionStore) remove(ctx context.Context, key string) {
	if err := s.kv.Delete(ctx, key); err != nil {
		s.logger.Warn().Err(fmt.Errorf("delete %s: %w", key, err)).Msg("durable delete failed, keeping in-memory state")
	}
}

// SubscriberFunc adapts a plain function to [Subscriber].
type SubscriberFunc func(name models.Collection, items []models.Dream) error

// OnCollectionChanged implements [Subscriber].
func (f SubscriberFunc) OnCollectionChanged(name models.Collection, items []models.Dream) error {
	return f(name, items)
}
