// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-dream-journal/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// KeyValueStore is the durable string storage behind [SessionStore].
//
// Get returns [ErrKeyNotFound] for a missing key. Delete of a missing key is
// not an error.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Subscriber observes replacements of one cached collection.
//
// OnCollectionChanged receives its own copy of the new items. A returned
// error or a panic is logged by the store and never reaches the writer.
type Subscriber interface {
	OnCollectionChanged(name models.Collection, items []models.Dream) error
}
