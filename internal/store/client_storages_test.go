// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-dream-journal/internal/config"
	"github.com/MKhiriev/go-dream-journal/internal/logger"
	"github.com/MKhiriev/go-dream-journal/models"
)

func TestNewClientStorages_Memory(t *testing.T) {
	s, err := NewClientStorages(context.Background(), config.ClientStorage{Backend: config.BackendMemory}, logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, s.Session)
	assert.NoError(t, s.Close())
}

func TestNewClientStorages_UnknownBackend(t *testing.T) {
	_, err := NewClientStorages(context.Background(), config.ClientStorage{Backend: "bolt"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnknownBackend)
}

func TestNewClientStorages_RedisUnreachable(t *testing.T) {
	srv := miniredis.RunT(t)
	addr := srv.Addr()
	srv.Close()

	_, err := NewClientStorages(context.Background(), config.ClientStorage{
		Backend: config.BackendRedis,
		Redis:   config.ClientRedis{URL: "redis://" + addr},
	}, logger.Nop())
	assert.Error(t, err)
}

// TestNewClientStorages_SQLiteSurvivesRestart verifies that a session written
// through one storage instance is restored by the next one.
func TestNewClientStorages_SQLiteSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	cfg := config.ClientStorage{
		Backend: config.BackendSQLite,
		DB:      config.ClientDB{DSN: filepath.Join(t.TempDir(), "dreams.db")},
	}

	first, err := NewClientStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	first.Session.SaveToken(ctx, "tok")
	first.Session.SaveProfile(ctx, &models.Profile{Username: "ann"})
	first.Session.SetCollection(ctx, models.PersonalCollection, []models.Dream{{ID: "7", Title: "Mine"}})
	require.NoError(t, first.Close())

	second, err := NewClientStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	defer second.Close()

	sess := second.Session.Session()
	assert.Equal(t, "tok", sess.Token)
	assert.Equal(t, "ann", sess.Username())
	assert.Equal(t, []models.Dream{{ID: "7", Title: "Mine"}}, second.Session.Collection(models.PersonalCollection))
}
