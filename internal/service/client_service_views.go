// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-dream-journal/internal/logger"
	"github.com/MKhiriev/go-dream-journal/models"
)

type clientViewService struct {
	dreams  ClientDreamService
	loading LoadingIndicator

	// records maps a view to the time its data was last loaded. An entry
	// that expired is as good as none.
	records *cache.Cache

	mu       sync.Mutex
	inFlight map[models.View]struct{}

	logger *logger.Logger
}

// NewClientViewService builds the freshness coordinator. A ttl of zero or less
// keeps every record forever, so a view is loaded once and afterwards only on
// an explicit refresh.
func NewClientViewService(dreams ClientDreamService, loading LoadingIndicator, ttl time.Duration, logger *logger.Logger) ClientViewService {
	expiration, cleanup := ttl, ttl
	if ttl <= 0 {
		expiration, cleanup = cache.NoExpiration, 0
	}

	return &clientViewService{
		dreams:   dreams,
		loading:  loading,
		records:  cache.New(expiration, cleanup),
		inFlight: make(map[models.View]struct{}),
		logger:   logger,
	}
}

func (v *clientViewService) EnsureViewData(ctx context.Context, view models.View, force bool) bool {
	if !v.acquire(view, force) {
		return false
	}

	v.loading.SetLoading(view, true)
	defer func() {
		v.loading.SetLoading(view, false)
		v.release(view)
	}()

	v.load(ctx, view)
	v.records.Set(string(view), time.Now(), cache.DefaultExpiration)

	v.logger.Debug().
		Str("func", "clientViewService.EnsureViewData").
		Str("view", string(view)).
		Bool("force", force).
		Msg("view data loaded")
	return true
}

// acquire marks view as in flight unless it is already loading or, when not
// forced, its data is still fresh.
func (v *clientViewService) acquire(view models.View, force bool) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if _, busy := v.inFlight[view]; busy {
		return false
	}
	if !force {
		if _, fresh := v.records.Get(string(view)); fresh {
			return false
		}
	}

	v.inFlight[view] = struct{}{}
	return true
}

func (v *clientViewService) release(view models.View) {
	v.mu.Lock()
	delete(v.inFlight, view)
	v.mu.Unlock()
}

// load dispatches the gateway operation backing view. Views without remote
// data load nothing.
func (v *clientViewService) load(ctx context.Context, view models.View) {
	switch view {
	case models.MeView:
		v.dreams.FetchPersonal(ctx, nil)
	case models.SearchView, models.PeopleView:
		v.dreams.FetchPublic(ctx)
	}
}

func (v *clientViewService) Refresh(ctx context.Context, view models.View) bool {
	return v.EnsureViewData(ctx, view, true)
}

func (v *clientViewService) Invalidate(view models.View) {
	v.records.Delete(string(view))
}

func (v *clientViewService) LastFetched(view models.View) (time.Time, bool) {
	value, ok := v.records.Get(string(view))
	if !ok {
		return time.Time{}, false
	}
	at, ok := value.(time.Time)
	return at, ok
}

func (v *clientViewService) Prefetch(ctx context.Context, views ...models.View) {
	g, gctx := errgroup.WithContext(ctx)
	for _, view := range views {
		g.Go(func() error {
			v.EnsureViewData(gctx, view, false)
			return nil
		})
	}
	_ = g.Wait()
}
