package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-dream-journal/models"
)

// refreshedViews are the views whose data the refresh job reloads.
var refreshedViews = []models.View{models.MeView, models.SearchView}

type clientRefreshJob struct {
	views ClientViewService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientRefreshJob creates a clientRefreshJob that forces a refresh of the
// data-backed views on a ticker. The job is idle until Start is called.
func NewClientRefreshJob(views ClientViewService) ClientRefreshJob {
	return &clientRefreshJob{views: views}
}

// Start implements ClientRefreshJob. It stops any previously running job. An
// interval of zero or less leaves the job stopped. The goroutine exits when
// ctx is cancelled or Stop is called.
func (j *clientRefreshJob) Start(ctx context.Context, interval time.Duration) {
	j.Stop()

	if interval <= 0 {
		return
	}

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				for _, view := range refreshedViews {
					j.views.Refresh(jobCtx, view)
				}
			}
		}
	}()
}

// Stop implements ClientRefreshJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running.
func (j *clientRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
