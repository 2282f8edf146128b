package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/MKhiriev/go-dream-journal/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// SessionStorage is the part of the session store the services depend on.
// It is satisfied by *store.SessionStore.
type SessionStorage interface {
	Token() (string, bool)
	SaveToken(ctx context.Context, token string)
	Profile() (*models.Profile, bool)
	SaveProfile(ctx context.Context, profile *models.Profile)
	Session() models.Session
	Clear(ctx context.Context)
	SetCollection(ctx context.Context, name models.Collection, items []models.Dream)
	Snapshot(ctx context.Context, name models.Collection) []models.Dream
}

// Notifier shows a transient advisory message to the user.
type Notifier interface {
	Notify(message string)
}

// LoadingIndicator reflects whether a view is being fetched.
type LoadingIndicator interface {
	SetLoading(view models.View, loading bool)
}

// ClientAuthService establishes and tears down the client session.
type ClientAuthService interface {
	// EnsureAuth validates the stored token, or exchanges an identity
	// credential for a new one, and returns the resulting session. ok is
	// false when the client stays anonymous. It performs at most one token
	// validation and at most one credential exchange, and never retries.
	EnsureAuth(ctx context.Context) (session models.Session, ok bool)

	// Logout clears the stored token and profile.
	Logout(ctx context.Context)

	// State returns the current phase of the authentication flow.
	State() models.AuthState

	// Session returns a copy of the stored session.
	Session() models.Session
}

// ClientDreamService talks to the dream endpoints and keeps the cached
// collections in step with what was fetched.
type ClientDreamService interface {
	// FetchPublic loads the global feed into the public collection. On
	// failure the last snapshot is used instead and a notice is shown. The
	// result is whatever was written to the collection.
	FetchPublic(ctx context.Context) []models.Dream

	// FetchPersonal loads the signed-in user's dreams into the personal
	// collection with the same fallback policy as FetchPublic. A non-nil
	// filter is sent as the request body.
	FetchPersonal(ctx context.Context, filter *models.DreamFilter) []models.Dream

	// Create submits a new dream for the signed-in user. It fails with
	// [ErrMissingUsername] or [ErrInvalidDream] before any network call.
	// Cached collections are left untouched.
	Create(ctx context.Context, dream models.Dream) (json.RawMessage, error)

	// Delete removes a dream on the server. Cached collections are left
	// untouched.
	Delete(ctx context.Context, id models.DreamID) error
}

// ClientViewService decides when a view's data needs to be fetched again.
type ClientViewService interface {
	// EnsureViewData fetches the data behind view unless it was fetched
	// within the freshness window or a fetch for it is already running.
	// force skips the freshness check. It reports whether a fetch ran.
	EnsureViewData(ctx context.Context, view models.View, force bool) bool

	// Refresh is EnsureViewData with force set.
	Refresh(ctx context.Context, view models.View) bool

	// Invalidate forgets the last fetch time of view.
	Invalidate(view models.View)

	// LastFetched returns when view was last fetched.
	LastFetched(view models.View) (time.Time, bool)

	// Prefetch ensures the data of all given views concurrently.
	Prefetch(ctx context.Context, views ...models.View)
}

// ClientRefreshJob periodically forces a refresh of the data-backed views.
type ClientRefreshJob interface {
	// Start launches the background refresh goroutine. Any previously
	// running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
