package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/MKhiriev/go-dream-journal/internal/service"
	"github.com/MKhiriev/go-dream-journal/models"
)

const statusTTL = 4 * time.Second

type overlay int

const (
	overlayNone overlay = iota
	overlayDetail
	overlayCreate
	overlayConfirmDelete
	overlayBuildInfo
)

type mainModel struct {
	ctx       context.Context
	services  *service.ClientServices
	buildInfo models.AppBuildInfo

	active  models.View
	session models.Session
	authed  bool

	// authPending holds view loads back until the first auth attempt ends.
	authPending bool

	public   []models.Dream
	personal []models.Dream
	cursor   map[models.View]int
	loading  map[models.View]bool

	spinner spinner.Model

	overlay overlay
	detail  models.Dream
	form    formCreateModel
	confirm confirmModel

	status    string
	statusSeq int

	width  int
	height int
}

func newMainModel(ctx context.Context, services *service.ClientServices, source CollectionSource, buildInfo models.AppBuildInfo) mainModel {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot

	return mainModel{
		ctx:         ctx,
		services:    services,
		buildInfo:   buildInfo,
		active:      models.MainView,
		authPending: true,
		session:     services.AuthService.Session(),
		public:      source.Collection(models.PublicCollection),
		personal:    source.Collection(models.PersonalCollection),
		cursor:      make(map[models.View]int, len(models.Views)),
		loading:     make(map[models.View]bool, len(models.Views)),
		spinner:     sp,
	}
}

// rows is the number of selectable rows of view.
func (m mainModel) rows(view models.View) int {
	switch view {
	case models.MeView:
		return len(m.personal)
	case models.SearchView:
		return len(m.public)
	case models.PeopleView:
		return len(authorsOf(m.public))
	default:
		return 0
	}
}

// selected returns the dream under the cursor of the active view.
func (m mainModel) selected() (models.Dream, bool) {
	var items []models.Dream
	switch m.active {
	case models.MeView:
		items = m.personal
	case models.SearchView:
		items = m.public
	default:
		return models.Dream{}, false
	}

	i := m.cursor[m.active]
	if i < 0 || i >= len(items) {
		return models.Dream{}, false
	}
	return items[i], true
}

func (m mainModel) clampCursor(view models.View) {
	n := m.rows(view)
	switch {
	case n == 0:
		m.cursor[view] = 0
	case m.cursor[view] >= n:
		m.cursor[view] = n - 1
	case m.cursor[view] < 0:
		m.cursor[view] = 0
	}
}

func (m mainModel) anyLoading() bool {
	for _, on := range m.loading {
		if on {
			return true
		}
	}
	return false
}

// initialViews lists what to load once auth settles: the view on screen,
// the personal feed when signed in and the public feed.
func (m mainModel) initialViews(signedIn bool) []models.View {
	views := []models.View{m.active}
	if signedIn && m.active != models.MeView {
		views = append(views, models.MeView)
	}
	if m.active != models.SearchView {
		views = append(views, models.SearchView)
	}
	return views
}
