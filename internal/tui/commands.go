package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-dream-journal/models"
)

func (m mainModel) authCmd() tea.Cmd {
	return func() tea.Msg {
		session, ok := m.services.AuthService.EnsureAuth(m.ctx)
		return authDoneMsg{session: session, ok: ok}
	}
}

func (m mainModel) ensureViewCmd(view models.View, force bool) tea.Cmd {
	return func() tea.Msg {
		fetched := m.services.ViewService.EnsureViewData(m.ctx, view, force)
		return viewLoadedMsg{view: view, fetched: fetched}
	}
}

// prefetchCmd loads views concurrently after auth. A signed-in session
// drops any personal record taken before the token was known.
func (m mainModel) prefetchCmd(signedIn bool, views []models.View) tea.Cmd {
	return func() tea.Msg {
		if signedIn {
			m.services.ViewService.Invalidate(models.MeView)
		}
		m.services.ViewService.Prefetch(m.ctx, views...)
		return prefetchDoneMsg{views: views}
	}
}

func (m mainModel) createCmd(dream models.Dream) tea.Cmd {
	return func() tea.Msg {
		_, err := m.services.DreamService.Create(m.ctx, dream)
		return createDoneMsg{err: err}
	}
}

func (m mainModel) deleteCmd(id models.DreamID) tea.Cmd {
	return func() tea.Msg {
		return deleteDoneMsg{err: m.services.DreamService.Delete(m.ctx, id)}
	}
}

func (m mainModel) logoutCmd() tea.Cmd {
	return func() tea.Msg {
		m.services.AuthService.Logout(m.ctx)
		m.services.ViewService.Invalidate(models.MeView)
		return loggedOutMsg{}
	}
}

func clearStatusCmd(seq int) tea.Cmd {
	return tea.Tick(statusTTL, func(_ time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}
