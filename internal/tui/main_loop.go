package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-dream-journal/internal/app"
	"github.com/MKhiriev/go-dream-journal/models"
)

func (m mainModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.authCmd())
}

func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case authDoneMsg:
		m.session = msg.session
		m.authed = msg.ok
		m.authPending = false
		var notice tea.Cmd
		if !msg.ok {
			m, notice = m.setStatus(app.MsgAnonymous)
		}
		return m, tea.Batch(notice, m.prefetchCmd(msg.ok, m.initialViews(msg.ok)))

	case collectionChangedMsg:
		switch msg.name {
		case models.PublicCollection:
			m.public = msg.items
			m.clampCursor(models.SearchView)
			m.clampCursor(models.PeopleView)
		case models.PersonalCollection:
			m.personal = msg.items
			m.clampCursor(models.MeView)
		}
		return m, nil

	case loadingMsg:
		m.loading[msg.view] = msg.on
		return m, nil

	case viewLoadedMsg, prefetchDoneMsg:
		return m, nil

	case noticeMsg:
		return m.setStatus(msg.text)

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil

	case createDoneMsg:
		m.form.submitting = false
		if msg.err != nil {
			m.form.err = msg.err.Error()
			return m, nil
		}
		m.overlay = overlayNone
		var notice tea.Cmd
		m, notice = m.setStatus(app.MsgCreated)
		return m, tea.Batch(notice, m.ensureViewCmd(models.MeView, true))

	case deleteDoneMsg:
		m.overlay = overlayNone
		if msg.err != nil {
			return m, nil
		}
		var notice tea.Cmd
		m, notice = m.setStatus(app.MsgDeleted)
		return m, tea.Batch(notice, m.ensureViewCmd(models.MeView, true))

	case loggedOutMsg:
		m.session = models.Session{}
		m.authed = false
		m.personal = nil
		m.clampCursor(models.MeView)
		return m.setStatus(app.MsgLoggedOut)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.overlay == overlayCreate {
		var cmd tea.Cmd
		m.form, cmd = m.form.update(msg)
		return m, cmd
	}
	return m, nil
}

func (m mainModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.overlay {
	case overlayCreate:
		return m.handleCreateKey(msg)
	case overlayConfirmDelete:
		switch {
		case key.Matches(msg, keys.yes):
			return m, m.deleteCmd(m.detail.ID)
		case key.Matches(msg, keys.no):
			m.overlay = overlayNone
		}
		return m, nil
	case overlayDetail:
		switch {
		case key.Matches(msg, keys.esc), key.Matches(msg, keys.enter):
			m.overlay = overlayNone
		case key.Matches(msg, keys.copy):
			return m.copyBody(m.detail)
		case key.Matches(msg, keys.delete) && m.active == models.MeView:
			m.confirm = confirmModel{message: valueOrDash(m.detail.Title)}
			m.overlay = overlayConfirmDelete
		}
		return m, nil
	case overlayBuildInfo:
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.version) {
			m.overlay = overlayNone
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.tab), key.Matches(msg, keys.right):
		return m.switchView(m.neighbour(1))
	case key.Matches(msg, keys.backtab), key.Matches(msg, keys.left):
		return m.switchView(m.neighbour(-1))
	case key.Matches(msg, keys.viewMain):
		return m.switchView(models.MainView)
	case key.Matches(msg, keys.viewMe):
		return m.switchView(models.MeView)
	case key.Matches(msg, keys.viewFind):
		return m.switchView(models.SearchView)
	case key.Matches(msg, keys.viewPeers):
		return m.switchView(models.PeopleView)
	case key.Matches(msg, keys.up):
		m.cursor[m.active]--
		m.clampCursor(m.active)
	case key.Matches(msg, keys.down):
		m.cursor[m.active]++
		m.clampCursor(m.active)
	case key.Matches(msg, keys.enter):
		if d, ok := m.selected(); ok {
			m.detail = d
			m.overlay = overlayDetail
		}
	case key.Matches(msg, keys.refresh):
		if m.authPending {
			return m, nil
		}
		return m, m.ensureViewCmd(m.active, true)
	case key.Matches(msg, keys.newItem):
		m.form = newFormCreateModel()
		m.overlay = overlayCreate
		return m, m.form.inputs[createFieldTitle].Focus()
	case key.Matches(msg, keys.delete):
		if d, ok := m.selected(); ok && m.active == models.MeView {
			m.detail = d
			m.confirm = confirmModel{message: valueOrDash(d.Title)}
			m.overlay = overlayConfirmDelete
		}
	case key.Matches(msg, keys.copy):
		if d, ok := m.selected(); ok {
			return m.copyBody(d)
		}
	case key.Matches(msg, keys.logout):
		return m, m.logoutCmd()
	case key.Matches(msg, keys.version):
		m.overlay = overlayBuildInfo
	}
	return m, nil
}

func (m mainModel) handleCreateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.form.submitting {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		m.overlay = overlayNone
		return m, nil
	case key.Matches(msg, keys.tab):
		m.form = m.form.moveFocus(1)
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.form = m.form.moveFocus(-1)
		return m, nil
	case key.Matches(msg, keys.visible):
		m.form.public = !m.form.public
		return m, nil
	case key.Matches(msg, keys.submit):
		m.form.submitting = true
		m.form.err = ""
		return m, m.createCmd(m.form.dream())
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m mainModel) switchView(view models.View) (tea.Model, tea.Cmd) {
	if view == m.active {
		return m, nil
	}
	m.active = view
	m.clampCursor(view)
	if m.authPending {
		return m, nil
	}
	return m, m.ensureViewCmd(view, false)
}

func (m mainModel) neighbour(delta int) models.View {
	idx := 0
	for i, v := range models.Views {
		if v == m.active {
			idx = i
			break
		}
	}
	n := len(models.Views)
	return models.Views[(idx+delta+n)%n]
}

func (m mainModel) copyBody(d models.Dream) (tea.Model, tea.Cmd) {
	if err := clipboard.WriteAll(d.Body); err != nil {
		return m.setStatus(app.MsgCopyFailed)
	}
	return m.setStatus(app.MsgCopied)
}

func (m mainModel) setStatus(text string) (mainModel, tea.Cmd) {
	m.statusSeq++
	m.status = text
	return m, clearStatusCmd(m.statusSeq)
}

func (m mainModel) View() string {
	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch m.overlay {
	case overlayDetail:
		b.WriteString(renderDreamDetail(m.detail, m.active == models.MeView))
	case overlayCreate:
		b.WriteString(m.form.View())
	case overlayConfirmDelete:
		b.WriteString(m.confirm.View())
	case overlayBuildInfo:
		b.WriteString(renderBuildInfoWindow(m.buildInfo))
	default:
		b.WriteString(m.renderView())
	}

	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(statusStyle.Render(m.status))
	}

	return appStyle.Render(b.String())
}

func (m mainModel) renderTabs() string {
	tabs := make([]string, 0, len(models.Views))
	for i, v := range models.Views {
		label := fmt.Sprintf("%d %s", i+1, v)
		if m.loading[v] {
			label += " " + m.spinner.View()
		}
		if v == m.active {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m mainModel) renderView() string {
	switch m.active {
	case models.MeView:
		if m.session.Username() == "" && len(m.personal) == 0 {
			return renderPage("MY DREAMS", app.MsgMissingUsername, "n: new  r: refresh")
		}
		return renderPage("MY DREAMS", renderDreamList(m.personal, m.cursor[models.MeView], false),
			"↑/↓: select  enter: open  n: new  d: delete  c: copy  r: refresh")
	case models.SearchView:
		return renderPage("PUBLIC DREAMS", renderDreamList(m.public, m.cursor[models.SearchView], true),
			"↑/↓: select  enter: open  c: copy  r: refresh")
	case models.PeopleView:
		return renderPage("PEOPLE", renderAuthorList(authorsOf(m.public), m.cursor[models.PeopleView]),
			"↑/↓: select  r: refresh")
	default:
		return renderPage("DREAM JOURNAL", m.renderWelcome(), "tab: next view  n: new  L: sign out  v: about")
	}
}

func (m mainModel) renderWelcome() string {
	var b strings.Builder

	if m.session.IsAuthenticated() && m.session.Profile != nil {
		b.WriteString("Signed in as " + m.session.Profile.Name() + "\n")
	} else if m.session.IsAuthenticated() {
		b.WriteString("Signed in\n")
	} else {
		b.WriteString(app.MsgAnonymous + "\n")
	}

	b.WriteString(fmt.Sprintf("\nMy dreams:     %d\n", len(m.personal)))
	b.WriteString(fmt.Sprintf("Public dreams: %d\n", len(m.public)))

	for _, v := range []models.View{models.MeView, models.SearchView} {
		at, ok := m.services.ViewService.LastFetched(v)
		if !ok {
			continue
		}
		b.WriteString(fmt.Sprintf("\n%s refreshed %s ago", v, time.Since(at).Truncate(time.Second)))
	}

	return b.String()
}
