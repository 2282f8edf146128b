package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-dream-journal/internal/service"
	"github.com/MKhiriev/go-dream-journal/models"
)

var (
	_ service.Notifier         = (*Events)(nil)
	_ service.LoadingIndicator = (*Events)(nil)
)

// maxPending bounds the messages kept while no program is attached.
const maxPending = 64

// Events carries notices and loading changes from the services into the
// running program. It implements service.Notifier and
// service.LoadingIndicator. Messages sent before a program is attached are
// queued and delivered on attach.
type Events struct {
	mu      sync.Mutex
	deliver func(tea.Msg)
	pending []tea.Msg
}

func NewEvents() *Events {
	return &Events{}
}

// Notify implements service.Notifier.
func (e *Events) Notify(message string) {
	e.send(noticeMsg{text: message})
}

// SetLoading implements service.LoadingIndicator.
func (e *Events) SetLoading(view models.View, loading bool) {
	e.send(loadingMsg{view: view, on: loading})
}

func (e *Events) send(msg tea.Msg) {
	e.mu.Lock()
	deliver := e.deliver
	if deliver == nil {
		if len(e.pending) < maxPending {
			e.pending = append(e.pending, msg)
		}
		e.mu.Unlock()
		return
	}
	e.mu.Unlock()

	deliver(msg)
}

func (e *Events) attach(deliver func(tea.Msg)) {
	e.mu.Lock()
	pending := e.pending
	e.pending = nil
	e.deliver = deliver
	e.mu.Unlock()

	go func() {
		for _, msg := range pending {
			deliver(msg)
		}
	}()
}

func (e *Events) detach() {
	e.mu.Lock()
	e.deliver = nil
	e.mu.Unlock()
}
