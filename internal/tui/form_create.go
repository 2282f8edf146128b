package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-dream-journal/models"
)

const (
	createFieldTitle = iota
	createFieldDate
	createFieldLocation
	createFieldBody
	createFieldCount
)

// formCreateModel collects a new dream. The body is a multi-line textarea,
// everything else single-line inputs.
type formCreateModel struct {
	inputs     []textinput.Model
	body       textarea.Model
	public     bool
	focus      int
	submitting bool
	err        string
}

func newFormCreateModel() formCreateModel {
	inputs := make([]textinput.Model, createFieldBody)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 50
	}
	inputs[createFieldTitle].Placeholder = "title"
	inputs[createFieldDate].Placeholder = "YYYY-MM-DD"
	inputs[createFieldLocation].Placeholder = "where it happened"
	inputs[createFieldTitle].Focus()

	body := textarea.New()
	body.Placeholder = "what did you dream about?"
	body.SetWidth(60)
	body.SetHeight(6)
	body.ShowLineNumbers = false

	return formCreateModel{inputs: inputs, body: body}
}

func (m formCreateModel) dream() models.Dream {
	return models.Dream{
		Title:     strings.TrimSpace(m.inputs[createFieldTitle].Value()),
		DateEvent: strings.TrimSpace(m.inputs[createFieldDate].Value()),
		Location:  strings.TrimSpace(m.inputs[createFieldLocation].Value()),
		Body:      m.body.Value(),
		IsPublic:  models.Flag(m.public),
	}
}

func (m formCreateModel) moveFocus(delta int) formCreateModel {
	m.blur()
	m.focus = (m.focus + delta + createFieldCount) % createFieldCount
	if m.focus == createFieldBody {
		m.body.Focus()
	} else {
		m.inputs[m.focus].Focus()
	}
	return m
}

func (m *formCreateModel) blur() {
	if m.focus == createFieldBody {
		m.body.Blur()
		return
	}
	m.inputs[m.focus].Blur()
}

func (m formCreateModel) update(msg tea.Msg) (formCreateModel, tea.Cmd) {
	var cmd tea.Cmd
	if m.focus == createFieldBody {
		m.body, cmd = m.body.Update(msg)
	} else {
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	}
	return m, cmd
}

func (m formCreateModel) View() string {
	var b strings.Builder

	b.WriteString("Title:    [" + m.inputs[createFieldTitle].View() + "]\n")
	b.WriteString("Date:     [" + m.inputs[createFieldDate].View() + "]\n")
	b.WriteString("Location: [" + m.inputs[createFieldLocation].View() + "]\n")
	visibility := "private"
	if m.public {
		visibility = "public"
	}
	b.WriteString("Visible:  " + visibility + "\n\n")
	b.WriteString(m.body.View())

	if m.submitting {
		b.WriteString("\n\nsaving...")
	}
	if m.err != "" {
		b.WriteString("\n\n" + errorStyle.Render(m.err))
	}

	return renderPage("NEW DREAM", b.String(), "tab: next field  ctrl+p: public/private  ctrl+s: save  esc: cancel")
}
