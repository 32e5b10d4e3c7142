package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// PIN length bounds accepted by the prompt.
const (
	MinPINLength = 4
	MaxPINLength = 64
)

// PINModel is the Bubble Tea model of the PIN prompt. With confirmation
// enabled it asks for the PIN twice and only accepts matching entries.
type PINModel struct {
	title  string
	inputs []textinput.Model
	focus  int
	errMsg string

	done       bool
	quitByUser bool
}

// NewPINModel creates a [PINModel]. Input is masked.
func NewPINModel(title string, withConfirmation bool) *PINModel {
	n := 1
	if withConfirmation {
		n = 2
	}

	inputs := make([]textinput.Model, n)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].CharLimit = MaxPINLength
		inputs[i].Width = 20
		inputs[i].EchoMode = textinput.EchoPassword
		inputs[i].EchoCharacter = '*'
	}
	inputs[0].Focus()

	return &PINModel{title: title, inputs: inputs}
}

// Init implements [tea.Model]. Starts the cursor-blink animation.
func (m *PINModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled keys:
//   - esc, ctrl+c: cancel the prompt;
//   - tab, shift+tab: move between the PIN and its confirmation;
//   - enter: advance to the confirmation or submit.
//
// All other key events go to the focused input.
func (m *PINModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.quit), key.Matches(keyMsg, keys.esc):
			m.quitByUser = true
			return m, tea.Quit
		case key.Matches(keyMsg, keys.tab):
			m.setFocus(m.focus + 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.setFocus(m.focus - 1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *PINModel) submit() (tea.Model, tea.Cmd) {
	pin := m.inputs[0].Value()

	if len(pin) < MinPINLength {
		m.errMsg = "PIN must be at least 4 characters"
		m.setFocus(0)
		return m, nil
	}
	if strings.TrimSpace(pin) != pin {
		m.errMsg = "PIN must not start or end with spaces"
		m.setFocus(0)
		return m, nil
	}

	if len(m.inputs) > 1 {
		if m.focus == 0 && m.inputs[1].Value() == "" {
			m.errMsg = ""
			m.setFocus(1)
			return m, nil
		}
		if m.inputs[1].Value() != pin {
			m.errMsg = "PINs do not match"
			m.inputs[1].SetValue("")
			m.setFocus(1)
			return m, nil
		}
	}

	m.errMsg = ""
	m.done = true
	return m, tea.Quit
}

func (m *PINModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = (i + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

// View implements [tea.Model].
func (m *PINModel) View() string {
	if m.done || m.quitByUser {
		return ""
	}

	var b strings.Builder
	b.WriteString("PIN     │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	if len(m.inputs) > 1 {
		b.WriteString("Repeat  │ [")
		b.WriteString(m.inputs[1].View())
		b.WriteString("]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	hotKeys := "enter: confirm │ esc: cancel"
	if len(m.inputs) > 1 {
		hotKeys = "tab: next field │ " + hotKeys
	}
	return renderPage(m.title, strings.TrimRight(b.String(), "\n"), hotKeys)
}

// PIN returns the entered PIN once the prompt was submitted.
func (m *PINModel) PIN() (string, bool) {
	if !m.done {
		return "", false
	}
	return m.inputs[0].Value(), true
}
