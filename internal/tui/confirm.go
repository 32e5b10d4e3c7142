package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-snapshot-keeper/internal/service"
)

// ConfirmModel asks the user to approve replacing local state with a backup.
// Anything but an explicit "y" declines.
type ConfirmModel struct {
	preview   service.RestorePreview
	answered  bool
	confirmed bool
}

// NewConfirmModel creates a [ConfirmModel] describing preview.
func NewConfirmModel(preview service.RestorePreview) *ConfirmModel {
	return &ConfirmModel{preview: preview}
}

func (m *ConfirmModel) Init() tea.Cmd {
	return nil
}

func (m *ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.yes):
		m.answered, m.confirmed = true, true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.quit):
		m.answered, m.confirmed = true, false
		return m, tea.Quit
	}
	return m, nil
}

func (m *ConfirmModel) View() string {
	if m.answered {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Restore backup?"))
	b.WriteString("\n\n")
	b.WriteString("Source:    " + valueOrNA(m.preview.Source) + "\n")
	b.WriteString("Created:   " + valueOrNA(m.preview.Timestamp) + "\n")
	b.WriteString(fmt.Sprintf("Encrypted: %t\n", m.preview.Encrypted))
	b.WriteString(fmt.Sprintf("Size:      %d bytes\n\n", m.preview.Size))
	b.WriteString("Local data will be replaced.\n\n")
	b.WriteString("y yes    n no")
	return overlayBoxStyle.Render(b.String())
}

// Confirmed reports the user's answer.
func (m *ConfirmModel) Confirmed() bool {
	return m.confirmed
}
