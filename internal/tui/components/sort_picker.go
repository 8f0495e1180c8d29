package components

import (
	"github.com/Veraticus/transfers/internal/model"
	"github.com/Veraticus/transfers/internal/tui/themes"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SortPickerModel is the modal radio list of sort modes.
type SortPickerModel struct {
	theme   themes.Theme
	icons   themes.IconSet
	modes   []model.SortMode
	current model.SortMode
	cursor  int
}

type pickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Close  key.Binding
}

var pickerKeys = pickerKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("↓/j", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "select"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc", "s"),
		key.WithHelp("esc", "close"),
	),
}

// NewSortPicker creates a picker with current highlighted.
func NewSortPicker(current model.SortMode, theme themes.Theme, icons themes.IconSet) SortPickerModel {
	modes := model.SortModes()
	cursor := 0
	for i, mode := range modes {
		if mode == current {
			cursor = i
			break
		}
	}

	return SortPickerModel{
		theme:   theme,
		icons:   icons,
		modes:   modes,
		current: current,
		cursor:  cursor,
	}
}

// Update handles messages.
func (m SortPickerModel) Update(msg tea.Msg) (SortPickerModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, pickerKeys.Up):
		m.cursor = max(m.cursor-1, 0)

	case key.Matches(keyMsg, pickerKeys.Down):
		m.cursor = min(m.cursor+1, len(m.modes)-1)

	case key.Matches(keyMsg, pickerKeys.Select):
		mode := m.modes[m.cursor]
		return m, func() tea.Msg {
			return SortSelectedMsg{Mode: mode}
		}

	case key.Matches(keyMsg, pickerKeys.Close):
		return m, func() tea.Msg {
			return SortPickerClosedMsg{}
		}

	default:
		// 1-5 pick a mode directly.
		if keyMsg.Type == tea.KeyRunes && len(keyMsg.Runes) == 1 {
			if idx := int(keyMsg.Runes[0] - '1'); idx >= 0 && idx < len(m.modes) {
				m.cursor = idx
				mode := m.modes[idx]
				return m, func() tea.Msg {
					return SortSelectedMsg{Mode: mode}
				}
			}
		}
	}

	return m, nil
}

// Cursor returns the index of the highlighted mode.
func (m SortPickerModel) Cursor() int {
	return m.cursor
}

// View renders the picker.
func (m SortPickerModel) View() string {
	lines := make([]string, 0, len(m.modes)+3)
	lines = append(lines, m.theme.Title.Render("Urutkan"))

	for i, mode := range m.modes {
		radio := m.icons.Get(themes.IconRadioOff)
		if mode == m.current {
			radio = m.icons.Get(themes.IconRadioOn)
		}

		line := radio + " " + mode.Label()
		if i == m.cursor {
			line = m.theme.Selected.Render(line)
		} else {
			line = m.theme.Normal.Render(line)
		}
		lines = append(lines, line)
	}

	lines = append(lines, "",
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render("[Enter] Pilih  [Esc] Batal"))

	return m.theme.RoundedBox.
		BorderForeground(m.theme.Primary).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
