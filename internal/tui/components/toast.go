package components

import (
	"time"

	"github.com/Veraticus/transfers/internal/tui/themes"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DefaultToastDuration is how long a toast stays on screen.
const DefaultToastDuration = 2 * time.Second

// ToastKind selects the toast styling.
type ToastKind int

// Toast kinds.
const (
	ToastSuccess ToastKind = iota
	ToastError
)

// ToastExpiredMsg hides the toast with the matching sequence number.
type ToastExpiredMsg struct {
	seq int
}

// ToastModel is a transient notification. A newer toast replaces an older one
// and is not hidden by the older one's timer.
type ToastModel struct {
	theme    themes.Theme
	icons    themes.IconSet
	title    string
	body     string
	duration time.Duration
	seq      int
	kind     ToastKind
	visible  bool
}

// NewToast creates a hidden toast.
func NewToast(theme themes.Theme, icons themes.IconSet, duration time.Duration) ToastModel {
	if duration <= 0 {
		duration = DefaultToastDuration
	}
	return ToastModel{theme: theme, icons: icons, duration: duration}
}

// Show displays the toast and returns the command that hides it.
func (m *ToastModel) Show(kind ToastKind, title, body string) tea.Cmd {
	m.seq++
	m.kind = kind
	m.title = title
	m.body = body
	m.visible = true

	seq := m.seq
	return tea.Tick(m.duration, func(time.Time) tea.Msg {
		return ToastExpiredMsg{seq: seq}
	})
}

// Update handles messages.
func (m ToastModel) Update(msg tea.Msg) (ToastModel, tea.Cmd) {
	if msg, ok := msg.(ToastExpiredMsg); ok && msg.seq == m.seq {
		m.visible = false
	}
	return m, nil
}

// Visible reports whether the toast is showing.
func (m ToastModel) Visible() bool {
	return m.visible
}

// Title returns the current toast title.
func (m ToastModel) Title() string {
	return m.title
}

// Kind returns the current toast kind.
func (m ToastModel) Kind() ToastKind {
	return m.kind
}

// View renders the toast, or nothing when hidden.
func (m ToastModel) View() string {
	if !m.visible {
		return ""
	}

	style := m.theme.Toast
	icon := m.icons.Render(themes.IconCheck, lipgloss.NewStyle().Foreground(m.theme.Success))
	if m.kind == ToastError {
		style = m.theme.ToastError
		icon = m.icons.Render(themes.IconWarning, lipgloss.NewStyle().Foreground(m.theme.Error))
	}

	content := icon + " " + m.theme.Bold.Render(m.title)
	if m.body != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, content, m.theme.Subtitle.Render(m.body))
	}
	return style.Render(content)
}
