package tui

import (
	"fmt"
	"strings"

	"github.com/Veraticus/transfers/internal/tui/themes"
	"github.com/charmbracelet/lipgloss"
)

// ErrorMessage is the headline of the error screen.
const ErrorMessage = "Something went wrong, please try again"

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.Screen() {
	case ScreenLoading:
		return m.renderLoading()
	case ScreenError:
		return m.renderError()
	case ScreenHelp:
		return m.renderHelp()
	case ScreenSortPicker:
		return m.renderCentered(m.picker.View())
	case ScreenDetail:
		return m.withChrome(m.detail.View())
	default:
		return m.withChrome(m.list.View())
	}
}

// renderLoading renders the loading screen.
func (m Model) renderLoading() string {
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		m.theme.Title.Render("Daftar Transaksi"),
		m.spinner.View()+" "+lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Memuat transaksi..."),
	)

	return m.renderCentered(content)
}

// renderError renders the failure screen with the retry affordance.
func (m Model) renderError() string {
	headline := m.icons.Render(themes.IconWarning, m.theme.StatusError) + " " + m.theme.Bold.Render(ErrorMessage)

	lines := []string{headline}
	if msg := m.fetchState.ErrorMessage(); msg != "" {
		lines = append(lines, "", lipgloss.NewStyle().Foreground(m.theme.Muted).Render(msg))
	}
	lines = append(lines, "", m.theme.SortButton.Render("[r] Retry")+"  "+
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render("[q] Quit"))

	box := m.theme.RoundedBox.
		BorderForeground(m.theme.Error).
		MaxWidth(max(40, m.width-4)).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))

	return m.renderCentered(box)
}

// renderHelp renders the key binding reference.
func (m Model) renderHelp() string {
	m.help.ShowAll = true
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Title.Render("Bantuan"),
		m.help.View(m.keymap),
		"",
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Press ? or Esc to close help"),
	)

	return m.renderCentered(m.theme.BorderedBox.Render(content))
}

func (m Model) renderCentered(content string) string {
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)
}

// withChrome adds the toast and the status bar under content.
func (m Model) withChrome(content string) string {
	parts := []string{content}
	if m.toast.Visible() {
		parts = append(parts, m.toast.View())
	}
	parts = append(parts, m.renderStatusBar())

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderStatusBar renders the bottom status bar.
func (m Model) renderStatusBar() string {
	var left string
	switch m.Screen() {
	case ScreenDetail:
		left = "Detail"
	default:
		left = "Browse"
		if m.list.Searching() {
			left = "Search"
		}
	}

	center := fmt.Sprintf("%d transaksi", m.list.Len())
	if q := m.list.Query(); q != "" {
		center += fmt.Sprintf(" | %q", q)
	}

	right := "? Help"

	spacing := max(2, m.width-lipgloss.Width(left)-lipgloss.Width(center)-lipgloss.Width(right)-2)
	leftPad := spacing / 2
	rightPad := spacing - leftPad

	status := fmt.Sprintf("%s%s%s%s%s",
		m.theme.StatusInfo.Render(left),
		strings.Repeat(" ", leftPad),
		m.theme.Normal.Render(center),
		strings.Repeat(" ", rightPad),
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render(right),
	)

	return lipgloss.NewStyle().
		Background(m.theme.Border).
		Width(m.width).
		MaxWidth(m.width).
		Render(status)
}
