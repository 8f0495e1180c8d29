package themes

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the TUI.
type Theme struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Bold          lipgloss.Style
	Label         lipgloss.Style
	Selected      lipgloss.Style
	Box           lipgloss.Style
	BorderedBox   lipgloss.Style
	RoundedBox    lipgloss.Style
	SearchBar     lipgloss.Style
	SortButton    lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusPending lipgloss.Style
	StatusError   lipgloss.Style
	StatusInfo    lipgloss.Style
	Toast         lipgloss.Style
	ToastError    lipgloss.Style
	Primary       lipgloss.Color
	Muted         lipgloss.Color
	Border        lipgloss.Color
	Foreground    lipgloss.Color
	Background    lipgloss.Color
	Success       lipgloss.Color
	Pending       lipgloss.Color
	Error         lipgloss.Color
}

// StatusBadge returns the badge style for a transfer status.
func (t Theme) StatusBadge(success bool) lipgloss.Style {
	if success {
		return t.StatusSuccess
	}
	return t.StatusPending
}

// StatusColor returns the accent colour for a transfer status.
func (t Theme) StatusColor(success bool) lipgloss.Color {
	if success {
		return t.Success
	}
	return t.Pending
}

type palette struct {
	primary    string
	muted      string
	border     string
	foreground string
	background string
	subtle     string
	success    string
	pending    string
	err        string
}

func newTheme(p palette) Theme {
	return Theme{
		Primary:    lipgloss.Color(p.primary),
		Muted:      lipgloss.Color(p.muted),
		Border:     lipgloss.Color(p.border),
		Foreground: lipgloss.Color(p.foreground),
		Background: lipgloss.Color(p.background),
		Success:    lipgloss.Color(p.success),
		Pending:    lipgloss.Color(p.pending),
		Error:      lipgloss.Color(p.err),

		// Text styles
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.foreground)).
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.subtle)),
		Normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.foreground)),
		Bold: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.foreground)),
		Label: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.subtle)),
		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(p.primary)).
			Foreground(lipgloss.Color("#ffffff")).
			Bold(true),

		// Component styles
		Box: lipgloss.NewStyle().
			Padding(1, 2),
		BorderedBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(p.border)).
			Padding(1, 2),
		RoundedBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.border)).
			Padding(1, 2),
		SearchBar: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.border)).
			Padding(0, 1),
		SortButton: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.primary)),

		// Status styles
		StatusSuccess: lipgloss.NewStyle().
			Background(lipgloss.Color(p.success)).
			Foreground(lipgloss.Color("#ffffff")).
			Bold(true).
			Padding(0, 1),
		StatusPending: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true).
			BorderForeground(lipgloss.Color(p.pending)).
			Foreground(lipgloss.Color(p.foreground)).
			Bold(true).
			Padding(0, 1),
		StatusError: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.err)).
			Bold(true),
		StatusInfo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.primary)).
			Bold(true),
		Toast: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.success)).
			Padding(0, 1),
		ToastError: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.err)).
			Padding(0, 1),
	}
}

// Default is the default theme, orange accents on a dark terminal.
var Default = newTheme(palette{
	primary:    "#fd6542",
	muted:      "#737373",
	border:     "#404040",
	foreground: "#fafafa",
	background: "#1a1a1a",
	subtle:     "#a3a3a3",
	success:    "#56b481",
	pending:    "#fd6542",
	err:        "#ef4444",
})

// CatppuccinMocha is the Catppuccin Mocha theme.
var CatppuccinMocha = newTheme(palette{
	primary:    "#fab387",
	muted:      "#6c7086",
	border:     "#45475a",
	foreground: "#cdd6f4",
	background: "#1e1e2e",
	subtle:     "#a6adc8",
	success:    "#a6e3a1",
	pending:    "#fab387",
	err:        "#f38ba8",
})

// Names lists the theme names accepted by GetTheme.
var Names = []string{"default", "catppuccin-mocha"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	switch name {
	case "catppuccin-mocha":
		return CatppuccinMocha
	default:
		return Default
	}
}
