package components

import (
	"fmt"
	"strings"

	"github.com/Veraticus/transfers/internal/engine"
	"github.com/Veraticus/transfers/internal/format"
	"github.com/Veraticus/transfers/internal/model"
	"github.com/Veraticus/transfers/internal/tui/themes"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SearchPlaceholder is shown in the empty search bar.
const SearchPlaceholder = "Cari nama, bank, atau nominal"

// TransactionListModel manages the searchable, sortable transfer list.
type TransactionListModel struct {
	theme       themes.Theme
	icons       themes.IconSet
	filter      engine.FilterState
	searchInput textinput.Model
	table       table.Model
	mode        ListMode
	width       int
	height      int
	refreshing  bool
}

// ListMode represents the current mode of the list.
type ListMode int

// List modes.
const (
	ModeNormal ListMode = iota
	ModeSearch
)

type listKeyMap struct {
	Select  key.Binding
	Search  key.Binding
	Sort    key.Binding
	Refresh key.Binding
	Clear   key.Binding
	Done    key.Binding
}

var listKeys = listKeyMap{
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "detail"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Sort: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "sort"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	Clear: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear search"),
	),
	Done: key.NewBinding(
		key.WithKeys("enter", "down", "tab"),
		key.WithHelp("enter", "done"),
	),
}

// NewTransactionList creates a list over items ordered by mode.
func NewTransactionList(items []model.Transaction, mode model.SortMode, theme themes.Theme, icons themes.IconSet) TransactionListModel {
	t := table.New(
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Bold(false)
	s.Selected = theme.Selected
	t.SetStyles(s)

	searchInput := textinput.New()
	searchInput.Prompt = ""
	searchInput.Placeholder = SearchPlaceholder
	searchInput.CharLimit = 64

	m := TransactionListModel{
		theme:       theme,
		icons:       icons,
		filter:      engine.NewFilterState(items, mode),
		searchInput: searchInput,
		table:       t,
		mode:        ModeNormal,
		width:       80,
		height:      24,
	}

	m.updateColumnWidths()
	m.refreshRows()

	return m
}

// Update handles messages.
func (m TransactionListModel) Update(msg tea.Msg) (TransactionListModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.mode == ModeSearch {
			return m, m.handleSearchMode(msg)
		}
		if cmd, handled := m.handleNormalMode(msg); handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.Resize(msg.Width, msg.Height)
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// handleNormalMode handles key presses while browsing. It reports whether the
// key was consumed; unconsumed keys go to the table for navigation.
func (m *TransactionListModel) handleNormalMode(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, listKeys.Select):
		tx, ok := m.Selected()
		if !ok {
			return nil, true
		}
		index := m.table.Cursor()
		return func() tea.Msg {
			return TransactionSelectedMsg{Transaction: tx, Index: index}
		}, true

	case key.Matches(msg, listKeys.Search):
		m.mode = ModeSearch
		m.table.Blur()
		return m.searchInput.Focus(), true

	case key.Matches(msg, listKeys.Sort):
		return func() tea.Msg { return OpenSortPickerMsg{} }, true

	case key.Matches(msg, listKeys.Refresh):
		return func() tea.Msg { return RefreshRequestMsg{} }, true

	case key.Matches(msg, listKeys.Clear):
		if m.filter.Query() == "" {
			return nil, false
		}
		m.SetQuery("")
		return nil, true
	}

	return nil, false
}

// handleSearchMode handles key presses while the search bar has focus. The
// list is filtered on every keystroke.
func (m *TransactionListModel) handleSearchMode(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, listKeys.Done):
		m.leaveSearch()
		return nil

	case key.Matches(msg, listKeys.Clear):
		m.SetQuery("")
		m.leaveSearch()
		return nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if value := m.searchInput.Value(); value != m.filter.Query() {
		m.filter.SetQuery(value)
		m.refreshRows()
		m.gotoTop()
	}
	return cmd
}

// gotoTop moves the cursor to the first row. The table would park the
// cursor at -1 when it has no rows.
func (m *TransactionListModel) gotoTop() {
	if m.filter.Len() > 0 {
		m.table.GotoTop()
	}
}

func (m *TransactionListModel) leaveSearch() {
	m.mode = ModeNormal
	m.searchInput.Blur()
	m.table.Focus()
}

// SetItems replaces the fetched items. The cursor stays on the same transfer
// when it is still visible.
func (m *TransactionListModel) SetItems(items []model.Transaction) {
	current, hadSelection := m.Selected()

	m.filter.SetItems(items)
	m.refreshRows()

	if !hadSelection {
		return
	}
	for i, tx := range m.filter.Derived() {
		if tx.ID == current.ID {
			m.table.SetCursor(i)
			return
		}
	}
}

// SetQuery replaces the search query and the search bar text.
func (m *TransactionListModel) SetQuery(query string) {
	m.searchInput.SetValue(query)
	if query == m.filter.Query() {
		return
	}
	m.filter.SetQuery(query)
	m.refreshRows()
	m.gotoTop()
}

// SetSortMode reorders the list.
func (m *TransactionListModel) SetSortMode(mode model.SortMode) {
	if mode == m.filter.SortMode() {
		return
	}
	m.filter.SetSortMode(mode)
	m.refreshRows()
	m.gotoTop()
	m.updateSearchWidth()
}

// SetRefreshing marks whether a refetch is running behind the list.
func (m *TransactionListModel) SetRefreshing(refreshing bool) {
	m.refreshing = refreshing
}

// Query returns the current search query.
func (m TransactionListModel) Query() string {
	return m.filter.Query()
}

// SortMode returns the current sort mode.
func (m TransactionListModel) SortMode() model.SortMode {
	return m.filter.SortMode()
}

// Searching reports whether the search bar has focus.
func (m TransactionListModel) Searching() bool {
	return m.mode == ModeSearch
}

// Len returns the number of visible transfers.
func (m TransactionListModel) Len() int {
	return m.filter.Len()
}

// Visible returns the filtered and sorted transfers.
func (m TransactionListModel) Visible() []model.Transaction {
	return m.filter.Derived()
}

// Cursor returns the index of the highlighted row.
func (m TransactionListModel) Cursor() int {
	return m.table.Cursor()
}

// Selected returns the highlighted transfer.
func (m TransactionListModel) Selected() (model.Transaction, bool) {
	return m.filter.At(m.table.Cursor())
}

// View renders the transaction list.
func (m TransactionListModel) View() string {
	header := m.renderHeader()
	toolbar := m.renderToolbar()

	var body string
	if m.filter.Len() == 0 {
		body = m.renderEmpty()
	} else {
		body = m.table.View()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		toolbar,
		body,
		m.renderFooter(),
	)
}

func (m TransactionListModel) renderHeader() string {
	title := m.theme.Title.Render("Daftar Transaksi")

	status := fmt.Sprintf("%d dari %d transaksi", m.filter.Len(), len(m.filter.Items()))
	if m.refreshing {
		status += " | memuat ulang..."
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, m.theme.Subtitle.Render(status))
}

func (m TransactionListModel) renderToolbar() string {
	sortButton := m.sortButton()
	search := m.theme.SearchBar.
		Width(m.searchBarWidth()).
		Render(m.icons.Get(themes.IconSearch) + " " + m.searchInput.View())

	return lipgloss.JoinHorizontal(lipgloss.Center, search, "  ", sortButton)
}

func (m TransactionListModel) renderEmpty() string {
	text := "Tidak ada transaksi"
	if q := m.filter.Query(); q != "" {
		text = fmt.Sprintf("Tidak ada transaksi untuk %q", q)
	}
	return lipgloss.NewStyle().
		Foreground(m.theme.Muted).
		Padding(1, 2).
		Render(text)
}

func (m TransactionListModel) renderFooter() string {
	var hints []string

	switch m.mode {
	case ModeSearch:
		hints = []string{
			"[Enter] Done",
			"[Esc] Clear",
		}
	default:
		hints = []string{
			"[↑↓] Navigate",
			"[Enter] Detail",
			"[/] Search",
			"[s] Sort",
			"[r] Refresh",
			"[q] Quit",
		}
	}

	return lipgloss.NewStyle().Foreground(m.theme.Muted).Render(strings.Join(hints, "  "))
}

// refreshRows rebuilds the table rows from the derived list.
func (m *TransactionListModel) refreshRows() {
	derived := m.filter.Derived()
	arrow := m.icons.Get(themes.IconArrow)
	dot := m.icons.Get(themes.IconDot)

	rows := make([]table.Row, 0, len(derived))
	for _, tx := range derived {
		rows = append(rows, table.Row{
			tx.Route(arrow),
			tx.BeneficiaryName,
			format.Currency(tx.Amount),
			format.Date(tx.CreatedAt),
			dot + " " + tx.Status.Label(),
		})
	}

	m.table.SetRows(rows)
	switch {
	case len(rows) == 0:
	case m.table.Cursor() < 0:
		m.table.SetCursor(0)
	case m.table.Cursor() >= len(rows):
		m.table.SetCursor(len(rows) - 1)
	}
}

// Resize updates the component size.
func (m *TransactionListModel) Resize(width, height int) {
	m.width = width
	m.height = height

	// Chrome: title (2), subtitle (1), toolbar (3), footer (1).
	tableHeight := max(3, height-7)
	m.table.SetHeight(tableHeight)
	m.updateColumnWidths()
}

// Fixed content widths of the columns whose values have a bounded length.
const (
	amountColumnWidth = 13 // Rp10.000.000
	dateColumnWidth   = 17 // 30 September 2024
	minRouteWidth     = 14
	minNameWidth      = 10
)

// updateColumnWidths sizes the columns to the available width. Status, amount
// and date keep their full text; route and name share what is left.
func (m *TransactionListModel) updateColumnWidths() {
	availableWidth := max(60, m.width-4)
	padding := table.DefaultStyles().Cell.GetHorizontalPadding()

	statusWidth := max(
		lipgloss.Width(m.icons.Get(themes.IconDot)+" "+model.Status("PENDING").Label()),
		lipgloss.Width(m.icons.Get(themes.IconDot)+" "+model.StatusSuccess.Label()),
	)

	rest := availableWidth - 5*padding - statusWidth - amountColumnWidth - dateColumnWidth
	routeWidth := max(minRouteWidth, rest*2/5)
	nameWidth := max(minNameWidth, rest-routeWidth)

	columns := []table.Column{
		{Title: "Transfer", Width: routeWidth},
		{Title: "Penerima", Width: nameWidth},
		{Title: "Nominal", Width: amountColumnWidth},
		{Title: "Tanggal", Width: dateColumnWidth},
		{Title: "Status", Width: statusWidth},
	}

	total := 0
	for _, c := range columns {
		total += c.Width + padding
	}

	m.table.SetColumns(columns)
	m.table.SetWidth(total)
	m.updateSearchWidth()
}

// updateSearchWidth fits the search input to the bar drawn by renderToolbar.
func (m *TransactionListModel) updateSearchWidth() {
	bar := m.searchBarWidth()
	icon := lipgloss.Width(m.icons.Get(themes.IconSearch)) + 1
	m.searchInput.Width = max(1, bar-m.theme.SearchBar.GetHorizontalPadding()-icon-1)
}

// searchBarWidth is the width of the search bar next to the sort button.
func (m TransactionListModel) searchBarWidth() int {
	return max(20, m.width-lipgloss.Width(m.sortButton())-6)
}

func (m TransactionListModel) sortButton() string {
	sortLabel := fmt.Sprintf("%s %s", m.filter.SortMode().Label(), m.icons.Get(themes.IconChevron))
	return m.theme.SortButton.Render(sortLabel)
}
