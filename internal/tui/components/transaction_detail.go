package components

import (
	"strings"

	"github.com/Veraticus/transfers/internal/format"
	"github.com/Veraticus/transfers/internal/model"
	"github.com/Veraticus/transfers/internal/tui/themes"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TransactionDetailModel shows one transfer.
type TransactionDetailModel struct {
	theme       themes.Theme
	icons       themes.IconSet
	transaction model.Transaction
	width       int
	height      int
}

type detailKeyMap struct {
	Copy key.Binding
	Back key.Binding
}

var detailKeys = detailKeyMap{
	Copy: key.NewBinding(
		key.WithKeys("c", "y"),
		key.WithHelp("c", "copy id"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "backspace", "h", "left"),
		key.WithHelp("esc", "tutup"),
	),
}

// NewTransactionDetailModel creates a detail view for tx.
func NewTransactionDetailModel(tx model.Transaction, theme themes.Theme, icons themes.IconSet) TransactionDetailModel {
	return TransactionDetailModel{
		theme:       theme,
		icons:       icons,
		transaction: tx,
		width:       80,
		height:      24,
	}
}

// Init initializes the model.
func (m TransactionDetailModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m TransactionDetailModel) Update(msg tea.Msg) (TransactionDetailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, detailKeys.Back):
			return m, func() tea.Msg {
				return BackToListMsg{}
			}

		case key.Matches(msg, detailKeys.Copy):
			id := m.transaction.ID
			return m, func() tea.Msg {
				return CopyRequestMsg{ID: id}
			}
		}
	}

	return m, nil
}

// Transaction returns the transfer being shown.
func (m TransactionDetailModel) Transaction() model.Transaction {
	return m.transaction
}

// View renders the transaction detail view.
func (m TransactionDetailModel) View() string {
	tx := m.transaction
	contentWidth := max(40, m.width-4)

	labelStyle := m.theme.Label
	valueStyle := m.theme.Normal

	field := func(label, value string) string {
		if strings.TrimSpace(value) == "" {
			value = format.Placeholder
		}
		return lipgloss.JoinVertical(lipgloss.Left,
			labelStyle.Render(label),
			valueStyle.Render(value),
		)
	}

	copyHint := m.icons.Render(themes.IconCopy, m.theme.SortButton)
	idLine := lipgloss.JoinHorizontal(lipgloss.Top,
		m.theme.Bold.Render("ID TRANSAKSI: #"+tx.ID),
		"  ",
		copyHint,
	)

	closeButton := m.theme.SortButton.Render("Tutup")
	headerLeft := m.theme.Bold.Render("DETAIL TRANSAKSI")
	gap := max(1, contentWidth-lipgloss.Width(headerLeft)-lipgloss.Width(closeButton)-4)
	header := headerLeft + strings.Repeat(" ", gap) + closeButton

	divider := lipgloss.NewStyle().
		Foreground(m.theme.Border).
		Render(strings.Repeat("─", contentWidth-4))

	route := m.theme.Title.UnsetMarginBottom().Render(tx.Route(m.icons.Get(themes.IconArrow)))
	badge := m.theme.StatusBadge(tx.Status.IsSuccess()).Render(tx.Status.Label())

	beneficiary := field(strings.ToUpper(tx.BeneficiaryName), tx.AccountNumber)
	left := lipgloss.JoinVertical(lipgloss.Left,
		beneficiary,
		"",
		field("BERITA TRANSFER", tx.Remark),
		"",
		field("WAKTU DIBUAT", format.DateTime(tx.CreatedAt)),
	)

	right := lipgloss.JoinVertical(lipgloss.Left,
		field("NOMINAL", format.Currency(tx.Amount)),
		"",
		field("KODE UNIK", tx.UniqueCode),
	)

	columnWidth := (contentWidth - 8) / 2
	columns := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(columnWidth).Render(left),
		lipgloss.NewStyle().Width(columnWidth).Render(right),
	)

	sections := []string{
		idLine,
		divider,
		header,
		divider,
		lipgloss.JoinHorizontal(lipgloss.Center, route, "  ", badge),
		"",
		columns,
	}

	if !tx.Fee.IsZero() || tx.CompletedAt != "" {
		sections = append(sections, "")
		if !tx.Fee.IsZero() {
			sections = append(sections, field("BIAYA", format.Currency(tx.Fee)))
		}
		if tx.CompletedAt != "" {
			sections = append(sections, field("WAKTU SELESAI", format.DateTime(tx.CompletedAt)))
		}
	}

	hints := lipgloss.NewStyle().
		Foreground(m.theme.Muted).
		Render("[c] Salin ID  [Esc] Tutup  [q] Quit")
	sections = append(sections, "", hints)

	return m.theme.RoundedBox.
		BorderForeground(m.theme.StatusColor(tx.Status.IsSuccess())).
		Width(contentWidth).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// Resize updates the component dimensions.
func (m *TransactionDetailModel) Resize(width, height int) {
	m.width = width
	m.height = height
}
