package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Veraticus/transfers/internal/format"
	"github.com/Veraticus/transfers/internal/model"
	"github.com/Veraticus/transfers/internal/tui/themes"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/schollz/progressbar/v3"
)

// Output formats for the list command.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// Printer writes transfers to a terminal or a pipe.
type Printer struct {
	writer    io.Writer
	errWriter io.Writer
	icons     themes.IconSet
}

// NewPrinter creates a printer. Nil writers default to stdout and stderr.
func NewPrinter(writer, errWriter io.Writer, icons themes.IconSet) *Printer {
	if writer == nil {
		writer = os.Stdout
	}
	if errWriter == nil {
		errWriter = os.Stderr
	}
	return &Printer{writer: writer, errWriter: errWriter, icons: icons}
}

// Print writes items in the given output format.
func (p *Printer) Print(items []model.Transaction, total int, outputFormat string) error {
	switch outputFormat {
	case "", FormatTable:
		return p.PrintTable(items, total)
	case FormatJSON:
		return p.PrintJSON(items)
	default:
		return fmt.Errorf("unknown output format %q (valid: table, json)", outputFormat)
	}
}

// PrintTable writes items as an aligned table followed by a count line.
func (p *Printer) PrintTable(items []model.Transaction, total int) error {
	if len(items) == 0 {
		if _, err := fmt.Fprintln(p.writer, SubtleStyle.Render("Tidak ada transaksi")); err != nil {
			return fmt.Errorf("failed to write empty result: %w", err)
		}
		return nil
	}

	arrow := p.icons.Get(themes.IconArrow)
	rows := make([][]string, 0, len(items))
	for _, tx := range items {
		rows = append(rows, []string{
			tx.ID,
			tx.Route(arrow),
			tx.BeneficiaryName,
			format.Currency(tx.Amount),
			format.Date(tx.CreatedAt),
			tx.Status.Label(),
		})
	}

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderHeader(false).
		Headers("ID", "TRANSFER", "PENERIMA", "NOMINAL", "TANGGAL", "STATUS").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return TableHeaderStyle
			case col == 5:
				return TableCellStyle.Inherit(StatusStyle(items[row].Status.IsSuccess()))
			default:
				return TableCellStyle
			}
		})

	if _, err := fmt.Fprintln(p.writer, t.String()); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}
	summary := fmt.Sprintf("%d dari %d transaksi", len(items), total)
	if _, err := fmt.Fprintln(p.writer, SubtleStyle.Render(summary)); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}

// PrintJSON writes items as an indented JSON array.
func (p *Printer) PrintJSON(items []model.Transaction) error {
	if items == nil {
		items = []model.Transaction{}
	}
	encoder := json.NewEncoder(p.writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(items); err != nil {
		return fmt.Errorf("failed to encode transactions: %w", err)
	}
	return nil
}

// PrintDetail writes the detail card of one transfer.
func (p *Printer) PrintDetail(tx model.Transaction) error {
	field := func(label, value string) string {
		if strings.TrimSpace(value) == "" {
			value = format.Placeholder
		}
		return LabelStyle.Render(label) + "\n" + value
	}

	lines := []string{
		BoldStyle.Render(tx.Route(p.icons.Get(themes.IconArrow))) + "  " +
			StatusStyle(tx.Status.IsSuccess()).Render(tx.Status.Label()),
		"",
		field(strings.ToUpper(tx.BeneficiaryName), tx.AccountNumber),
		"",
		field("NOMINAL", format.Currency(tx.Amount)),
		"",
		field("BERITA TRANSFER", tx.Remark),
		"",
		field("KODE UNIK", tx.UniqueCode),
		"",
		field("WAKTU DIBUAT", format.DateTime(tx.CreatedAt)),
	}
	if !tx.Fee.IsZero() {
		lines = append(lines, "", field("BIAYA", format.Currency(tx.Fee)))
	}
	if tx.CompletedAt != "" {
		lines = append(lines, "", field("WAKTU SELESAI", format.DateTime(tx.CompletedAt)))
	}

	card := RenderBox("ID TRANSAKSI: #"+tx.ID, strings.Join(lines, "\n"))
	if _, err := fmt.Fprintln(p.writer, card); err != nil {
		return fmt.Errorf("failed to write detail: %w", err)
	}
	return nil
}

// Success writes a success notice to the error stream so stdout stays clean
// for piping.
func (p *Printer) Success(message string) {
	_, _ = fmt.Fprintln(p.errWriter, FormatSuccess(message))
}

// Spinner is an indeterminate progress indicator on the error stream.
type Spinner struct {
	bar *progressbar.ProgressBar
}

// StartSpinner shows description with an animated spinner until Stop.
func (p *Printer) StartSpinner(description string) *Spinner {
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(p.errWriter),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetDescription("[cyan]"+description+"[reset]"),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)
	_ = bar.RenderBlank()
	return &Spinner{bar: bar}
}

// Stop removes the spinner.
func (s *Spinner) Stop() {
	if s == nil || s.bar == nil {
		return
	}
	_ = s.bar.Finish()
}
