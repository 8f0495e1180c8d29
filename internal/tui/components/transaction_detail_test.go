package components

import (
	"testing"

	"github.com/Veraticus/transfers/internal/format"
	"github.com/Veraticus/transfers/internal/model"
	tuitest "github.com/Veraticus/transfers/internal/tui/testing"
	"github.com/Veraticus/transfers/internal/tui/themes"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func detailTransaction() model.Transaction {
	return model.Transaction{
		ID:              "FT16345",
		Amount:          decimal.NewFromInt(1450000),
		UniqueCode:      "341",
		Status:          model.StatusSuccess,
		SenderBank:      "bni",
		AccountNumber:   "1234567890",
		BeneficiaryName: "Jane Larson",
		BeneficiaryBank: "bca",
		Remark:          "sample remark",
		CreatedAt:       "2024-01-05 10:12:00",
	}
}

func TestTransactionDetail_View(t *testing.T) {
	detail := NewTransactionDetailModel(detailTransaction(), themes.Default, themes.UnicodeIcons)
	detail.Resize(100, 30)

	view := tuitest.StripANSI(detail.View())
	assert.Contains(t, view, "ID TRANSAKSI: #FT16345")
	assert.Contains(t, view, "DETAIL TRANSAKSI")
	assert.Contains(t, view, "Tutup")
	assert.Contains(t, view, "BNI → BCA")
	assert.Contains(t, view, "Berhasil")
	assert.Contains(t, view, "JANE LARSON")
	assert.Contains(t, view, "1234567890")
	assert.Contains(t, view, "sample remark")
	assert.Contains(t, view, "5 January 2024 10:12")
	assert.Contains(t, view, "Rp1.450.000")
	assert.Contains(t, view, "341")
	assert.NotContains(t, view, "BIAYA", "zero fee is not shown")
	assert.NotContains(t, view, "WAKTU SELESAI")
	assert.True(t, tuitest.ContainsInOrder(view, "ID TRANSAKSI", "DETAIL TRANSAKSI", "BERITA TRANSFER", "WAKTU DIBUAT"))
}

func TestTransactionDetail_ViewOptionalFields(t *testing.T) {
	tx := detailTransaction()
	tx.Status = "PENDING"
	tx.Remark = ""
	tx.Fee = decimal.NewFromInt(2500)
	tx.CompletedAt = "2024-01-05 10:15:00"

	detail := NewTransactionDetailModel(tx, themes.Default, themes.UnicodeIcons)
	detail.Resize(100, 30)

	view := tuitest.StripANSI(detail.View())
	assert.Contains(t, view, "Pengecekan")
	assert.Contains(t, view, "BIAYA")
	assert.Contains(t, view, "Rp2.500")
	assert.Contains(t, view, "WAKTU SELESAI")
	assert.Contains(t, view, "5 January 2024 10:15")
	assert.True(t, tuitest.ContainsInOrder(view, "BERITA TRANSFER", format.Placeholder))
}

func TestTransactionDetail_UnparseableDate(t *testing.T) {
	tx := detailTransaction()
	tx.CreatedAt = "yesterday"

	detail := NewTransactionDetailModel(tx, themes.Default, themes.UnicodeIcons)
	view := tuitest.StripANSI(detail.View())
	assert.True(t, tuitest.ContainsInOrder(view, "WAKTU DIBUAT", format.Placeholder))
	assert.NotContains(t, view, "yesterday")
}

func TestTransactionDetail_Keys(t *testing.T) {
	tests := []struct {
		want tea.Msg
		name string
		key  tea.KeyMsg
	}{
		{name: "c copies the id", key: tuitest.KeyPress("c"), want: CopyRequestMsg{ID: "FT16345"}},
		{name: "y copies the id", key: tuitest.KeyPress("y"), want: CopyRequestMsg{ID: "FT16345"}},
		{name: "esc closes", key: tuitest.KeyEsc(), want: BackToListMsg{}},
		{name: "backspace closes", key: tuitest.KeyBackspace(), want: BackToListMsg{}},
		{name: "h closes", key: tuitest.KeyPress("h"), want: BackToListMsg{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detail := NewTransactionDetailModel(detailTransaction(), themes.Default, themes.UnicodeIcons)
			_, cmd := detail.Update(tt.key)
			require.NotNil(t, cmd)
			assert.Equal(t, tt.want, cmd())
		})
	}
}

func TestTransactionDetail_IgnoresOtherKeys(t *testing.T) {
	detail := NewTransactionDetailModel(detailTransaction(), themes.Default, themes.UnicodeIcons)

	_, cmd := detail.Update(tuitest.KeyPress("x"))
	assert.Nil(t, cmd)
	assert.Equal(t, detailTransaction(), detail.Transaction())
}
