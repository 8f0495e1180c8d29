// Package testutil builds deterministic transfer fixtures for tests and the
// offline demo.
//
// Example usage:
//
//	transfers := testutil.NewTransferBuilder().
//		WithGenerated(50).
//		WithTransfer(testutil.Transfer("FT1", "Zara Putri").Pending()).
//		Build()
package testutil

import (
	"fmt"
	"time"

	"github.com/Veraticus/transfers/internal/model"
	"github.com/shopspring/decimal"
)

// Banks used by generated transfers.
var Banks = []string{"bca", "bni", "bri", "mandiri", "btn", "muamalat"}

// Names used by generated transfers.
var Names = []string{
	"Zara Putri",
	"Amir Hakim",
	"Budi Santoso",
	"Citra Lestari",
	"Dewi Anggraini",
	"Eko Prasetyo",
	"Fajar Nugroho",
	"Gita Maharani",
	"Hendra Wijaya",
	"Indah Permata",
}

// baseTime anchors generated created_at values.
var baseTime = time.Date(2024, time.January, 1, 8, 0, 0, 0, time.UTC)

// TransferBuilder assembles a slice of transfers in insertion order.
type TransferBuilder struct {
	transfers []model.Transaction
}

// NewTransferBuilder creates an empty builder.
func NewTransferBuilder() *TransferBuilder {
	return &TransferBuilder{}
}

// WithTransfer appends one transfer.
func (b *TransferBuilder) WithTransfer(tx TransferSpec) *TransferBuilder {
	b.transfers = append(b.transfers, tx.Transaction())
	return b
}

// WithGenerated appends n transfers cycling through Names and Banks. Every
// third transfer is pending. IDs continue after the transfers already added.
func (b *TransferBuilder) WithGenerated(n int) *TransferBuilder {
	start := len(b.transfers)
	for i := range n {
		seq := start + i
		spec := Transfer(fmt.Sprintf("FT%05d", seq+1), Names[seq%len(Names)]).
			Route(Banks[seq%len(Banks)], Banks[(seq+2)%len(Banks)]).
			Amount(int64(10000 + (seq*37%100)*2500)).
			CreatedAt(baseTime.Add(time.Duration(seq*13) * time.Hour))
		if seq%3 == 2 {
			spec = spec.Pending()
		}
		b.transfers = append(b.transfers, spec.Transaction())
	}
	return b
}

// Build returns a copy of the assembled transfers.
func (b *TransferBuilder) Build() []model.Transaction {
	out := make([]model.Transaction, len(b.transfers))
	copy(out, b.transfers)
	return out
}

// TransferSpec describes a single fixture transfer. Methods return modified
// copies so a spec can be reused as a template.
type TransferSpec struct {
	tx model.Transaction
}

// Transfer starts a successful bca to bni transfer of Rp10.000.
func Transfer(id, beneficiary string) TransferSpec {
	return TransferSpec{tx: model.Transaction{
		ID:              id,
		BeneficiaryName: beneficiary,
		SenderBank:      "bca",
		BeneficiaryBank: "bni",
		AccountNumber:   "1234567890",
		Remark:          "sample",
		UniqueCode:      "123",
		Amount:          decimal.NewFromInt(10000),
		Status:          model.StatusSuccess,
		CreatedAt:       baseTime.Format(time.DateTime),
	}}
}

// Route sets the sender and beneficiary banks.
func (s TransferSpec) Route(sender, beneficiary string) TransferSpec {
	s.tx.SenderBank = sender
	s.tx.BeneficiaryBank = beneficiary
	return s
}

// Amount sets the transfer amount in rupiah.
func (s TransferSpec) Amount(rupiah int64) TransferSpec {
	s.tx.Amount = decimal.NewFromInt(rupiah)
	return s
}

// Fee sets the transfer fee in rupiah.
func (s TransferSpec) Fee(rupiah int64) TransferSpec {
	s.tx.Fee = decimal.NewFromInt(rupiah)
	return s
}

// Pending marks the transfer as still being checked.
func (s TransferSpec) Pending() TransferSpec {
	s.tx.Status = "PENDING"
	s.tx.CompletedAt = ""
	return s
}

// CreatedAt sets the creation time using the API's layout.
func (s TransferSpec) CreatedAt(t time.Time) TransferSpec {
	s.tx.CreatedAt = t.Format(time.DateTime)
	if s.tx.Status.IsSuccess() {
		s.tx.CompletedAt = t.Add(5 * time.Minute).Format(time.DateTime)
	}
	return s
}

// RawCreatedAt sets created_at verbatim, including unparseable values.
func (s TransferSpec) RawCreatedAt(value string) TransferSpec {
	s.tx.CreatedAt = value
	return s
}

// Remark sets the transfer note.
func (s TransferSpec) Remark(remark string) TransferSpec {
	s.tx.Remark = remark
	return s
}

// Transaction returns the built record.
func (s TransferSpec) Transaction() model.Transaction {
	return s.tx
}
