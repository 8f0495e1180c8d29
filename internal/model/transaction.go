// Package model defines the transfer records shown by the application.
package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ErrInvalidTimestamp is returned when a created_at value cannot be parsed.
var ErrInvalidTimestamp = errors.New("invalid timestamp")

// Status is the transfer status reported by the API.
type Status string

// StatusSuccess is the only status rendered as completed; every other value
// is treated as still being checked.
const StatusSuccess Status = "SUCCESS"

// IsSuccess reports whether the transfer completed.
func (s Status) IsSuccess() bool {
	return strings.EqualFold(string(s), string(StatusSuccess))
}

// Label returns the status badge text.
func (s Status) Label() string {
	if s.IsSuccess() {
		return "Berhasil"
	}
	return "Pengecekan"
}

// Transaction is a single money transfer. Values are never modified after
// they are fetched; views reorder copies of the slice instead.
type Transaction struct {
	Amount          decimal.Decimal `json:"amount" validate:"gte=0"`
	Fee             decimal.Decimal `json:"fee" validate:"gte=0"`
	ID              string          `json:"id" validate:"required"`
	SenderBank      string          `json:"sender_bank" validate:"required"`
	BeneficiaryBank string          `json:"beneficiary_bank" validate:"required"`
	BeneficiaryName string          `json:"beneficiary_name" validate:"required"`
	AccountNumber   string          `json:"account_number"`
	Remark          string          `json:"remark"`
	UniqueCode      string          `json:"unique_code"`
	Status          Status          `json:"status" validate:"required"`
	CreatedAt       string          `json:"created_at" validate:"required"`
	CompletedAt     string          `json:"completed_at,omitempty"`
}

// timestampLayouts are tried in order when parsing API timestamps.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	time.DateTime,
	"2006-01-02T15:04:05",
	time.DateOnly,
}

// ParseTimestamp parses a created_at style value.
func ParseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrInvalidTimestamp)
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, value)
}

// CreatedTime returns the parsed creation time of the transfer.
func (t Transaction) CreatedTime() (time.Time, error) {
	return ParseTimestamp(t.CreatedAt)
}

// Route returns the "sender -> beneficiary" bank pair used in list rows.
func (t Transaction) Route(arrow string) string {
	return fmt.Sprintf("%s %s %s", strings.ToUpper(t.SenderBank), arrow, strings.ToUpper(t.BeneficiaryBank))
}
