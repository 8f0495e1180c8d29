// Package format renders dates and amounts the way the transfer views show them.
package format

import (
	"fmt"

	"github.com/Veraticus/transfers/internal/model"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Placeholder is rendered for values that cannot be formatted.
const Placeholder = "-"

var months = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Date formats a created_at style timestamp as "5 January 2024". The
// timestamp's own offset is used, so "2024-01-05T00:00:00Z" stays on the 5th.
func Date(value string) string {
	t, err := model.ParseTimestamp(value)
	if err != nil {
		return Placeholder
	}
	return fmt.Sprintf("%d %s %d", t.Day(), months[t.Month()-1], t.Year())
}

// DateTime formats a timestamp as "5 January 2024 10:12".
func DateTime(value string) string {
	t, err := model.ParseTimestamp(value)
	if err != nil {
		return Placeholder
	}
	return fmt.Sprintf("%d %s %d %02d:%02d", t.Day(), months[t.Month()-1], t.Year(), t.Hour(), t.Minute())
}

// Currency formats an amount in rupiah with Indonesian digit grouping and no
// decimal places, e.g. "Rp50.000".
func Currency(amount decimal.Decimal) string {
	// Printers keep internal buffers, so one per call keeps this safe for
	// concurrent use.
	p := message.NewPrinter(language.Indonesian)
	return "Rp" + p.Sprintf("%d", amount.Round(0).IntPart())
}
