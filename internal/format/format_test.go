package format

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "rfc3339 utc", input: "2024-01-05T00:00:00Z", want: "5 January 2024"},
		{name: "api format", input: "2021-03-17 21:01:06", want: "17 March 2021"},
		{name: "date only", input: "2024-12-31", want: "31 December 2024"},
		{name: "offset kept", input: "2024-02-01T23:30:00+07:00", want: "1 February 2024"},
		{name: "invalid", input: "not a date", want: Placeholder},
		{name: "empty", input: "", want: Placeholder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Date(tt.input))
		})
	}
}

func TestDateTime(t *testing.T) {
	assert.Equal(t, "17 March 2021 21:01", DateTime("2021-03-17 21:01:06"))
	assert.Equal(t, "5 January 2024 00:00", DateTime("2024-01-05T00:00:00Z"))
	assert.Equal(t, Placeholder, DateTime("bogus"))
}

func TestCurrency(t *testing.T) {
	tests := []struct {
		name   string
		amount decimal.Decimal
		want   string
	}{
		{name: "zero", amount: decimal.Zero, want: "Rp0"},
		{name: "hundreds", amount: decimal.NewFromInt(999), want: "Rp999"},
		{name: "thousands", amount: decimal.NewFromInt(50000), want: "Rp50.000"},
		{name: "millions", amount: decimal.NewFromInt(1234567), want: "Rp1.234.567"},
		{name: "rounds half up", amount: decimal.RequireFromString("10000.5"), want: "Rp10.001"},
		{name: "rounds down", amount: decimal.RequireFromString("10000.49"), want: "Rp10.000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Currency(tt.amount))
		})
	}
}
