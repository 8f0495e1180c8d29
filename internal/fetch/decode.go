package fetch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Veraticus/transfers/internal/model"
	"github.com/shopspring/decimal"
)

// flexString accepts a JSON string or number. The API sends ids and unique
// codes as either, depending on the record.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", data)
	}
	*f = flexString(n.String())
	return nil
}

// wireTransaction mirrors one record of the API payload.
type wireTransaction struct {
	Amount          decimal.Decimal `json:"amount"`
	Fee             decimal.Decimal `json:"fee"`
	ID              flexString      `json:"id"`
	AccountNumber   flexString      `json:"account_number"`
	UniqueCode      flexString      `json:"unique_code"`
	SenderBank      string          `json:"sender_bank"`
	BeneficiaryBank string          `json:"beneficiary_bank"`
	BeneficiaryName string          `json:"beneficiary_name"`
	Remark          string          `json:"remark"`
	Status          string          `json:"status"`
	CreatedAt       string          `json:"created_at"`
	CompletedAt     string          `json:"completed_at"`
}

func (w wireTransaction) toModel() model.Transaction {
	return model.Transaction{
		ID:              string(w.ID),
		SenderBank:      w.SenderBank,
		BeneficiaryBank: w.BeneficiaryBank,
		BeneficiaryName: w.BeneficiaryName,
		AccountNumber:   string(w.AccountNumber),
		Remark:          w.Remark,
		UniqueCode:      string(w.UniqueCode),
		Amount:          w.Amount,
		Fee:             w.Fee,
		Status:          model.Status(strings.TrimSpace(w.Status)),
		CreatedAt:       w.CreatedAt,
		CompletedAt:     w.CompletedAt,
	}
}

// decodeTransactions accepts either a JSON array of records or a JSON object
// keyed by transaction id. Order is preserved in both cases.
func decodeTransactions(body []byte) ([]model.Transaction, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty body")
	}

	var wire []wireTransaction
	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(trimmed, &wire); err != nil {
			return nil, fmt.Errorf("failed to decode array: %w", err)
		}
	case '{':
		records, err := decodeKeyedObject(trimmed)
		if err != nil {
			return nil, err
		}
		wire = records
	default:
		return nil, fmt.Errorf("expected JSON array or object, got %q", string(trimmed[0]))
	}

	transactions := make([]model.Transaction, 0, len(wire))
	for i, w := range wire {
		tx := w.toModel()
		if err := tx.Validate(); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		transactions = append(transactions, tx)
	}

	return transactions, nil
}

// decodeKeyedObject walks the object token by token so the records keep the
// order they have in the document.
func decodeKeyedObject(data []byte) ([]wireTransaction, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("failed to decode object: %w", err)
	}

	var records []wireTransaction
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to decode object key: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", keyTok)
		}

		var rec wireTransaction
		if err := dec.Decode(&rec); err != nil {
			return nil, fmt.Errorf("failed to decode record %q: %w", key, err)
		}
		if rec.ID == "" {
			rec.ID = flexString(key)
		}
		records = append(records, rec)
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("failed to decode object: %w", err)
	}

	return records, nil
}
