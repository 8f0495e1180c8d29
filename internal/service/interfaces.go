// Package service defines the interfaces shared between the application's layers.
package service

import (
	"context"

	"github.com/Veraticus/transfers/internal/model"
)

// TransactionFetcher retrieves the full transfer list from the remote endpoint.
// One call is one network request; implementations never retry.
type TransactionFetcher interface {
	Fetch(ctx context.Context) ([]model.Transaction, error)
}

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteAll(text string) error
}
