package fetch

import (
	"context"
	"sync"

	"github.com/Veraticus/transfers/internal/model"
)

// MockClient is a service.TransactionFetcher for tests.
type MockClient struct {
	// FetchFn controls the result; when nil, Transactions and Err are returned.
	FetchFn func(ctx context.Context) ([]model.Transaction, error)

	Err          error
	Transactions []model.Transaction

	mu    sync.Mutex
	calls int
}

// NewMockClient creates a mock returning transactions.
func NewMockClient(transactions []model.Transaction) *MockClient {
	return &MockClient{Transactions: transactions}
}

// Fetch implements service.TransactionFetcher.
func (m *MockClient) Fetch(ctx context.Context) ([]model.Transaction, error) {
	m.mu.Lock()
	m.calls++
	fn := m.FetchFn
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Transactions, nil
}

// Calls returns how many times Fetch was invoked.
func (m *MockClient) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}
