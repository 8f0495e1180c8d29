package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Veraticus/transfers/internal/fetch"
	"github.com/Veraticus/transfers/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func budi() model.Transaction {
	return model.Transaction{
		ID:              "1",
		BeneficiaryName: "Budi",
		SenderBank:      "BCA",
		BeneficiaryBank: "BRI",
		Amount:          decimal.NewFromInt(50000),
		Status:          model.StatusSuccess,
		CreatedAt:       "2024-01-05T00:00:00Z",
	}
}

// blockingFetcher holds every fetch until release is closed.
func blockingFetcher(items []model.Transaction, err error) (*fetch.MockClient, chan struct{}) {
	release := make(chan struct{})
	mock := &fetch.MockClient{
		FetchFn: func(context.Context) ([]model.Transaction, error) {
			<-release
			return items, err
		},
	}
	return mock, release
}

func collect(t *testing.T, ch <-chan FetchState, want Status) FetchState {
	t.Helper()
	for {
		select {
		case st := <-ch:
			if st.Status == want {
				return st
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for status %s", want)
		}
	}
}

func TestStore_InitialState(t *testing.T) {
	s := New(fetch.NewMockClient(nil))

	st := s.State()
	assert.Equal(t, StatusIdle, st.Status)
	assert.Empty(t, st.Items)
	assert.NoError(t, st.Err)
	assert.Empty(t, st.ErrorMessage())
}

func TestStore_SuccessfulFetch(t *testing.T) {
	mock, release := blockingFetcher([]model.Transaction{budi()}, nil)
	s := New(mock)

	states, cancel := s.Subscribe()
	defer cancel()
	assert.Equal(t, StatusIdle, (<-states).Status)

	require.True(t, s.TriggerFetch(context.Background()))
	assert.Equal(t, StatusLoading, collect(t, states, StatusLoading).Status)
	assert.Equal(t, StatusLoading, s.State().Status)

	close(release)
	st := collect(t, states, StatusSucceeded)
	require.Len(t, st.Items, 1)
	assert.Equal(t, budi(), st.Items[0])
	assert.NoError(t, st.Err)
}

func TestStore_TriggerWhileLoadingIsNoop(t *testing.T) {
	mock, release := blockingFetcher([]model.Transaction{budi()}, nil)
	s := New(mock)

	require.True(t, s.TriggerFetch(context.Background()))
	assert.False(t, s.TriggerFetch(context.Background()))
	assert.False(t, s.TriggerFetch(context.Background()))

	close(release)
	s.Wait()

	assert.Equal(t, 1, mock.Calls())
	assert.Equal(t, StatusSucceeded, s.State().Status)
}

func TestStore_FailedFetchKeepsItems(t *testing.T) {
	mock := fetch.NewMockClient(nil)
	mock.Err = errors.New("connection refused")
	s := New(mock)

	st := s.Fetch(context.Background())
	assert.Equal(t, StatusFailed, st.Status)
	assert.Empty(t, st.Items)
	assert.EqualError(t, st.Err, "connection refused")
	assert.Equal(t, "connection refused", st.ErrorMessage())

	mock.Err = nil
	mock.Transactions = []model.Transaction{budi()}
	st = s.Fetch(context.Background())
	require.Equal(t, StatusSucceeded, st.Status)
	assert.Len(t, st.Items, 1)
	assert.NoError(t, st.Err, "success clears the previous error")

	mock.Err = errors.New("timeout")
	st = s.Fetch(context.Background())
	assert.Equal(t, StatusFailed, st.Status)
	assert.Len(t, st.Items, 1, "items from the last success survive a failure")
	assert.Equal(t, 3, mock.Calls())
}

func TestStore_RefetchKeepsOldItemsUntilResolved(t *testing.T) {
	mock := fetch.NewMockClient([]model.Transaction{budi()})
	s := New(mock)
	require.Equal(t, StatusSucceeded, s.Fetch(context.Background()).Status)

	release := make(chan struct{})
	mock.FetchFn = func(context.Context) ([]model.Transaction, error) {
		<-release
		return []model.Transaction{}, nil
	}

	require.True(t, s.TriggerFetch(context.Background()))
	loading := s.State()
	assert.Equal(t, StatusLoading, loading.Status)
	assert.Len(t, loading.Items, 1)

	close(release)
	s.Wait()
	assert.Empty(t, s.State().Items)
}

func TestStore_NilItemsBecomeEmpty(t *testing.T) {
	s := New(fetch.NewMockClient(nil))

	st := s.Fetch(context.Background())
	assert.Equal(t, StatusSucceeded, st.Status)
	assert.NotNil(t, st.Items)
	assert.Empty(t, st.Items)
}

func TestStore_SubscribeCancel(t *testing.T) {
	s := New(fetch.NewMockClient(nil))

	states, cancel := s.Subscribe()
	<-states
	cancel()
	cancel()

	_, ok := <-states
	assert.False(t, ok)

	// Publishing after cancel must not panic.
	s.Fetch(context.Background())
}

func TestStore_SlowSubscriberSeesLatest(t *testing.T) {
	s := New(fetch.NewMockClient([]model.Transaction{budi()}))

	states, cancel := s.Subscribe()
	defer cancel()

	s.Fetch(context.Background())

	st := <-states
	assert.Equal(t, StatusSucceeded, st.Status)
}

func TestStore_AttemptCountsStartedFetches(t *testing.T) {
	mock := fetch.NewMockClient(nil)
	mock.Err = errors.New("connection refused")
	s := New(mock)
	assert.Equal(t, 0, s.State().Attempt)

	first := s.Fetch(context.Background())
	second := s.Fetch(context.Background())

	assert.Equal(t, StatusFailed, first.Status)
	assert.Equal(t, StatusFailed, second.Status)
	assert.Equal(t, 1, first.Attempt)
	assert.Equal(t, 2, second.Attempt)
}

func TestStore_IgnoredTriggerKeepsAttempt(t *testing.T) {
	mock, release := blockingFetcher(nil, nil)
	s := New(mock)

	require.True(t, s.TriggerFetch(context.Background()))
	require.False(t, s.TriggerFetch(context.Background()))
	assert.Equal(t, 1, s.State().Attempt)

	close(release)
	s.Wait()
	assert.Equal(t, 1, s.State().Attempt)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "idle", StatusIdle.String())
	assert.Equal(t, "loading", StatusLoading.String())
	assert.Equal(t, "succeeded", StatusSucceeded.String())
	assert.Equal(t, "failed", StatusFailed.String())
	assert.Equal(t, "unknown", Status(99).String())
}
