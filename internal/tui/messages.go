package tui

import "github.com/Veraticus/transfers/internal/store"

// stateChangedMsg carries a request lifecycle transition from the store.
type stateChangedMsg struct {
	state store.FetchState
}

// subscriptionClosedMsg is sent when the store subscription ends.
type subscriptionClosedMsg struct{}

// fetchTriggeredMsg reports whether a fetch request started a new fetch.
type fetchTriggeredMsg struct {
	started bool
}

// copyResultMsg reports the outcome of a clipboard write.
type copyResultMsg struct {
	err error
	id  string
}
