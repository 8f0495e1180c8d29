package tui

import (
	"context"
	"errors"

	"github.com/Veraticus/transfers/internal/service"
	"github.com/Veraticus/transfers/internal/store"
	tea "github.com/charmbracelet/bubbletea"
)

var errNoClipboard = errors.New("no clipboard configured")

// waitForState blocks until the store publishes the next transition.
func waitForState(states <-chan store.FetchState) tea.Cmd {
	return func() tea.Msg {
		state, ok := <-states
		if !ok {
			return subscriptionClosedMsg{}
		}
		return stateChangedMsg{state: state}
	}
}

// triggerFetch asks the store for a fetch. The store ignores the request
// while one is already in flight.
func triggerFetch(ctx context.Context, source StateSource) tea.Cmd {
	return func() tea.Msg {
		return fetchTriggeredMsg{started: source.TriggerFetch(ctx)}
	}
}

// copyToClipboard writes id to the clipboard.
func copyToClipboard(clipboard service.Clipboard, id string) tea.Cmd {
	return func() tea.Msg {
		if clipboard == nil {
			return copyResultMsg{id: id, err: errNoClipboard}
		}
		return copyResultMsg{id: id, err: clipboard.WriteAll(id)}
	}
}
