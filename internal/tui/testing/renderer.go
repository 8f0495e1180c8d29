// Package testing provides test utilities for TUI components.
package testing

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultDrainWait bounds how long Drain waits for commands to produce
// messages. It is shorter than a spinner frame so animations do not keep
// Settle busy.
const DefaultDrainWait = 50 * time.Millisecond

const maxSettleRounds = 16

// TestRenderer drives a Bubble Tea model without a real terminal.
type TestRenderer struct {
	// Output contains the last rendered view
	Output string

	// Messages contains all messages sent to the model
	Messages []tea.Msg

	// Commands contains all non-nil commands returned by Update calls
	Commands []tea.Cmd
}

// NewTestRenderer creates a new test renderer.
func NewTestRenderer() *TestRenderer {
	return &TestRenderer{}
}

// Update sends a message to the model and captures the result.
func (r *TestRenderer) Update(model tea.Model, msg tea.Msg) (tea.Model, tea.Cmd) {
	r.Messages = append(r.Messages, msg)

	newModel, cmd := model.Update(msg)
	if cmd != nil {
		r.Commands = append(r.Commands, cmd)
	}

	r.Output = newModel.View()
	return newModel, cmd
}

// Send applies every message in order and returns the final model.
func (r *TestRenderer) Send(model tea.Model, msgs ...tea.Msg) tea.Model {
	for _, msg := range msgs {
		model, _ = r.Update(model, msg)
	}
	return model
}

// Settle feeds the messages produced by pending commands back into the model
// until no command yields a message within wait. It returns the final model
// and every message that was fed back.
func (r *TestRenderer) Settle(model tea.Model, wait time.Duration) (tea.Model, []tea.Msg) {
	var fed []tea.Msg
	for round := 0; round < maxSettleRounds && len(r.Commands) > 0; round++ {
		pending := r.Commands
		r.Commands = nil

		produced := Drain(tea.Batch(pending...), wait)
		if len(produced) == 0 {
			break
		}
		for _, msg := range produced {
			model, _ = r.Update(model, msg)
			fed = append(fed, msg)
		}
	}
	return model, fed
}

// PlainOutput returns the last view without styling.
func (r *TestRenderer) PlainOutput() string {
	return StripANSI(r.Output)
}

// Lines returns the output split by newlines.
func (r *TestRenderer) Lines() []string {
	return strings.Split(r.Output, "\n")
}

// Drain runs cmd, expanding batches, and returns the messages produced within
// wait. Commands that take longer, such as ticks, are abandoned.
func Drain(cmd tea.Cmd, wait time.Duration) []tea.Msg {
	done := make(chan struct{})
	defer close(done)

	results := make(chan tea.Msg)
	pending := 0
	run := func(c tea.Cmd) {
		if c == nil {
			return
		}
		pending++
		go func() {
			msg := c()
			select {
			case results <- msg:
			case <-done:
			}
		}()
	}
	run(cmd)

	timer := time.NewTimer(wait)
	defer timer.Stop()

	var out []tea.Msg
	for pending > 0 {
		select {
		case msg := <-results:
			pending--
			switch msg := msg.(type) {
			case nil:
			case tea.BatchMsg:
				for _, c := range msg {
					run(c)
				}
			default:
				out = append(out, msg)
			}
		case <-timer.C:
			return out
		}
	}
	return out
}

// Find returns the first message of type T.
func Find[T any](msgs []tea.Msg) (T, bool) {
	for _, msg := range msgs {
		if t, ok := msg.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}
