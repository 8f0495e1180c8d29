// Package clipboard writes transfer ids to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned when no clipboard utility is available.
var ErrUnsupported = errors.New("clipboard not supported on this system")

// System writes through the platform clipboard (pbcopy, xclip, xsel,
// wl-copy or the Windows API).
type System struct{}

// NewSystem returns the platform clipboard.
func NewSystem() System {
	return System{}
}

// WriteAll implements service.Clipboard.
func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}
	slog.Debug("Copied to clipboard", "length", len(text))
	return nil
}

// Memory is an in-process clipboard for tests and headless runs.
type Memory struct {
	// Err, when set, is returned by every write.
	Err error

	mu      sync.Mutex
	content string
	writes  int
}

// WriteAll implements service.Clipboard.
func (m *Memory) WriteAll(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.writes++
	if m.Err != nil {
		return m.Err
	}
	m.content = text
	return nil
}

// Content returns the last successfully written text.
func (m *Memory) Content() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.content
}

// Writes returns how many writes were attempted.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}
