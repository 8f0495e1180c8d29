package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Recorder captures TUI state changes and renders for debugging.
type Recorder struct {
	logFile  *os.File
	frameDir string
	frameNum int
	enabled  bool
}

// NewRecorder creates a TUI state recorder writing under dir. An empty dir
// uses a fresh directory in the system temp dir.
func NewRecorder(dir string) (*Recorder, error) {
	if dir == "" {
		dir = filepath.Join(os.TempDir(), fmt.Sprintf("transfers-record-%d", time.Now().Unix()))
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create recording directory: %w", err)
	}

	logPath := filepath.Join(dir, "tui.log")
	logFile, err := os.Create(filepath.Clean(logPath)) // #nosec G304 -- path built from the recording dir
	if err != nil {
		return nil, fmt.Errorf("failed to create recording log: %w", err)
	}

	r := &Recorder{
		enabled:  true,
		logFile:  logFile,
		frameDir: dir,
	}

	r.Log("TUI Recorder started at %s", dir)
	return r, nil
}

// Dir returns the directory frames are written to.
func (r *Recorder) Dir() string {
	return r.frameDir
}

// Frames returns how many frames were recorded.
func (r *Recorder) Frames() int {
	return r.frameNum
}

// RecordState captures the model after it handled msg.
func (r *Recorder) RecordState(model Model, msg tea.Msg) {
	if r == nil || !r.enabled {
		return
	}

	r.frameNum++

	state := model.FetchState()
	r.Log("\n=== Frame %d ===", r.frameNum)
	r.Log("Time: %s", time.Now().Format("15:04:05.000"))
	r.Log("Message Type: %T", msg)
	r.Log("Screen: %s", model.Screen())
	r.Log("Fetch: %s (%d items)", state.Status, len(state.Items))
	if err := state.ErrorMessage(); err != "" {
		r.Log("Error: %s", err)
	}
	r.Log("Query: %q Sort: %s Visible: %d", model.List().Query(), model.List().SortMode(), model.List().Len())

	view := model.View()
	framePath := filepath.Join(r.frameDir, fmt.Sprintf("frame-%04d.txt", r.frameNum))
	if err := os.WriteFile(framePath, []byte(view), 0600); err != nil {
		r.Log("Error saving frame: %v", err)
	}
}

// Log writes to the log file.
func (r *Recorder) Log(format string, args ...any) {
	if r == nil || !r.enabled || r.logFile == nil {
		return
	}

	if _, err := fmt.Fprintf(r.logFile, format+"\n", args...); err != nil {
		return
	}
	if err := r.logFile.Sync(); err != nil {
		return
	}
}

// Close closes the recorder.
func (r *Recorder) Close() {
	if r == nil || r.logFile == nil {
		return
	}
	r.Log("Recording complete. %d frames captured.", r.frameNum)
	_ = r.logFile.Close() // Best effort close
	r.enabled = false
}
