package tui

import (
	"context"
	"time"

	"github.com/Veraticus/transfers/internal/model"
	"github.com/Veraticus/transfers/internal/service"
	"github.com/Veraticus/transfers/internal/store"
	"github.com/Veraticus/transfers/internal/tui/components"
	"github.com/Veraticus/transfers/internal/tui/themes"
)

// StateSource is the request lifecycle the TUI renders. *store.Store
// implements it.
type StateSource interface {
	State() store.FetchState
	TriggerFetch(ctx context.Context) bool
	Subscribe() (<-chan store.FetchState, func())
}

// Config holds TUI configuration.
type Config struct {
	Source        StateSource
	Clipboard     service.Clipboard
	Recorder      *Recorder
	Theme         themes.Theme
	Icons         themes.IconSet
	Query         string
	SortMode      model.SortMode
	ToastDuration time.Duration
	Width         int
	Height        int
	AltScreen     bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:         themes.Default,
		Icons:         themes.UnicodeIcons,
		SortMode:      model.SortNone,
		ToastDuration: components.DefaultToastDuration,
		Width:         80,
		Height:        24,
		AltScreen:     true,
	}
}

// WithSource sets the request lifecycle the TUI observes.
func WithSource(source StateSource) Option {
	return func(c *Config) {
		c.Source = source
	}
}

// WithClipboard sets the clipboard used by the copy action.
func WithClipboard(clipboard service.Clipboard) Option {
	return func(c *Config) {
		c.Clipboard = clipboard
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithIcons sets the glyphs used for arrows, radios and badges.
func WithIcons(icons themes.IconSet) Option {
	return func(c *Config) {
		c.Icons = icons
	}
}

// WithSortMode sets the initial sort mode.
func WithSortMode(mode model.SortMode) Option {
	return func(c *Config) {
		c.SortMode = mode
	}
}

// WithQuery sets the initial search query.
func WithQuery(query string) Option {
	return func(c *Config) {
		c.Query = query
	}
}

// WithToastDuration sets how long notifications stay visible.
func WithToastDuration(d time.Duration) Option {
	return func(c *Config) {
		c.ToastDuration = d
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithAltScreen controls whether the program takes over the whole terminal.
func WithAltScreen(enabled bool) Option {
	return func(c *Config) {
		c.AltScreen = enabled
	}
}

// WithRecorder records every message and frame for debugging.
func WithRecorder(recorder *Recorder) Option {
	return func(c *Config) {
		c.Recorder = recorder
	}
}
