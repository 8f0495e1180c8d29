package tui

import (
	"context"
	"log/slog"

	"github.com/Veraticus/transfers/internal/service"
	"github.com/Veraticus/transfers/internal/store"
	"github.com/Veraticus/transfers/internal/tui/components"
	"github.com/Veraticus/transfers/internal/tui/themes"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Screen is what the TUI is currently showing.
type Screen int

// Screens.
const (
	ScreenLoading Screen = iota
	ScreenError
	ScreenList
	ScreenDetail
	ScreenSortPicker
	ScreenHelp
)

func (s Screen) String() string {
	switch s {
	case ScreenLoading:
		return "loading"
	case ScreenError:
		return "error"
	case ScreenList:
		return "list"
	case ScreenDetail:
		return "detail"
	case ScreenSortPicker:
		return "sort-picker"
	case ScreenHelp:
		return "help"
	default:
		return "unknown"
	}
}

// Model holds the main TUI state.
type Model struct {
	ctx         context.Context
	source      StateSource
	clipboard   service.Clipboard
	recorder    *Recorder
	states      <-chan store.FetchState
	unsubscribe func()
	theme       themes.Theme
	icons       themes.IconSet
	fetchState  store.FetchState
	list        components.TransactionListModel
	detail      components.TransactionDetailModel
	picker      components.SortPickerModel
	toast       components.ToastModel
	help        help.Model
	spinner     spinner.Model
	keymap      KeyMap
	width       int
	height      int
	showDetail  bool
	showPicker  bool
	showHelp    bool
	observed    bool
	quitting    bool
}

// New creates a model. Callers that do not hand the model to Run must call
// Close to end the store subscription.
func New(ctx context.Context, opts ...Option) Model {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return newModel(ctx, cfg)
}

// newModel creates a new model with the given configuration.
func newModel(ctx context.Context, cfg Config) Model {
	m := Model{
		ctx:       ctx,
		source:    cfg.Source,
		clipboard: cfg.Clipboard,
		recorder:  cfg.Recorder,
		theme:     cfg.Theme,
		icons:     cfg.Icons,
		keymap:    DefaultKeyMap(),
		help:      help.New(),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(cfg.Theme.Primary)),
		),
		list:   components.NewTransactionList(nil, cfg.SortMode, cfg.Theme, cfg.Icons),
		toast:  components.NewToast(cfg.Theme, cfg.Icons, cfg.ToastDuration),
		width:  cfg.Width,
		height: cfg.Height,
	}

	if cfg.Query != "" {
		m.list.SetQuery(cfg.Query)
	}
	if m.source != nil {
		m.states, m.unsubscribe = m.source.Subscribe()
	}
	m.handleResize()

	return m
}

// Close ends the store subscription.
func (m Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	if m.states != nil {
		cmds = append(cmds, waitForState(m.states))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	if m.recorder != nil {
		m.recorder.RecordState(next, msg)
	}
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cmd, handled := m.handleGlobalKeys(msg); handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.handleResize()
		return m, nil

	case stateChangedMsg:
		return m.handleStateChanged(msg.state)

	case subscriptionClosedMsg:
		m.states = nil
		return m, nil

	case fetchTriggeredMsg:
		if !msg.started {
			slog.Debug("Fetch request ignored, one is already in flight")
		}
		return m, nil

	case spinner.TickMsg:
		if m.Screen() != ScreenLoading && m.fetchState.Status != store.StatusLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case components.TransactionSelectedMsg:
		m.detail = components.NewTransactionDetailModel(msg.Transaction, m.theme, m.icons)
		m.detail.Resize(m.width, m.height-1)
		m.showDetail = true
		return m, nil

	case components.BackToListMsg:
		m.showDetail = false
		return m, nil

	case components.OpenSortPickerMsg:
		m.picker = components.NewSortPicker(m.list.SortMode(), m.theme, m.icons)
		m.showPicker = true
		return m, nil

	case components.SortSelectedMsg:
		m.list.SetSortMode(msg.Mode)
		m.showPicker = false
		slog.Debug("Sort mode changed", "mode", msg.Mode.String())
		return m, nil

	case components.SortPickerClosedMsg:
		m.showPicker = false
		return m, nil

	case components.RefreshRequestMsg:
		return m, m.refresh()

	case components.CopyRequestMsg:
		return m, copyToClipboard(m.clipboard, msg.ID)

	case copyResultMsg:
		cmd := m.handleCopyResult(msg)
		return m, cmd

	case components.ToastExpiredMsg:
		m.toast, _ = m.toast.Update(msg)
		return m, nil
	}

	// Delegate to the active component.
	var cmd tea.Cmd
	switch m.Screen() {
	case ScreenSortPicker:
		m.picker, cmd = m.picker.Update(msg)
	case ScreenDetail:
		m.detail, cmd = m.detail.Update(msg)
	case ScreenList:
		m.list, cmd = m.list.Update(msg)
	}

	return m, cmd
}

// handleGlobalKeys handles keys that work in any screen. It reports whether
// the key was consumed.
func (m *Model) handleGlobalKeys(msg tea.KeyMsg) (tea.Cmd, bool) {
	if key.Matches(msg, m.keymap.ForceQuit) {
		m.quitting = true
		return tea.Quit, true
	}

	// The search bar receives every other key while it has focus.
	if m.Screen() == ScreenList && m.list.Searching() {
		return nil, false
	}

	if m.showHelp {
		if key.Matches(msg, m.keymap.Help, m.keymap.Back, m.keymap.Quit) {
			m.showHelp = false
		}
		return nil, true
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return tea.Quit, true

	case key.Matches(msg, m.keymap.Help):
		m.showHelp = true
		return nil, true

	case key.Matches(msg, m.keymap.ClearScreen):
		return tea.ClearScreen, true

	case key.Matches(msg, m.keymap.Refresh) && m.Screen() == ScreenError:
		return m.refresh(), true
	}

	return nil, false
}

// handleStateChanged applies a store transition. The first idle state
// observed triggers the initial fetch.
func (m Model) handleStateChanged(state store.FetchState) (Model, tea.Cmd) {
	previous := m.fetchState
	m.fetchState = state

	var cmds []tea.Cmd
	if m.states != nil {
		cmds = append(cmds, waitForState(m.states))
	}

	first := !m.observed
	m.observed = true

	switch state.Status {
	case store.StatusIdle:
		if first && m.source != nil {
			cmds = append(cmds, triggerFetch(m.ctx, m.source))
		}

	case store.StatusLoading:
		m.list.SetRefreshing(true)
		cmds = append(cmds, m.spinner.Tick)

	case store.StatusSucceeded:
		m.list.SetRefreshing(false)
		m.list.SetItems(state.Items)

	case store.StatusFailed:
		m.list.SetRefreshing(false)
		// With earlier items still on screen the failure is reported as a
		// toast instead of replacing the list. The loading state in between
		// may never be observed, so a new failure is told apart by attempt.
		newFailure := previous.Status != store.StatusFailed || previous.Attempt != state.Attempt
		if !first && newFailure && len(state.Items) > 0 {
			cmds = append(cmds, m.toast.Show(components.ToastError, "Gagal memuat ulang", state.ErrorMessage()))
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleCopyResult(msg copyResultMsg) tea.Cmd {
	if msg.err != nil {
		slog.Warn("Failed to copy transaction id", "id", msg.id, "error", msg.err)
		return m.toast.Show(components.ToastError, "Gagal menyalin", msg.err.Error())
	}
	slog.Debug("Copied transaction id", "id", msg.id)
	return m.toast.Show(components.ToastSuccess, "Copied to Clipboard", "Text has been copied successfully!")
}

func (m Model) refresh() tea.Cmd {
	if m.source == nil {
		return nil
	}
	return triggerFetch(m.ctx, m.source)
}

// Screen returns what the model is currently showing.
func (m Model) Screen() Screen {
	switch {
	case m.showHelp:
		return ScreenHelp
	case m.showPicker:
		return ScreenSortPicker
	case m.showDetail:
		return ScreenDetail
	}

	switch m.fetchState.Status {
	case store.StatusSucceeded:
		return ScreenList
	case store.StatusFailed:
		if len(m.fetchState.Items) > 0 {
			return ScreenList
		}
		return ScreenError
	default:
		if len(m.fetchState.Items) > 0 {
			return ScreenList
		}
		return ScreenLoading
	}
}

// FetchState returns the last store state the model observed.
func (m Model) FetchState() store.FetchState {
	return m.fetchState
}

// List returns the transaction list component.
func (m Model) List() components.TransactionListModel {
	return m.list
}

// Detail returns the detail component.
func (m Model) Detail() components.TransactionDetailModel {
	return m.detail
}

// Toast returns the notification component.
func (m Model) Toast() components.ToastModel {
	return m.toast
}

// Quitting reports whether the user asked to quit.
func (m Model) Quitting() bool {
	return m.quitting
}

// handleResize adjusts component sizes when terminal resizes.
func (m *Model) handleResize() {
	// Status bar (1) and toast (3).
	m.list.Resize(m.width, max(10, m.height-4))
	m.detail.Resize(m.width, m.height-1)
	m.help.Width = m.width
}
