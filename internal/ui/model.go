package ui

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"wordfind/internal/config"
	"wordfind/internal/history"
	"wordfind/internal/search"
	"wordfind/internal/ui/input"
	inputtypes "wordfind/internal/ui/input/types"
	"wordfind/internal/ui/state"
	"wordfind/internal/ui/viewmodels"
	"wordfind/internal/ui/views"
)

// ReadyMarker is printed once the first frame is drawn when ready
// signalling is enabled
const ReadyMarker = "__READY__"

// Options holds the collaborators of the UI model
type Options struct {
	Config      *config.Config
	Controller  *search.Controller
	History     history.Recorder // may be nil
	Logger      *slog.Logger
	InitialWord string
	SignalReady bool
}

// Model represents the UI state
type Model struct {
	ctx    context.Context
	config *config.Config
	state  *state.AppState // centralized state
	log    *slog.Logger

	// UI-specific state not in AppState
	width       int
	height      int
	help        help.Model
	keys        KeyMap
	spinner     spinner.Model
	initialWord string
	signalReady bool

	controller   *search.Controller
	history      history.Recorder
	renderer     *views.Renderer
	viewModel    *viewmodels.ViewModel
	inputHandler *input.Handler
	pager        *PagerOps
}

// NewModel creates a new UI model. The model is the controller's renderer:
// create the controller with the model, then attach it with SetController.
func NewModel(ctx context.Context, opts Options) *Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	appState := state.NewAppState(cfg.UI.SampleWords)

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))

	m := &Model{
		ctx:          ctx,
		config:       cfg,
		state:        appState,
		log:          logger.With("component", "ui"),
		help:         help.New(),
		keys:         DefaultKeyMap(),
		spinner:      sp,
		initialWord:  opts.InitialWord,
		signalReady:  opts.SignalReady,
		controller:   opts.Controller,
		history:      opts.History,
		renderer:     views.NewRenderer(),
		inputHandler: input.New(),
		pager:        NewPagerOps(),
	}

	m.viewModel = viewmodels.NewViewModel(appState)
	m.viewModel.SetHelp(m.help, m.keys)
	m.inputHandler.SetPlaceholder(appState.Placeholder())

	return m
}

// SetController attaches the search controller
func (m *Model) SetController(c *search.Controller) {
	m.controller = c
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.pager.SetProgram(p)
}

// Render implements search.Renderer. The controller calls it from inside
// Update, so it only records the state.
func (m *Model) Render(s search.ViewState) {
	m.state.View = s
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.placeholderTick()}
	if m.initialWord != "" {
		word := m.initialWord
		cmds = append(cmds, func() tea.Msg { return submitMsg{word: word} })
	}
	return tea.Batch(cmds...)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.viewModel.SetHelp(m.help, m.keys)
		return m, nil

	case tea.KeyMsg:
		ctx := &input.ModelContext{State: m.state}
		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	default:
		return m.handleNonKeyboardMsg(msg)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.state.InPager {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	if m.history != nil {
		m.state.Recent = m.history.Recent()
	}

	m.viewModel.SetDimensions(m.width, m.height)
	ti := m.inputHandler.TextInput()
	vs := m.viewModel.BuildViewState(ti.View(), m.spinner.View(), m.inputHandler.Focused())

	out := m.renderer.Render(vs)
	if m.signalReady {
		out += "\n" + ReadyMarker
	}
	return out
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.UpdateTextAction:
		m.state.SetInput(a.Text, m.validate(a.Text))
		return nil

	case inputtypes.CancelTextAction:
		m.state.SetInput("", false)
		return nil

	case inputtypes.SubmitTextAction:
		return m.startSearch(a.Text)

	case inputtypes.ToggleHelpAction:
		m.state.ToggleHelp()
		return nil

	case inputtypes.ScrollHelpAction:
		m.state.ScrollHelp(a.Delta)
		return nil

	case inputtypes.OpenPagerAction:
		return m.openPager()

	case inputtypes.QuitAction:
		if m.controller != nil {
			m.controller.Cancel()
		}
		return tea.Quit

	case inputtypes.ChangeModeAction:
		return nil

	default:
		m.log.Debug("unhandled action", slog.String("action", action.Type()))
		return nil
	}
}

func (m *Model) validate(raw string) bool {
	if m.controller == nil {
		return false
	}
	return m.controller.Validate(raw)
}

// startSearch begins a submission and returns the command running its lookup
func (m *Model) startSearch(raw string) tea.Cmd {
	if m.controller == nil {
		return nil
	}

	req, _, ok := m.controller.Begin(m.ctx, raw)
	if !ok {
		return nil
	}

	controller := m.controller
	lookupCmd := func() tea.Msg {
		result, err := controller.Fetch(req)
		return lookupDoneMsg{req: req, result: result, err: err}
	}
	return tea.Batch(lookupCmd, m.spinner.Tick)
}

func (m *Model) openPager() tea.Cmd {
	if !m.state.HasResults() {
		return nil
	}
	content := m.renderer.RenderEntry(viewmodels.FullEntryView(m.state.View.Entry))
	pager := m.pager

	return func() tea.Msg {
		if pager.program != nil {
			pager.program.Send(pauseRenderingMsg{})
		}
		err := pager.Show(content)
		if pager.program != nil {
			pager.program.Send(resumeRenderingMsg{})
		}
		return pagerMsg{err: err}
	}
}

func (m *Model) placeholderTick() tea.Cmd {
	interval := m.config.UI.PlaceholderInterval.Std()
	if interval <= 0 {
		return nil
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return placeholderTickMsg(t)
	})
}

// handleNonKeyboardMsg processes non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case submitMsg:
		m.inputHandler.ChangeMode(inputtypes.ModeNormal, msg.word)
		m.state.SetInput(msg.word, m.validate(msg.word))
		return m, m.startSearch(msg.word)

	case lookupDoneMsg:
		if m.controller == nil {
			return m, nil
		}
		// Stale responses leave the state alone; the controller logs them
		m.controller.Complete(msg.req, msg.result, msg.err)
		return m, nil

	case spinner.TickMsg:
		// Spin only while a lookup is in flight
		if m.state.View.Phase != search.PhaseLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case placeholderTickMsg:
		if m.state.AdvancePlaceholder() {
			m.inputHandler.SetPlaceholder(m.state.Placeholder())
		}
		return m, m.placeholderTick()

	case EventMsg:
		// Domain events only trigger a redraw; history is read in View
		m.log.Debug("event received", slog.String("type", string(msg.Event.Type())))
		return m, nil

	case pagerMsg:
		if msg.err != nil {
			m.log.Warn("pager failed", slog.String("error", msg.err.Error()))
			m.state.StatusMessage = "Pager unavailable"
			return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{} })
		}
		return m, nil

	case pauseRenderingMsg:
		m.state.InPager = true
		return m, nil

	case resumeRenderingMsg:
		m.state.InPager = false
		return m, nil

	case clearStatusMsg:
		m.state.StatusMessage = ""
		return m, nil

	default:
		// Cursor blink and other text input messages
		return m, m.inputHandler.Update(msg)
	}
}
