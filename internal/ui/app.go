package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/tabnav/internal/nav"
	"github.com/five82/tabnav/internal/prefs"
	"github.com/five82/tabnav/internal/screens"
)

// Options configures the UI.
type Options struct {
	Context    context.Context
	Controller *nav.Controller
	Screens    screens.Registry
	ThemeName  string
	PrefsPath  string
	Logger     *slog.Logger
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx       context.Context
	ctrl      *nav.Controller
	screens   screens.Registry
	keys      keyMap
	logger    *slog.Logger
	prefsPath string

	theme  Theme
	width  int
	height int
	ready  bool

	// Latest entry delivered by the controller subscription.
	current     nav.Entry
	routes      chan nav.Entry
	unsubscribe func()

	showHelp  bool
	showStack bool
}

// New creates the root model and subscribes it to the controller.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	m := Model{
		ctx:       ctx,
		ctrl:      opts.Controller,
		screens:   opts.Screens,
		keys:      DefaultKeyMap(),
		logger:    logger,
		prefsPath: prefsPath,
		theme:     GetTheme(themeName),
		current:   opts.Controller.Current(),
		routes:    make(chan nav.Entry, 1),
	}
	routes := m.routes
	m.unsubscribe = opts.Controller.Subscribe(func(e nav.Entry) {
		// Keep only the newest entry; the program reads it asynchronously.
		for {
			select {
			case routes <- e:
				return
			default:
				select {
				case <-routes:
				default:
				}
			}
		}
	})
	return m
}

// Close removes the model's controller subscription.
func (m Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		waitForRoute(m.routes),
		tea.SetWindowTitle(windowTitle(m.current)),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case routeMsg:
		m.current = nav.Entry(msg)
		return m, tea.Batch(waitForRoute(m.routes), tea.SetWindowTitle(windowTitle(m.current)))

	case screens.NavigateMsg:
		m.navigate(msg.ID, msg.Args, msg.Options...)
		return m, nil

	case screens.BackMsg:
		m.ctrl.PopBackStack()
		return m, nil
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.showStack {
		return m.renderStack()
	}
	return m.renderMain()
}

// handleKey routes a key to the overlays, the global bindings or the
// current screen, in that order.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}
	if m.showStack {
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		m.showStack = false
		return m, nil
	}

	ctx := m.screenContext()
	screen, ok := m.screens.Lookup(ctx.Entry.Destination.ID)
	if ok {
		if c, capturing := screen.(screens.InputCapturer); capturing && c.CapturesInput(ctx) {
			if msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
			return m, screen.Update(ctx, msg)
		}
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.Stack):
		m.showStack = true
		return m, nil
	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs(func(p *prefs.Prefs) { p.Theme = m.theme.Name })
		return m, nil
	case key.Matches(msg, m.keys.Back):
		m.ctrl.PopBackStack()
		return m, nil
	case key.Matches(msg, m.keys.NextTab):
		m.cycleTab(1)
		return m, nil
	case key.Matches(msg, m.keys.PrevTab):
		m.cycleTab(-1)
		return m, nil
	}
	if i, ok := m.keys.tabIndex(msg); ok {
		m.selectTab(i)
		return m, nil
	}

	if ok {
		return m, screen.Update(ctx, msg)
	}
	return m, nil
}

func (m Model) navigate(id string, args nav.Args, opts ...nav.Option) {
	if _, err := m.ctrl.Navigate(id, args, opts...); err != nil {
		var navErr *nav.NavError
		if errors.As(err, &navErr) {
			m.logger.Debug("navigation rejected", slog.String("op", navErr.Op), slog.String("dest", navErr.Dest))
		}
	}
}

func (m Model) savePrefs(change func(*prefs.Prefs)) {
	if err := prefs.Update(m.prefsPath, change); err != nil {
		m.logger.Warn("save prefs failed", slog.String("error", err.Error()))
	}
}

func (m Model) screenContext() screens.Context {
	w, h := m.contentSize()
	return screens.Context{
		Entry:  m.ctrl.Current(),
		Store:  m.ctrl,
		Styles: m.theme.ScreenStyles(),
		Width:  w,
		Height: h,
	}
}

// contentSize is the space left for the screen inside its panel.
func (m Model) contentSize() (int, int) {
	w := m.width - 4
	h := m.height - chromeHeight - 2
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return w, h
}

// renderMain renders header, screen, tab bar and footer.
func (m Model) renderMain() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	b.WriteString("\n")
	b.WriteString(m.renderTabBar())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderContent() string {
	styles := m.theme.Styles()
	ctx := m.screenContext()
	w, h := m.contentSize()

	var body string
	if screen, ok := m.screens.Lookup(ctx.Entry.Destination.ID); ok {
		body = screen.View(ctx)
	} else {
		body = styles.DangerText.Render(fmt.Sprintf("No screen registered for %q", ctx.Entry.Destination.ID))
	}
	return styles.Panel.
		BorderForeground(lipgloss.Color(m.theme.BorderFocus)).
		Width(w + 2).
		Height(h).
		Render(body)
}

func windowTitle(e nav.Entry) string {
	if e.Destination.ID == "" {
		return "tabnav"
	}
	return "tabnav · " + e.Destination.Label
}

// Messages

type routeMsg nav.Entry

// Commands

func waitForRoute(routes <-chan nav.Entry) tea.Cmd {
	return func() tea.Msg {
		return routeMsg(<-routes)
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx
// is cancelled.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Controller == nil {
		return fmt.Errorf("ui requires a navigation controller")
	}
	m := New(opts)
	defer m.Close()
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
