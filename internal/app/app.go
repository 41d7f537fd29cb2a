package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/five82/tabnav/internal/config"
	"github.com/five82/tabnav/internal/logging"
	"github.com/five82/tabnav/internal/nav"
	"github.com/five82/tabnav/internal/prefs"
	"github.com/five82/tabnav/internal/screens"
	"github.com/five82/tabnav/internal/ui"
)

// Options configure the tabnav application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/tabnav/prefs.toml
	StartRoute string // overrides start_route from the config
	LogLevel   string // overrides log_level from the config
}

// Session holds everything wired for one run of the UI.
type Session struct {
	Config     config.Config
	Prefs      prefs.Prefs
	Logger     *logging.Logger
	Controller *nav.Controller
	Screens    screens.Registry
	PrefsPath  string
}

// Close releases the log file.
func (s *Session) Close() error {
	return s.Logger.Close()
}

// Run boots the tabnav TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	s, err := NewSession(opts)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	StartTabRecorder(ctx, s.Controller, s.PrefsPath, s.Logger.Logger)

	s.Logger.Info("tabnav starting", slog.String("route", s.Controller.Current().Route()))
	err = ui.Run(ui.Options{
		Context:    ctx,
		Controller: s.Controller,
		Screens:    s.Screens,
		ThemeName:  s.Prefs.Theme,
		PrefsPath:  s.PrefsPath,
		Logger:     s.Logger.Logger,
	})
	s.Logger.Info("tabnav stopped", slog.Int("navigations", s.Controller.Snapshot().Navigations))
	return err
}

// NewSession loads config and prefs, opens the log and builds the
// navigation controller positioned at the initial route.
func NewSession(opts Options) (*Session, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if lvl := strings.TrimSpace(opts.LogLevel); lvl != "" {
		cfg.LogLevel = lvl
	}

	logger, err := logging.Open(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	graph, err := screens.NewGraph()
	if err != nil {
		_ = logger.Close()
		return nil, fmt.Errorf("build graph: %w", err)
	}
	dir := screens.NewDirectory(cfg.Friends)

	ctrl := nav.NewController(graph, nav.WithLogger(logger.Logger))
	ctrl.OnNavigated(func(ev nav.Event) {
		logger.Info("navigation",
			slog.String("from", ev.From.Route()),
			slog.String("to", ev.To.Route()),
			slog.Bool("restored", ev.Restored),
			slog.Bool("reused", ev.Reused),
			slog.Bool("popped", ev.Popped),
		)
	})

	route := strings.TrimSpace(opts.StartRoute)
	if route == "" {
		route = cfg.StartRoute
	}
	if err := openInitial(ctrl, route, userPrefs.LastTab); err != nil {
		_ = logger.Close()
		return nil, err
	}

	return &Session{
		Config:     cfg,
		Prefs:      userPrefs,
		Logger:     logger,
		Controller: ctrl,
		Screens:    screens.NewRegistry(dir),
		PrefsPath:  opts.PrefsPath,
	}, nil
}

// openInitial moves the controller to the start route, or to the last used
// tab when no route is given. A bad route is an error; a stale last tab is
// ignored.
func openInitial(ctrl *nav.Controller, route, lastTab string) error {
	graph := ctrl.Graph()
	if route != "" {
		id, _, err := nav.ParseRoute(route)
		if err != nil {
			return fmt.Errorf("start route: %w", err)
		}
		if id == graph.Start().ID {
			_, err = ctrl.NavigateRoute(route, nav.PopUpTo(id, false, false))
		} else {
			_, err = ctrl.NavigateRoute(route)
		}
		if err != nil {
			return fmt.Errorf("start route: %w", err)
		}
		return nil
	}

	lastTab = strings.TrimSpace(lastTab)
	if lastTab == "" || lastTab == graph.Start().ID {
		return nil
	}
	for _, d := range graph.TopLevel() {
		if d.ID == lastTab {
			_, _ = ctrl.Navigate(lastTab, nil, graph.TabOptions()...)
			return nil
		}
	}
	return nil
}
