package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/tabnav/internal/nav"
	"github.com/five82/tabnav/internal/prefs"
	"github.com/five82/tabnav/internal/screens"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func newTestSession(t *testing.T, opts Options) *Session {
	t.Helper()
	s, err := NewSession(opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestNewSession_DefaultsStartAtHome(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	cfg := writeConfig(t, dir, `log_path = "`+filepath.Join(dir, "tabnav.log")+`"`)

	s := newTestSession(t, Options{ConfigPath: cfg, PrefsPath: filepath.Join(dir, "prefs.toml")})

	assert.Equal(t, screens.HomeID, s.Controller.Current().Destination.ID)
	assert.Equal(t, 1, s.Controller.Depth())
	assert.Equal(t, "Nightfox", s.Prefs.Theme)
	assert.Len(t, s.Screens, len(s.Controller.Graph().Destinations()))
}

func TestNewSession_StartRouteFromConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir, `
start_route = "profile?name=Ada&mutual=2"
log_path = "`+filepath.Join(dir, "tabnav.log")+`"
`)

	s := newTestSession(t, Options{ConfigPath: cfg, PrefsPath: filepath.Join(dir, "prefs.toml")})

	cur := s.Controller.Current()
	assert.Equal(t, screens.ProfileID, cur.Destination.ID)
	assert.Equal(t, nav.Args{"name": "Ada", "mutual": 2}, cur.Args)
	assert.Equal(t, 2, s.Controller.Depth())
}

func TestNewSession_FlagOverridesConfigRoute(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir, `
start_route = "profile?name=Ada"
log_path = "`+filepath.Join(dir, "tabnav.log")+`"
`)

	s := newTestSession(t, Options{ConfigPath: cfg, PrefsPath: filepath.Join(dir, "prefs.toml"), StartRoute: "search"})
	assert.Equal(t, screens.SearchID, s.Controller.Current().Destination.ID)
}

func TestNewSession_HomeRouteKeepsSingleEntry(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir, `log_path = "`+filepath.Join(dir, "tabnav.log")+`"`)

	s := newTestSession(t, Options{ConfigPath: cfg, PrefsPath: filepath.Join(dir, "prefs.toml"), StartRoute: "/home"})
	assert.Equal(t, 1, s.Controller.Depth())
}

func TestNewSession_BadStartRouteFails(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir, `log_path = "`+filepath.Join(dir, "tabnav.log")+`"`)

	_, err := NewSession(Options{ConfigPath: cfg, PrefsPath: filepath.Join(dir, "prefs.toml"), StartRoute: "profile"})
	require.Error(t, err)
	assert.True(t, nav.IsArgumentMismatch(err))

	_, err = NewSession(Options{ConfigPath: cfg, PrefsPath: filepath.Join(dir, "prefs.toml"), StartRoute: "settings"})
	require.Error(t, err)
	assert.True(t, nav.IsUnknownDestination(err))
}

func TestNewSession_OpensLastTab(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir, `log_path = "`+filepath.Join(dir, "tabnav.log")+`"`)
	prefsPath := filepath.Join(dir, "prefs.toml")
	require.NoError(t, prefs.Save(prefsPath, prefs.Prefs{Theme: "Slate", LastTab: screens.FriendsID}))

	s := newTestSession(t, Options{ConfigPath: cfg, PrefsPath: prefsPath})
	assert.Equal(t, screens.FriendsID, s.Controller.Current().Destination.ID)
	assert.Equal(t, "Slate", s.Prefs.Theme)
}

func TestNewSession_StaleLastTabIgnored(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir, `log_path = "`+filepath.Join(dir, "tabnav.log")+`"`)
	prefsPath := filepath.Join(dir, "prefs.toml")
	require.NoError(t, prefs.Save(prefsPath, prefs.Prefs{Theme: "Slate", LastTab: "settings"}))

	s := newTestSession(t, Options{ConfigPath: cfg, PrefsPath: prefsPath})
	assert.Equal(t, screens.HomeID, s.Controller.Current().Destination.ID)
}

func TestNewSession_LogsNavigations(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "tabnav.log")
	cfg := writeConfig(t, dir, `log_path = "`+logPath+`"`)

	s := newTestSession(t, Options{ConfigPath: cfg, PrefsPath: filepath.Join(dir, "prefs.toml")})
	_, err := s.Controller.Navigate(screens.SearchID, nil, s.Controller.Graph().TabOptions()...)
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"to":"search"`)
}

func TestTabRecorder_PersistsActiveTab(t *testing.T) {
	dir := t.TempDir()
	prefsPath := filepath.Join(dir, "prefs.toml")
	graph, err := screens.NewGraph()
	require.NoError(t, err)
	ctrl := nav.NewController(graph)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	StartTabRecorder(ctx, ctrl, prefsPath, nil)

	_, err = ctrl.Navigate(screens.FriendsID, nil, graph.TabOptions()...)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		p, _ := prefs.Load(prefsPath)
		return p.LastTab == screens.FriendsID
	}, 2*time.Second, 10*time.Millisecond)
}

func TestTabRecorder_PersistsReturnToStartTab(t *testing.T) {
	prefsPath := filepath.Join(t.TempDir(), "prefs.toml")
	graph, err := screens.NewGraph()
	require.NoError(t, err)
	ctrl := nav.NewController(graph)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	StartTabRecorder(ctx, ctrl, prefsPath, nil)

	_, err = ctrl.Navigate(screens.SearchID, nil, graph.TabOptions()...)
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		p, _ := prefs.Load(prefsPath)
		return p.LastTab == screens.SearchID
	}, 2*time.Second, 10*time.Millisecond)

	_, err = ctrl.Navigate(screens.HomeID, nil, graph.TabOptions()...)
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		p, _ := prefs.Load(prefsPath)
		return p.LastTab == screens.HomeID
	}, 2*time.Second, 10*time.Millisecond)
}

func TestTabRecorder_RetriesFailedSave(t *testing.T) {
	var (
		mu    sync.Mutex
		calls []string
	)
	orig := saveTab
	saveTab = func(_ string, tab string) error {
		mu.Lock()
		defer mu.Unlock()
		calls = append(calls, tab)
		if len(calls) == 1 {
			return errors.New("disk full")
		}
		return nil
	}
	origRetry := retryInterval
	retryInterval = 5 * time.Millisecond
	t.Cleanup(func() {
		saveTab = orig
		retryInterval = origRetry
	})

	graph, err := screens.NewGraph()
	require.NoError(t, err)
	ctrl := nav.NewController(graph)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	StartTabRecorder(ctx, ctrl, "", nil)

	_, err = ctrl.Navigate(screens.SearchID, nil, graph.TabOptions()...)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(calls) == 2
	}, 2*time.Second, 10*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{screens.SearchID, screens.SearchID}, calls)
}

func TestCalculateBackoff(t *testing.T) {
	baseInterval := 2 * time.Second

	tests := []struct {
		name     string
		failures int
		want     time.Duration
	}{
		{"zero failures", 0, 2 * time.Second},
		{"negative failures", -1, 2 * time.Second},
		{"one failure", 1, 4 * time.Second},
		{"two failures", 2, 8 * time.Second},
		{"three failures", 3, 16 * time.Second},
		{"four failures capped", 4, 30 * time.Second},
		{"many failures capped", 10, 30 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calculateBackoff(tt.failures, baseInterval))
		})
	}
}
