package ui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/tabnav/internal/nav"
	"github.com/five82/tabnav/internal/prefs"
	"github.com/five82/tabnav/internal/screens"
)

func newTestModel(t *testing.T) (Model, *nav.Controller) {
	t.Helper()
	graph, err := screens.NewGraph()
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}
	ctrl := nav.NewController(graph)
	dir := screens.NewDirectory([]string{"Ada", "Grace", "Linus", "Ken"})
	m := New(Options{
		Controller: ctrl,
		Screens:    screens.NewRegistry(dir),
		PrefsPath:  filepath.Join(t.TempDir(), "prefs.toml"),
	})
	t.Cleanup(m.Close)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	return next.(Model), ctrl
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func routes(ctrl *nav.Controller) []string {
	var out []string
	for _, e := range ctrl.Entries() {
		out = append(out, e.Route())
	}
	return out
}

func TestView_LoadingBeforeSize(t *testing.T) {
	graph, err := screens.NewGraph()
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}
	m := New(Options{Controller: nav.NewController(graph), Screens: screens.Registry{}})
	t.Cleanup(m.Close)
	if got := m.View(); got != "Loading..." {
		t.Fatalf("View = %q, want Loading...", got)
	}
}

func TestNumberKeysSwitchTabs(t *testing.T) {
	m, ctrl := newTestModel(t)

	m, _ = press(t, m, keyRunes("2"))
	if got := ctrl.Current().Destination.ID; got != screens.SearchID {
		t.Fatalf("current = %q, want search", got)
	}
	m, _ = press(t, m, keyRunes("3"))
	if got := strings.Join(routes(ctrl), " "); got != "home friends" {
		t.Fatalf("stack = %q, want %q", got, "home friends")
	}
	_, _ = press(t, m, keyRunes("1"))
	if ctrl.Depth() != 1 || ctrl.Current().Destination.ID != screens.HomeID {
		t.Fatalf("stack = %v, want [home]", routes(ctrl))
	}
}

func TestTabSwitchRestoresHistory(t *testing.T) {
	m, ctrl := newTestModel(t)

	m, _ = press(t, m, keyRunes("3"))
	next, _ := m.Update(screens.NavigateMsg{ID: screens.ProfileID, Args: screens.Profile{Name: "Ada"}.Args()})
	m, _ = press(t, next.(Model), keyRunes("2"))
	if got := strings.Join(routes(ctrl), " "); got != "home search" {
		t.Fatalf("stack = %q, want %q", got, "home search")
	}

	_, _ = press(t, m, keyRunes("3"))
	if got := strings.Join(routes(ctrl), " "); got != "home friends profile?mutual=0&name=Ada" {
		t.Fatalf("stack = %q after restore", got)
	}
}

func TestCycleTabWraps(t *testing.T) {
	m, ctrl := newTestModel(t)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if got := ctrl.Current().Destination.ID; got != screens.FriendsID {
		t.Fatalf("current = %q, want friends", got)
	}
	_, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if got := ctrl.Current().Destination.ID; got != screens.HomeID {
		t.Fatalf("current = %q, want home", got)
	}
}

func TestBackKeyPopsUntilRoot(t *testing.T) {
	m, ctrl := newTestModel(t)

	m, _ = press(t, m, keyRunes("3"))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if ctrl.Depth() != 1 {
		t.Fatalf("depth = %d, want 1", ctrl.Depth())
	}
	_, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if ctrl.Depth() != 1 {
		t.Fatalf("depth after back at root = %d, want 1", ctrl.Depth())
	}
}

func TestScreenIntents(t *testing.T) {
	m, ctrl := newTestModel(t)

	m, _ = press(t, m, keyRunes("3"))
	_, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("enter on friends returned nil cmd")
	}
	msg, ok := cmd().(screens.NavigateMsg)
	if !ok || msg.ID != screens.ProfileID {
		t.Fatalf("cmd msg = %#v, want NavigateMsg to profile", msg)
	}

	next, _ := m.Update(msg)
	m = next.(Model)
	if ctrl.Current().Destination.ID != screens.ProfileID {
		t.Fatalf("current = %q, want profile", ctrl.Current().Destination.ID)
	}

	_, _ = m.Update(screens.BackMsg{})
	if ctrl.Current().Destination.ID != screens.FriendsID {
		t.Fatalf("current after BackMsg = %q, want friends", ctrl.Current().Destination.ID)
	}
}

func TestSearchCapturesGlobalKeys(t *testing.T) {
	m, ctrl := newTestModel(t)

	m, _ = press(t, m, keyRunes("2"))
	m, _ = press(t, m, keyRunes("/"))
	m, _ = press(t, m, keyRunes("q"))
	m, _ = press(t, m, keyRunes("3"))

	if got, _ := ctrl.State("query"); got != "q3" {
		t.Fatalf("query = %v, want q3", got)
	}
	if ctrl.Current().Destination.ID != screens.SearchID {
		t.Fatalf("number key switched tabs while typing")
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	_, _ = press(t, m, keyRunes("3"))
	if ctrl.Current().Destination.ID != screens.FriendsID {
		t.Fatalf("current = %q, want friends after editing ended", ctrl.Current().Destination.ID)
	}
}

func TestOverlaysOpenAndClose(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = press(t, m, keyRunes("?"))
	if !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Fatalf("help overlay missing")
	}
	m, _ = press(t, m, keyRunes("x"))
	if m.showHelp {
		t.Fatalf("help overlay did not close")
	}

	m, _ = press(t, m, keyRunes("3"))
	m, _ = press(t, m, keyRunes("s"))
	view := m.View()
	if !strings.Contains(view, "Back Stack (2)") || !strings.Contains(view, "friends") {
		t.Fatalf("stack overlay = %q", view)
	}
	m, _ = press(t, m, keyRunes("1"))
	if m.showStack {
		t.Fatalf("stack overlay did not close")
	}
}

func TestMainViewShowsTabsAndRoute(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = press(t, m, keyRunes("3"))

	view := m.View()
	for _, want := range []string{"tabnav", "1 ⌂ Home", "2 ⌕ Search", "3 ☺ Friends", "depth 2"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestFailedNavigationShowsError(t *testing.T) {
	m, ctrl := newTestModel(t)

	next, _ := m.Update(screens.NavigateMsg{ID: "settings"})
	m = next.(Model)
	if ctrl.Depth() != 1 {
		t.Fatalf("depth = %d, want unchanged 1", ctrl.Depth())
	}
	if !strings.Contains(m.View(), "unknown destination") {
		t.Fatalf("footer does not show the error")
	}
}

func TestCycleThemeSavesPrefs(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = press(t, m, keyRunes("T"))
	if m.theme.Name != "Kanagawa" {
		t.Fatalf("theme = %q, want Kanagawa", m.theme.Name)
	}
	p, err := prefs.Load(m.prefsPath)
	if err != nil {
		t.Fatalf("prefs.Load: %v", err)
	}
	if p.Theme != "Kanagawa" {
		t.Fatalf("saved theme = %q, want Kanagawa", p.Theme)
	}
}

func TestRouteMsgUpdatesCurrent(t *testing.T) {
	m, ctrl := newTestModel(t)

	e, err := ctrl.Navigate(screens.SearchID, nil, ctrl.Graph().TabOptions()...)
	if err != nil {
		t.Fatalf("Navigate: %v", err)
	}
	delivered := <-m.routes
	if delivered.ID != e.ID {
		t.Fatalf("subscription delivered %q, want %q", delivered.ID, e.ID)
	}
	next, cmd := m.Update(routeMsg(delivered))
	if cmd == nil {
		t.Fatalf("routeMsg returned nil cmd, want re-subscribe")
	}
	if next.(Model).current.ID != e.ID {
		t.Fatalf("current not updated")
	}
}

func TestCycleThemeSavesToDefaultPrefs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	graph, err := screens.NewGraph()
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}
	m := New(Options{Controller: nav.NewController(graph), Screens: screens.Registry{}})
	t.Cleanup(m.Close)

	m, _ = press(t, m, keyRunes("T"))

	path := filepath.Join(home, ".config", "tabnav", "prefs.toml")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("prefs file not written at default path: %v", err)
	}
	p, err := prefs.Load("")
	if err != nil {
		t.Fatalf("prefs.Load: %v", err)
	}
	if p.Theme != m.theme.Name {
		t.Fatalf("saved theme = %q, want %q", p.Theme, m.theme.Name)
	}
}

func TestCloseStopsRouteDelivery(t *testing.T) {
	m, ctrl := newTestModel(t)
	m.Close()

	if _, err := ctrl.Navigate(screens.SearchID, nil); err != nil {
		t.Fatalf("Navigate: %v", err)
	}
	select {
	case e := <-m.routes:
		t.Fatalf("route %q delivered after Close", e.Route())
	default:
	}
}
