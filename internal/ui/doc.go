// Package ui hosts the navigation graph in a Bubble Tea program.
//
// # Architecture Overview
//
// The Model renders the screen for the current back stack entry inside a
// bordered panel, with a header above it and the tab bar and footer below
// it. All navigation goes through the nav.Controller; the model never edits
// the back stack itself.
//
// # Package Structure
//
//   - app.go: Model, key routing, message handling and the Run function
//   - tabbar.go: Tab bar rendering and tab selection
//   - header.go: Header (route, depth, saved tabs) and footer (hints, errors)
//   - help.go: Help overlay built from the key map
//   - stackview.go: Back stack inspector overlay
//   - overlay.go: Centered modal used by both overlays
//   - keys.go: Global key bindings
//   - theme.go: Palettes and derived lipgloss styles
//   - style_helpers.go: Shared-background rendering for header and tab bar
//
// # Route Updates
//
// The model subscribes to the controller when it is created. Each committed
// navigation is pushed into a one-slot channel, replacing any entry the
// program has not read yet, and delivered to Update as a routeMsg. Rendering
// reads the controller directly, so a dropped intermediate entry only skips
// a window title change.
//
// # Key Routing
//
// Keys are dispatched in this order:
//
//  1. An open overlay consumes the key and closes
//  2. A screen that captures input (search while typing) gets every key
//     except ctrl+c
//  3. Global bindings: quit, help, stack, theme, back, tab cycling
//  4. Tab number keys 1-3
//  5. The current screen
//
// # Tab Switching
//
// Selecting a tab navigates with the graph's tab options: pop to the start
// destination saving the popped entries, launch single top, and restore any
// saved entries for the selected tab. Each tab therefore keeps its own
// history. The active tab is the lowest top-level entry above the start
// entry, or the start entry itself.
//
// # Errors
//
// Rejected navigations leave the stack unchanged. The controller records the
// error and the footer shows it until the next successful navigation.
//
// # Theming
//
// T cycles through the built-in themes. The choice is written to the prefs
// file immediately.
package ui
