// Package app is the composition root for tabnav.
//
// # Overview
//
// Run wires configuration, preferences, logging, the navigation graph and
// the UI, then blocks until the user quits or the context is cancelled.
//
// # Startup
//
//  1. Load ~/.config/tabnav/config.toml (defaults when missing)
//  2. Open the JSON log file at the configured level
//  3. Load ~/.config/tabnav/prefs.toml (defaults on any error)
//  4. Build the graph, the friend directory and the screen registry
//  5. Create the navigation controller and register the logging hook
//  6. Open the start route, or the last used tab when none is given
//  7. Start the tab recorder and run the UI
//
// # Data Flow
//
//	┌──────────────┐
//	│ NewSession() │ Build everything
//	└──────┬───────┘
//	       ├─────> config.Load()        Read config
//	       ├─────> logging.Open()       JSON log file
//	       ├─────> prefs.Load()         Theme and last tab
//	       ├─────> nav.NewController()  Back stack at "home"
//	       └─────> openInitial()        Start route or last tab
//
//	┌──────────────┐
//	│    Run()     │
//	└──────┬───────┘
//	       ├─────> StartTabRecorder()   Persist last tab in background
//	       └─────> ui.Run()             Start TUI (blocks)
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Invalid config file or unknown log level
//   - Log file cannot be created
//   - Start route that names an unknown destination or has bad arguments
//
// Recoverable errors (logged):
//   - Unreadable prefs file (defaults are used)
//   - A stale last tab in prefs (the start tab is used)
//   - Failed prefs writes (retried with exponential backoff)
package app
