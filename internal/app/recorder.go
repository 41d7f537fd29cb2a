package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/five82/tabnav/internal/nav"
	"github.com/five82/tabnav/internal/prefs"
)

const maxBackoff = 30 * time.Second

// retryInterval is the base delay before a failed save is retried.
var retryInterval = 2 * time.Second

// saveTab persists the active tab. Swapped in tests.
var saveTab = func(path, tab string) error {
	return prefs.Update(path, func(p *prefs.Prefs) { p.LastTab = tab })
}

// StartTabRecorder launches a background goroutine that writes the active
// tab to the prefs file whenever it changes. Failed writes are retried with
// exponential backoff. It returns immediately.
func StartTabRecorder(ctx context.Context, ctrl *nav.Controller, prefsPath string, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	graph := ctrl.Graph()
	// The tab active when the recorder starts counts as already saved.
	saved := graph.TabRoot(ctrl.Entries())
	tabs := make(chan string, 1)
	cancel := ctrl.Subscribe(func(nav.Entry) {
		tab := graph.TabRoot(ctrl.Entries())
		select {
		case tabs <- tab:
		default:
			select {
			case <-tabs:
			default:
			}
			select {
			case tabs <- tab:
			default:
			}
		}
	})

	go func() {
		defer cancel()

		pending := ""
		failures := 0
		var retry <-chan time.Time

		for {
			select {
			case <-ctx.Done():
				return
			case tab := <-tabs:
				if tab == saved {
					pending = ""
					continue
				}
				pending = tab
			case <-retry:
			}
			if pending == "" {
				continue
			}
			if err := saveTab(prefsPath, pending); err != nil {
				failures++
				wait := calculateBackoff(failures, retryInterval)
				logger.Warn("save last tab failed",
					slog.String("tab", pending),
					slog.String("error", err.Error()),
					slog.Duration("retry_in", wait),
				)
				retry = time.After(wait)
				continue
			}
			logger.Debug("saved last tab", slog.String("tab", pending))
			saved, pending, failures, retry = pending, "", 0, nil
		}
	}()
}

// calculateBackoff doubles base for each consecutive failure, capped at
// maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	backoff := base
	for i := 0; i < failures; i++ {
		backoff *= 2
		if backoff >= maxBackoff {
			return maxBackoff
		}
	}
	return backoff
}
