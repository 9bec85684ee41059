package searchbar

import (
	tea "github.com/charmbracelet/bubbletea"
)

// MouseWatcher is the terminal PointerWatcher. Mouse reporting is switched
// on while a subscription is live and switched off once it is released.
type MouseWatcher struct {
	handler func(Point)
	gen     int  // bumped on every Watch
	enabled bool // mouse reporting state last requested from the terminal
}

// Watch subscribes fn to left-button presses, replacing any earlier
// subscription. Releasing a replaced subscription is a no-op.
func (w *MouseWatcher) Watch(fn func(Point)) (release func()) {
	w.gen++
	w.handler = fn
	gen := w.gen
	return func() {
		if w.gen != gen {
			return
		}
		w.gen++
		w.handler = nil
	}
}

// Active reports whether a subscription is live.
func (w *MouseWatcher) Active() bool {
	return w.handler != nil
}

// Dispatch forwards a left-button press to the live subscription, if any.
func (w *MouseWatcher) Dispatch(msg tea.MouseMsg) {
	if w.handler == nil || msg.Type != tea.MouseLeft {
		return
	}
	w.handler(Point{X: msg.X, Y: msg.Y})
}

// Flush returns the command that brings terminal mouse reporting in line
// with the subscription state, or nil when nothing changed.
func (w *MouseWatcher) Flush() tea.Cmd {
	switch {
	case w.Active() && !w.enabled:
		w.enabled = true
		return tea.EnableMouseCellMotion
	case !w.Active() && w.enabled:
		w.enabled = false
		return tea.DisableMouse
	}
	return nil
}
