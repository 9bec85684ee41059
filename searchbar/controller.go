// Package searchbar is the incremental search widget: a small state machine
// over the static catalog plus the bubbletea component that drives it.
package searchbar

import (
	"github.com/realitybuilders/rbew_search/search"
)

// Navigator performs the side effects of selecting a result.
type Navigator interface {
	Push(path string)        // route in place to an in-site path
	OpenExternal(url string) // open an absolute URL in a new context
}

// PointerWatcher delivers document-wide pointer-down events to fn until the
// returned release func is called.
type PointerWatcher interface {
	Watch(fn func(Point)) (release func())
}

// Point is a cell position on screen.
type Point struct {
	X, Y int
}

// Rect is the area the widget occupies on screen.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

// State is a snapshot of the widget for rendering.
type State struct {
	IsOpen  bool
	Query   string
	Results []search.Record
}

// Controller owns the open/query/results state of one search widget.
// It is not safe for concurrent use; all calls come from the UI loop.
type Controller struct {
	catalog []search.Record
	nav     Navigator
	watcher PointerWatcher

	isOpen  bool
	query   string
	results []search.Record
	bounds  Rect
	release func() // non-nil only while open
}

// NewController returns a closed controller over catalog.
func NewController(catalog []search.Record, nav Navigator, watcher PointerWatcher) *Controller {
	return &Controller{
		catalog: catalog,
		nav:     nav,
		watcher: watcher,
		results: []search.Record{},
	}
}

func (c *Controller) IsOpen() bool             { return c.isOpen }
func (c *Controller) Query() string            { return c.query }
func (c *Controller) Results() []search.Record { return c.results }
func (c *Controller) Bounds() Rect             { return c.bounds }

// State returns a copy of the current state.
func (c *Controller) State() State {
	results := make([]search.Record, len(c.results))
	copy(results, c.results)
	return State{IsOpen: c.isOpen, Query: c.query, Results: results}
}

// SetBounds records where the widget was last rendered.
func (c *Controller) SetBounds(r Rect) {
	c.bounds = r
}

// Open shows the panel with an empty query. Calling it while open does
// nothing.
func (c *Controller) Open() {
	if c.isOpen {
		return
	}
	c.reset()
	c.isOpen = true
	if c.watcher != nil {
		c.release = c.watcher.Watch(c.pointerDown)
	}
}

// Close hides the panel and clears the query and results.
func (c *Controller) Close() {
	if !c.isOpen {
		return
	}
	c.isOpen = false
	c.reset()
	c.unwatch()
}

// Toggle opens a closed panel and closes an open one.
func (c *Controller) Toggle() {
	if c.isOpen {
		c.Close()
		return
	}
	c.Open()
}

// SetQuery replaces the query and recomputes the results. It is ignored
// while the panel is closed.
func (c *Controller) SetQuery(text string) {
	if !c.isOpen {
		return
	}
	c.query = text
	c.results = search.ComputeResults(text, c.catalog)
}

// Select closes the panel and navigates to the record's target.
func (c *Controller) Select(r search.Record) {
	c.Close()
	if c.nav == nil {
		return
	}
	if r.IsExternal {
		c.nav.OpenExternal(r.Target)
		return
	}
	c.nav.Push(r.Target)
}

// Unmount releases the pointer subscription and resets the state.
func (c *Controller) Unmount() {
	c.Close()
}

func (c *Controller) pointerDown(p Point) {
	if !c.isOpen || c.bounds.Contains(p) {
		return
	}
	c.Close()
}

func (c *Controller) reset() {
	c.query = ""
	c.results = []search.Record{}
}

func (c *Controller) unwatch() {
	if c.release == nil {
		return
	}
	release := c.release
	c.release = nil
	release()
}
