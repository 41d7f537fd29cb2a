package nav

import (
	"log/slog"
	"slices"
	"sync"
	"time"
)

// PopUpToOptions describes the pop performed before a navigation.
type PopUpToOptions struct {
	Target    string
	Inclusive bool
	SaveState bool
}

// Options are the recognized navigation flags.
type Options struct {
	PopUpTo         *PopUpToOptions
	LaunchSingleTop bool
	RestoreState    bool
}

// Option configures a single Navigate call.
type Option func(*Options)

// PopUpTo pops the stack down to target before pushing.
func PopUpTo(target string, inclusive, saveState bool) Option {
	return func(o *Options) {
		o.PopUpTo = &PopUpToOptions{Target: target, Inclusive: inclusive, SaveState: saveState}
	}
}

// LaunchSingleTop suppresses a duplicate entry when the target is on top.
func LaunchSingleTop() Option {
	return func(o *Options) { o.LaunchSingleTop = true }
}

// RestoreState reattaches a saved segment for the target when one exists.
func RestoreState() Option {
	return func(o *Options) { o.RestoreState = true }
}

// With applies a prebuilt Options value.
func With(opts Options) Option {
	return func(o *Options) {
		if opts.PopUpTo != nil {
			p := *opts.PopUpTo
			o.PopUpTo = &p
		}
		o.LaunchSingleTop = o.LaunchSingleTop || opts.LaunchSingleTop
		o.RestoreState = o.RestoreState || opts.RestoreState
	}
}

// Event describes a committed navigation for side-effect hooks.
type Event struct {
	From     Entry
	To       Entry
	Restored bool // a saved segment was reattached
	Reused   bool // launch single top kept the existing top entry
	Popped   bool // the change came from a back or pop operation
}

// Snapshot is a copy of the controller state for display.
type Snapshot struct {
	Entries     []Entry
	Current     Entry
	LastError   error
	UpdatedAt   time.Time
	Navigations int
}

// Depth returns the number of entries.
func (s Snapshot) Depth() int {
	return len(s.Entries)
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithLogger sets the logger used for navigation diagnostics.
func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

type observer struct {
	id int
	fn func(Entry)
}

// Controller is the single mutable entry point to the back stack. All
// mutations are serialized and observers only ever see committed state.
type Controller struct {
	mu          sync.Mutex
	graph       *Graph
	stack       *BackStack
	observers   []observer
	nextID      int
	hooks       []func(Event)
	logger      *slog.Logger
	lastErr     error
	updatedAt   time.Time
	navigations int
	now         func() time.Time
}

// NewController creates a controller whose stack holds the graph's start
// destination.
func NewController(graph *Graph, opts ...ControllerOption) *Controller {
	c := &Controller{
		graph:  graph,
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	start := graph.Start()
	args, _ := start.Args.Validate(nil)
	c.stack = NewBackStack(NewEntry(start, args))
	c.updatedAt = c.now()
	return c
}

// Graph returns the navigation graph.
func (c *Controller) Graph() *Graph {
	return c.graph
}

// Current returns the top entry.
func (c *Controller) Current() Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	cur, _ := c.stack.Current()
	return cur.Clone()
}

// Entries returns the back stack, bottom first.
func (c *Controller) Entries() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stack.Entries()
}

// Depth returns the number of entries on the back stack.
func (c *Controller) Depth() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stack.Len()
}

// HasSaved reports whether a saved segment exists for id.
func (c *Controller) HasSaved(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stack.HasSaved(id)
}

// SavedIDs returns the destinations with saved segments.
func (c *Controller) SavedIDs() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stack.SavedIDs()
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	cur, _ := c.stack.Current()
	return Snapshot{
		Entries:     c.stack.Entries(),
		Current:     cur.Clone(),
		LastError:   c.lastErr,
		UpdatedAt:   c.updatedAt,
		Navigations: c.navigations,
	}
}

// Subscribe registers fn to be called with the current entry after every
// committed change. The returned function removes the subscription.
func (c *Controller) Subscribe(fn func(Entry)) (cancel func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextID++
	id := c.nextID
	c.observers = append(c.observers, observer{id: id, fn: fn})
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, o := range c.observers {
			if o.id == id {
				c.observers = append(c.observers[:i:i], c.observers[i+1:]...)
				return
			}
		}
	}
}

// OnNavigated registers a side-effect hook run after observers.
func (c *Controller) OnNavigated(hook func(Event)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hooks = append(c.hooks, hook)
}

// Navigate moves to the destination id. The change is all-or-nothing: on
// error the back stack is left exactly as it was.
func (c *Controller) Navigate(id string, args Args, opts ...Option) (Entry, error) {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	c.mu.Lock()
	from, _ := c.stack.Current()
	next, ev, err := c.plan(id, args, o)
	if err != nil {
		c.fail(err)
		c.mu.Unlock()
		return Entry{}, err
	}
	ev.From = from
	return c.commit(next, ev), nil
}

// NavigateRoute parses a route such as "profile?name=Ada" and navigates to
// it, coercing argument strings to their declared kinds.
func (c *Controller) NavigateRoute(route string, opts ...Option) (Entry, error) {
	id, values, err := ParseRoute(route)
	if err != nil {
		err = newError("navigate", route, err)
		c.mu.Lock()
		c.fail(err)
		c.mu.Unlock()
		return Entry{}, err
	}
	dest, ok := c.graph.Lookup(id)
	if !ok {
		err = newError("navigate", id, ErrUnknownDestination)
		c.mu.Lock()
		c.fail(err)
		c.mu.Unlock()
		return Entry{}, err
	}
	args, err := dest.Args.Coerce(values)
	if err != nil {
		err = newError("navigate", id, err)
		c.mu.Lock()
		c.fail(err)
		c.mu.Unlock()
		return Entry{}, err
	}
	return c.Navigate(id, args, opts...)
}

// PopBackStack removes the top entry. It returns false, leaving the stack
// unchanged, when only the root entry remains.
func (c *Controller) PopBackStack() bool {
	c.mu.Lock()
	if c.stack.Len() <= 1 {
		c.mu.Unlock()
		return false
	}
	next := c.stack.Clone()
	from, _ := next.Pop()
	c.commit(next, Event{From: from, Popped: true})
	return true
}

// PopBackStackTo pops down to the topmost entry for id. The result must
// leave at least one entry on the stack.
func (c *Controller) PopBackStackTo(id string, inclusive, saveState bool) error {
	c.mu.Lock()
	from, _ := c.stack.Current()
	next := c.stack.Clone()
	if _, err := next.PopTo(id, inclusive, saveState); err != nil {
		c.fail(err)
		c.mu.Unlock()
		return err
	}
	if next.Len() == 0 {
		err := newError("pop", id, ErrEmptyStack)
		c.fail(err)
		c.mu.Unlock()
		return err
	}
	c.commit(next, Event{From: from, Popped: true})
	return nil
}

// SetState stores a transient UI value on the current entry. Observers are
// not notified; the route did not change.
func (c *Controller) SetState(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.stack.SetState(key, value)
}

// State reads a transient UI value from the current entry.
func (c *Controller) State(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	cur, ok := c.stack.Current()
	if !ok || cur.State == nil {
		return nil, false
	}
	v, ok := cur.State[key]
	return v, ok
}

// plan computes the stack after a navigation on a private copy.
func (c *Controller) plan(id string, args Args, o Options) (*BackStack, Event, error) {
	var ev Event
	dest, ok := c.graph.Lookup(id)
	if !ok {
		return nil, ev, newError("navigate", id, ErrUnknownDestination)
	}

	next := c.stack.Clone()
	if o.PopUpTo != nil {
		if _, err := next.PopTo(o.PopUpTo.Target, o.PopUpTo.Inclusive, o.PopUpTo.SaveState); err != nil {
			return nil, ev, err
		}
	}

	if o.RestoreState {
		if seg, ok := next.Restore(id); ok {
			for _, e := range seg {
				next.Push(e)
			}
			ev.Restored = true
			ev.To, _ = next.Current()
			return next, ev, nil
		}
	}

	bound, err := dest.Args.Validate(args)
	if err != nil {
		return nil, ev, newError("navigate", id, err)
	}

	// Navigating to the pop target itself keeps the entry the pop left on
	// top instead of stacking a duplicate on it.
	singleTop := o.LaunchSingleTop ||
		(o.PopUpTo != nil && !o.PopUpTo.Inclusive && o.PopUpTo.Target == id)
	if singleTop {
		if top, ok := next.Current(); ok && top.Destination.ID == id {
			if !top.Args.Equal(bound) {
				next.entries[len(next.entries)-1].Args = bound
			}
			ev.Reused = true
			ev.To, _ = next.Current()
			return next, ev, nil
		}
	}

	next.Push(NewEntry(dest, bound))
	ev.To, _ = next.Current()
	return next, ev, nil
}

// commit swaps in the new stack, releases the lock and notifies. It must be
// called with c.mu held.
func (c *Controller) commit(next *BackStack, ev Event) Entry {
	c.stack = next
	c.lastErr = nil
	c.updatedAt = c.now()
	c.navigations++
	cur, _ := c.stack.Current()
	if ev.To.ID == "" {
		ev.To = cur
	}
	observers := slices.Clone(c.observers)
	hooks := slices.Clone(c.hooks)
	depth := c.stack.Len()
	c.mu.Unlock()

	c.logger.Debug("navigated",
		slog.String("route", cur.Route()),
		slog.Int("depth", depth),
		slog.Bool("restored", ev.Restored),
		slog.Bool("reused", ev.Reused),
		slog.Bool("popped", ev.Popped),
	)
	for _, o := range observers {
		o.fn(cur.Clone())
	}
	for _, h := range hooks {
		h(ev)
	}
	return cur.Clone()
}

// fail records err. It must be called with c.mu held.
func (c *Controller) fail(err error) {
	c.lastErr = err
	c.updatedAt = c.now()
	c.logger.Warn("navigation failed", slog.String("error", err.Error()))
}
