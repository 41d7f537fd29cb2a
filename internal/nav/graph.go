package nav

import (
	"fmt"
	"strings"
)

// Destination is a navigable screen in the graph.
type Destination struct {
	ID       string
	Label    string
	Icon     string
	Args     ArgSchema
	Children []string // ids reachable from this destination
	TopLevel bool     // shown in the tab bar
}

// HasArgs reports whether the destination declares an argument schema.
func (d Destination) HasArgs() bool {
	return len(d.Args) > 0
}

// Graph is the static set of destinations plus the start destination.
// It is immutable once built.
type Graph struct {
	start        string
	order        []string
	destinations map[string]Destination
}

// NewGraph validates the destinations and builds a graph rooted at start.
func NewGraph(start string, destinations ...Destination) (*Graph, error) {
	g := &Graph{
		start:        strings.TrimSpace(start),
		destinations: make(map[string]Destination, len(destinations)),
	}
	if len(destinations) == 0 {
		return nil, newError("graph", "", fmt.Errorf("%w: no destinations", ErrInvalidGraph))
	}

	for _, d := range destinations {
		id := strings.TrimSpace(d.ID)
		if id == "" {
			return nil, newError("graph", "", fmt.Errorf("%w: empty destination id", ErrInvalidGraph))
		}
		if id != d.ID {
			return nil, newError("graph", d.ID, fmt.Errorf("%w: id has surrounding whitespace", ErrInvalidGraph))
		}
		if _, dup := g.destinations[id]; dup {
			return nil, newError("graph", id, fmt.Errorf("%w: duplicate destination", ErrInvalidGraph))
		}
		if err := d.Args.validateDefinition(); err != nil {
			return nil, newError("graph", id, fmt.Errorf("%w: %v", ErrInvalidGraph, err))
		}
		d.Children = append([]string(nil), d.Children...)
		d.Args = append(ArgSchema(nil), d.Args...)
		if d.Label == "" {
			d.Label = id
		}
		g.destinations[id] = d
		g.order = append(g.order, id)
	}

	if _, ok := g.destinations[g.start]; !ok {
		return nil, newError("graph", g.start, fmt.Errorf("%w: start destination not registered", ErrInvalidGraph))
	}
	if g.destinations[g.start].Args.hasRequired() {
		return nil, newError("graph", g.start, fmt.Errorf("%w: start destination requires arguments", ErrInvalidGraph))
	}

	for _, id := range g.order {
		for _, child := range g.destinations[id].Children {
			if _, ok := g.destinations[child]; !ok {
				return nil, newError("graph", id, fmt.Errorf("%w: child %q not registered", ErrInvalidGraph, child))
			}
		}
	}
	return g, nil
}

// Start returns the start destination.
func (g *Graph) Start() Destination {
	return g.destinations[g.start]
}

// Lookup returns the destination registered under id.
func (g *Graph) Lookup(id string) (Destination, bool) {
	d, ok := g.destinations[id]
	return d, ok
}

// Destinations returns all destinations in registration order.
func (g *Graph) Destinations() []Destination {
	out := make([]Destination, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.destinations[id])
	}
	return out
}

// TopLevel returns the tab bar destinations in registration order.
func (g *Graph) TopLevel() []Destination {
	var out []Destination
	for _, id := range g.order {
		if d := g.destinations[id]; d.TopLevel {
			out = append(out, d)
		}
	}
	return out
}

// Reachable reports whether to is listed as a child of from.
func (g *Graph) Reachable(from, to string) bool {
	d, ok := g.destinations[from]
	if !ok {
		return false
	}
	for _, child := range d.Children {
		if child == to {
			return true
		}
	}
	return false
}

// TabOptions returns the options used when switching tabs: pop to the
// start destination saving the current tab's entries, reuse the top entry,
// and restore the target tab's saved entries.
func (g *Graph) TabOptions() []Option {
	return []Option{PopUpTo(g.start, false, true), LaunchSingleTop(), RestoreState()}
}

// TabRoot returns the top-level destination that owns the given stack: the
// lowest top-level entry above the root, or the root itself.
func (g *Graph) TabRoot(entries []Entry) string {
	if len(entries) == 0 {
		return g.start
	}
	for _, e := range entries[1:] {
		if d, ok := g.destinations[e.Destination.ID]; ok && d.TopLevel {
			return d.ID
		}
	}
	return entries[0].Destination.ID
}
