package screens

import (
	"sort"
	"strings"
)

// Directory is the static set of people shown by the friends screens.
// Friendships are symmetric.
type Directory struct {
	names   []string
	friends map[string][]string
}

// NewDirectory builds a directory from names. Each person is friends with
// the next two people in the list, wrapping around, which gives a small
// connected graph for any input.
func NewDirectory(names []string) *Directory {
	d := &Directory{friends: make(map[string][]string)}
	seen := make(map[string]struct{})
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		d.names = append(d.names, n)
	}

	link := func(a, b string) {
		if a == b {
			return
		}
		for _, f := range d.friends[a] {
			if f == b {
				return
			}
		}
		d.friends[a] = append(d.friends[a], b)
		d.friends[b] = append(d.friends[b], a)
	}
	for i, n := range d.names {
		for step := 1; step <= 2 && step < len(d.names); step++ {
			link(n, d.names[(i+step)%len(d.names)])
		}
	}
	for n := range d.friends {
		sort.Strings(d.friends[n])
	}
	return d
}

// Names returns everyone in the directory.
func (d *Directory) Names() []string {
	return append([]string(nil), d.names...)
}

// Has reports whether name is in the directory.
func (d *Directory) Has(name string) bool {
	for _, n := range d.names {
		if n == name {
			return true
		}
	}
	return false
}

// FriendsOf returns the friends of name, or everyone when name is empty.
func (d *Directory) FriendsOf(name string) []string {
	if name == "" {
		return d.Names()
	}
	return append([]string(nil), d.friends[name]...)
}

// Mutual counts the friends a and b have in common.
func (d *Directory) Mutual(a, b string) int {
	if a == "" || b == "" {
		return 0
	}
	set := make(map[string]struct{}, len(d.friends[a]))
	for _, f := range d.friends[a] {
		set[f] = struct{}{}
	}
	n := 0
	for _, f := range d.friends[b] {
		if _, ok := set[f]; ok {
			n++
		}
	}
	return n
}

// Search returns the names containing query, case-insensitively.
func (d *Directory) Search(query string) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []string
	for _, n := range d.names {
		if strings.Contains(strings.ToLower(n), q) {
			out = append(out, n)
		}
	}
	return out
}
