package catalog

import (
	"fmt"
	"sort"
	"sync"
)

// Registry holds a set of entries keyed by name. The zero value is not
// usable; call NewRegistry.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

// Register adds an entry. Intended to be called at init time, it panics
// if an entry of the same name has already been registered: names are
// unique across the whole catalog, with no overloading.
func (r *Registry) Register(e Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[e.Name]; exists {
		panic("catalog: duplicate entry: " + e.Name)
	}
	r.entries[e.Name] = e
}

// Lookup returns the entry for name.
func (r *Registry) Lookup(name string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[name]
	return e, ok
}

// Len returns the number of registered entries.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Names returns all entry names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns all entries sorted by name.
func (r *Registry) All() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		all = append(all, e)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all
}

// ByCategory returns the entries of one category sorted by name.
func (r *Registry) ByCategory(c Category) []Entry {
	var out []Entry
	for _, e := range r.All() {
		if e.Category == c {
			out = append(out, e)
		}
	}
	return out
}

// std is the default registry that the mysql entry package populates.
var std = NewRegistry()

// Register adds an entry to the default registry. It panics on a
// duplicate name.
func Register(e Entry) { std.Register(e) }

// Lookup returns the named entry from the default registry.
func Lookup(name string) (Entry, bool) { return std.Lookup(name) }

// Len returns the size of the default registry.
func Len() int { return std.Len() }

// Names returns the sorted names in the default registry.
func Names() []string { return std.Names() }

// All returns the default registry's entries sorted by name.
func All() []Entry { return std.All() }

// ByCategory returns the default registry's entries of one category.
func ByCategory(c Category) []Entry { return std.ByCategory(c) }

// Resolve returns the named entries, failing on the first unknown name.
func Resolve(names []string) ([]Entry, error) {
	out := make([]Entry, 0, len(names))
	for _, name := range names {
		e, ok := std.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown function: %s", name)
		}
		out = append(out, e)
	}
	return out, nil
}
