package lint

import (
	"sort"
	"sync"
)

var (
	regMu    sync.RWMutex
	registry = map[string]RuleDef{}
)

// Register adds a rule definition to the global registry. Intended to
// be called at init time, it panics if the rule ID is already taken.
func Register(r RuleDef) {
	regMu.Lock()
	defer regMu.Unlock()
	if _, exists := registry[r.ID]; exists {
		panic("lint: duplicate rule: " + r.ID)
	}
	registry[r.ID] = r
}

// Rules returns all registered rules sorted by ID.
func Rules() []RuleDef {
	regMu.RLock()
	defer regMu.RUnlock()
	out := make([]RuleDef, 0, len(registry))
	for _, r := range registry {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
