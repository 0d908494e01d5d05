// Package history tracks previously used package names and derives
// autocomplete suggestions from them.
package history

import (
	"encoding/json"
	"strings"

	"github.com/pipmirror/pipmirror-tui/internal/store"
)

// StoreKey is the key the history is persisted under. The value is a
// JSON-encoded array of strings, most-recent-first.
const StoreKey = "usedPackages"

// defaultSeed is used when no valid persisted history exists.
var defaultSeed = []string{"pandas", "numpy", "requests", "pillow", "flask"}

// History is the de-duplicated, most-recent-first list of package names.
// Every mutation is flushed to the store immediately.
type History struct {
	store   store.Store
	entries []string
}

// Load reads the persisted history from st. A missing or unparseable
// value falls back to the default seed list.
func Load(st store.Store) *History {
	h := &History{store: st}

	raw, ok := st.Get(StoreKey)
	if !ok {
		h.entries = append(h.entries, defaultSeed...)
		return h
	}

	if err := json.Unmarshal([]byte(raw), &h.entries); err != nil {
		h.entries = append([]string(nil), defaultSeed...)
	}
	return h
}

// Entries returns the history, most-recent-first. The returned slice is
// shared; callers must not mutate it.
func (h *History) Entries() []string {
	return h.entries
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Add prepends name to the history. Adding an empty name or a name that
// is already present is a no-op (no duplicate, no reordering).
func (h *History) Add(name string) error {
	if name == "" {
		return nil
	}
	for _, e := range h.entries {
		if e == name {
			return nil
		}
	}

	h.entries = append([]string{name}, h.entries...)
	return h.persist()
}

// Remove deletes name from the history. Removing an absent name is a
// no-op and does not rewrite the store.
func (h *History) Remove(name string) error {
	for i, e := range h.entries {
		if e == name {
			h.entries = append(h.entries[:i], h.entries[i+1:]...)
			return h.persist()
		}
	}
	return nil
}

// Suggest returns the history entries that contain input as a
// case-insensitive substring, excluding entries exactly equal to input.
// Equality is literal string equality only. Empty input yields no
// suggestions.
func (h *History) Suggest(input string) []string {
	if input == "" {
		return nil
	}

	needle := strings.ToLower(input)
	var out []string
	for _, e := range h.entries {
		if e == input {
			continue
		}
		if strings.Contains(strings.ToLower(e), needle) {
			out = append(out, e)
		}
	}
	return out
}

func (h *History) persist() error {
	data, err := json.Marshal(h.entries)
	if err != nil {
		return err
	}
	return h.store.Set(StoreKey, string(data))
}
