// File: internal/display/display.go

// Package display maps closed server-side enums to the presentation tuples the
// mobile screens render. Each table is a total function: unrecognized values
// degrade to the table's default descriptor instead of failing.
package display

// Descriptor is the {label, color, icon} tuple a screen renders for an enum value.
type Descriptor struct {
	Label string `json:"label"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// Table is an enum -> Descriptor lookup with a mandatory default branch.
type Table struct {
	entries  map[string]Descriptor
	fallback Descriptor
}

// NewTable builds a lookup table over the given entries.
func NewTable(entries map[string]Descriptor, fallback Descriptor) *Table {
	// Copy so callers cannot mutate the table after construction.
	copied := make(map[string]Descriptor, len(entries))
	for k, v := range entries {
		copied[k] = v
	}
	return &Table{entries: copied, fallback: fallback}
}

// Lookup returns the descriptor for value, or the default when unknown.
func (t *Table) Lookup(value string) Descriptor {
	if d, ok := t.entries[value]; ok {
		return d
	}
	return t.fallback
}

// Known reports whether value has an explicit entry.
func (t *Table) Known(value string) bool {
	_, ok := t.entries[value]
	return ok
}
