// File: internal/display/display_test.go
package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable_Lookup_KnownValue(t *testing.T) {
	table := NewTable(map[string]Descriptor{
		"pending": {Label: "Pending", Color: "#F59E0B", Icon: "clock"},
	}, Descriptor{Label: "Unknown", Color: "#6B7280", Icon: "help-circle"})

	d := table.Lookup("pending")
	assert.Equal(t, "Pending", d.Label)
	assert.Equal(t, "#F59E0B", d.Color)
	assert.Equal(t, "clock", d.Icon)
	assert.True(t, table.Known("pending"))
}

func TestTable_Lookup_UnknownValueFallsBack(t *testing.T) {
	table := NewTable(map[string]Descriptor{
		"pending": {Label: "Pending", Color: "#F59E0B", Icon: "clock"},
	}, Descriptor{Label: "Unknown", Color: "#6B7280", Icon: "help-circle"})

	d := table.Lookup("some_future_status")
	assert.Equal(t, "Unknown", d.Label)
	assert.False(t, table.Known("some_future_status"))
}

func TestTable_CopiesEntriesOnConstruction(t *testing.T) {
	entries := map[string]Descriptor{
		"a": {Label: "A"},
	}
	table := NewTable(entries, Descriptor{Label: "D"})

	entries["a"] = Descriptor{Label: "mutated"}
	assert.Equal(t, "A", table.Lookup("a").Label)
}
