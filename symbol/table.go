package symbol

import (
	"iter"
	"maps"
	"slices"

	"github.com/ezrec/microrom/bits"
)

// Table maps the names of control word fields to their bits.
// A Table is not modified once built.
type Table struct {
	symbols map[string]bits.String
}

// NewTable creates a table holding a copy of symbols.
func NewTable(symbols map[string]bits.String) *Table {
	return &Table{symbols: maps.Clone(symbols)}
}

// Lookup returns the bits of a symbol.
func (tab *Table) Lookup(name string) (value bits.String, ok bool) {
	if tab == nil {
		return
	}
	value, ok = tab.symbols[name]
	return
}

// Len returns the number of symbols.
func (tab *Table) Len() int {
	if tab == nil {
		return 0
	}
	return len(tab.symbols)
}

// All iterates over the symbols in name order.
func (tab *Table) All() iter.Seq2[string, bits.String] {
	return func(yield func(name string, value bits.String) bool) {
		if tab == nil {
			return
		}
		for _, name := range slices.Sorted(maps.Keys(tab.symbols)) {
			if !yield(name, tab.symbols[name]) {
				return
			}
		}
	}
}
