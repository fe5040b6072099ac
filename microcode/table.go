package microcode

import (
	"github.com/ezrec/microrom/config"
)

// SlotState is the resolution state of a translation table slot. An
// unassigned slot has no address yet, a default slot holds the #default
// fallback address and an assigned slot is an explicit opcode entry point.
type SlotState int

//go:generate go tool stringer -linecomment -type=SlotState
const (
	SLOT_UNASSIGNED = SlotState(0) // unassigned
	SLOT_DEFAULT    = SlotState(1) // default
	SLOT_ASSIGNED   = SlotState(2) // assigned
)

// Slot is an entry of the opcode translation table.
type Slot struct {
	State   SlotState
	Address int
}

// Compact maps a raw opcode into the dense translation table index space.
// Opcodes in an extended page are moved to the page's offset.
func Compact(opcode uint, pages []config.Page, size int) (index int, err error) {
	compacted := opcode
	for _, page := range pages {
		if opcode>>8 == page.Prefix {
			compacted = page.Offset | (opcode & 0xFF)
			break
		}
	}

	if compacted >= uint(size) {
		err = ErrOpcodeRange(opcode)
		return
	}

	index = int(compacted)
	return
}

// Table is the opcode translation table.
type Table struct {
	Slots []Slot
	pages []config.Page
}

// NewTable creates an unassigned table.
func NewTable(size int, pages []config.Page) *Table {
	return &Table{
		Slots: make([]Slot, size),
		pages: pages,
	}
}

// Compact maps a raw opcode to a slot index of the table.
func (tab *Table) Compact(opcode uint) (index int, err error) {
	return Compact(opcode, tab.pages, len(tab.Slots))
}

// Assign sets the entry point of an opcode. The first assignment of a slot
// is kept; a later one returns the slot unchanged and ok false.
func (tab *Table) Assign(index int, address int) (slot Slot, ok bool) {
	slot = tab.Slots[index]
	if slot.State == SLOT_ASSIGNED {
		return
	}

	slot = Slot{State: SLOT_ASSIGNED, Address: address}
	tab.Slots[index] = slot
	ok = true
	return
}

// Fill sets every unassigned slot to the default address, returning the
// number of slots filled.
func (tab *Table) Fill(address int) (count int) {
	for n := range tab.Slots {
		if tab.Slots[n].State == SLOT_UNASSIGNED {
			tab.Slots[n] = Slot{State: SLOT_DEFAULT, Address: address}
			count++
		}
	}
	return
}

// Count returns the number of slots in a state.
func (tab *Table) Count(state SlotState) (count int) {
	for _, slot := range tab.Slots {
		if slot.State == state {
			count++
		}
	}
	return
}

// Resolved is true if no slot is unassigned.
func (tab *Table) Resolved() bool {
	return tab.Count(SLOT_UNASSIGNED) == 0
}

// Addresses returns the address of every slot, in index order.
func (tab *Table) Addresses() (addrs []int, err error) {
	if !tab.Resolved() {
		err = ErrTableUnresolved
		return
	}

	addrs = make([]int, len(tab.Slots))
	for n, slot := range tab.Slots {
		addrs[n] = slot.Address
	}

	return
}
