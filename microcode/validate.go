package microcode

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/ezrec/microrom/bits"
	"github.com/ezrec/microrom/diag"
	"github.com/ezrec/microrom/internal"
	"github.com/ezrec/microrom/translate"
)

// Duplicate is a set of opcode entry points whose microprograms encode
// identical bits. They are candidates for sharing ROM space.
type Duplicate struct {
	Addresses []int // Entry point addresses, ascending.
	Opcodes   []int // Compacted opcodes entering at those addresses, ascending.
}

// Report summarizes an assembly pass.
type Report struct {
	Instructions int            // Control words in the store.
	Implemented  int            // Opcodes with an explicit entry point.
	TableSize    int            // Slots in the translation table.
	Duplicates   []Duplicate    // Identical microprograms.
	Warnings     []diag.Warning // Warnings of the pass.
}

// Validate checks a finished control store and translation table.
//
// Each distinct entry point owns the control words up to the next opcode
// directive, #default address or the end of the store. Entry points owning
// identical bits are reported as duplicates. Opcodes sharing one entry
// point are not duplicates of each other.
func Validate(res *Result) (rep *Report) {
	rep = &Report{
		Instructions: len(res.Words),
		Implemented:  res.Implemented,
		TableSize:    len(res.Table.Slots),
		Warnings:     slices.Clone(res.Warnings),
	}

	owners := make(map[int][]int)
	for index, slot := range res.Table.Slots {
		if slot.State == SLOT_ASSIGNED {
			owners[slot.Address] = append(owners[slot.Address], index)
		}
	}

	bounds := slices.Clone(res.Entries)
	bounds = append(bounds, res.Defaults...)
	bounds = append(bounds, len(res.Words))
	slices.Sort(bounds)
	bounds = slices.Compact(bounds)

	groups := make(map[bits.String]*Duplicate)
	var order []bits.String

	for start, end := range internal.Spans(bounds) {
		opcodes, ok := owners[start]
		if !ok || start == end {
			continue
		}

		parts := make([]bits.String, 0, end-start)
		for _, word := range res.Words[start:end] {
			parts = append(parts, word.Bits)
		}
		key := bits.Concat(parts...)

		group, ok := groups[key]
		if !ok {
			group = &Duplicate{}
			groups[key] = group
			order = append(order, key)
		}
		group.Addresses = append(group.Addresses, start)
		group.Opcodes = append(group.Opcodes, opcodes...)
	}

	for _, key := range order {
		group := groups[key]
		if len(group.Addresses) < 2 {
			continue
		}
		slices.Sort(group.Opcodes)
		rep.Duplicates = append(rep.Duplicates, *group)
	}

	return
}

func hexList(values []int) string {
	text := make([]string, len(values))
	for n, value := range values {
		text[n] = fmt.Sprintf("%#x", value)
	}
	return strings.Join(text, " ")
}

// Print writes the report as diagnostics.
func (rep *Report) Print(w io.Writer) (err error) {
	for _, warning := range rep.Warnings {
		err = translate.Fprintln(w, "warning: %v", warning)
		if err != nil {
			return
		}
	}

	if len(rep.Duplicates) > 0 {
		err = translate.Fprintln(w, "warning: duplicates found! Check the following rom addresses:")
		if err != nil {
			return
		}
		for _, dup := range rep.Duplicates {
			err = translate.Fprintln(w, "  %v (opcodes %v)", hexList(dup.Addresses), hexList(dup.Opcodes))
			if err != nil {
				return
			}
		}
	}

	err = translate.Fprintln(w, "%d microinstructions in rom.", rep.Instructions)
	if err != nil {
		return
	}

	err = translate.Fprintln(w, "%d/%d opcodes implemented.", rep.Implemented, rep.TableSize)

	return
}
