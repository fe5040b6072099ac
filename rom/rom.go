// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package rom writes the control store image and the opcode translation
// table as hex memory files, one value per line, as read by $readmemh.
package rom

import (
	"bufio"
	"io"
	"iter"

	"github.com/ezrec/microrom/bits"
	"github.com/ezrec/microrom/config"
	"github.com/ezrec/microrom/microcode"
)

// Image is a control store and its translation table.
type Image struct {
	Words       []bits.String // Control store, in address order.
	Table       []int         // Entry address of each compacted opcode.
	AddressBits int           // Width of a translation table entry.
}

// NewImage builds the image of an assembly result. Every translation table
// slot must be resolved and every address must fit the address width.
func NewImage(res *microcode.Result, cfg *config.Config) (img *Image, err error) {
	table, err := res.Table.Addresses()
	if err != nil {
		return
	}

	limit := 1 << cfg.AddressBits
	if len(res.Words) > limit {
		err = ErrStoreOverflow{Words: len(res.Words), Bits: cfg.AddressBits}
		return
	}
	for slot, address := range table {
		if address >= limit {
			err = ErrAddressOverflow{Slot: slot, Address: address, Bits: cfg.AddressBits}
			return
		}
	}

	img = &Image{
		Words:       make([]bits.String, len(res.Words)),
		Table:       table,
		AddressBits: cfg.AddressBits,
	}
	for n, word := range res.Words {
		img.Words[n] = word.Bits
	}

	return
}

// Entries iterates over the translation table as address bit strings.
func (img *Image) Entries() iter.Seq2[int, bits.String] {
	return func(yield func(slot int, entry bits.String) bool) {
		for slot, address := range img.Table {
			entry, err := bits.FromUint(uint64(address), img.AddressBits)
			if err != nil {
				// NewImage checked the widths.
				panic(err)
			}
			if !yield(slot, entry) {
				return
			}
		}
	}
}

// Writer formats an image as hex memory files.
type Writer struct {
	// If set, every value is zero padded to one hex digit per four bits of
	// its width. Otherwise values have no leading zeros.
	Pad bool
}

func (w *Writer) writeLines(out io.Writer, values iter.Seq[bits.String]) (err error) {
	buf := bufio.NewWriter(out)
	for value := range values {
		buf.WriteString(value.Hex(w.Pad))
		buf.WriteByte('\n')
	}
	return buf.Flush()
}

// WriteRom writes the control store, one word per line.
func (w *Writer) WriteRom(out io.Writer, img *Image) (err error) {
	return w.writeLines(out, func(yield func(bits.String) bool) {
		for _, word := range img.Words {
			if !yield(word) {
				return
			}
		}
	})
}

// WriteTable writes the translation table, one slot per line.
func (w *Writer) WriteTable(out io.Writer, img *Image) (err error) {
	return w.writeLines(out, func(yield func(bits.String) bool) {
		for _, entry := range img.Entries() {
			if !yield(entry) {
				return
			}
		}
	})
}

// Save creates the control store and translation table files. Both files
// are written before either is closed, so a failed write leaves the
// previous pair in place.
func (w *Writer) Save(fsys CreateFS, romName string, tableName string, img *Image) (err error) {
	romFile, err := create(fsys, romName, func(out io.Writer) error { return w.WriteRom(out, img) })
	if err != nil {
		return
	}

	tableFile, err := create(fsys, tableName, func(out io.Writer) error { return w.WriteTable(out, img) })
	if err != nil {
		abort(romFile)
		return
	}

	err = romFile.Close()
	if err != nil {
		abort(tableFile)
		return
	}

	return tableFile.Close()
}

// abort discards a file that has not been closed.
func abort(file io.WriteCloser) {
	if pending, ok := file.(interface{ Abort() }); ok {
		pending.Abort()
	} else {
		file.Close()
	}
}

// create creates and writes a file, leaving it open.
func create(fsys CreateFS, name string, write func(out io.Writer) error) (file io.WriteCloser, err error) {
	file, err = fsys.Create(name)
	if err != nil {
		return
	}

	err = write(file)
	if err != nil {
		abort(file)
		file = nil
	}

	return
}
