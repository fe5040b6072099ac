// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package config holds the constants of the target control unit, and loads
// them from an optional Starlark configuration file.
//
// A configuration file assigns any of the settings as globals:
//
//	word_width = 36
//	table_size = 3 * 256
//	address_bits = 11
//	extended = [(0xCE, 0x100), (0xCF, 0x200)]
//	multi_exit = [0xE0, 0xE1, 0xE2, 0xE3] + list(range(0x1F0, 0x200))
//
// Input paths are relative to the directory of the configuration file.
// The rom and table names are relative to the output directory.
package config

import (
	"path/filepath"
	"slices"
)

// Page is an extended opcode page. Opcodes whose high byte equals Prefix
// are compacted to Offset | (opcode & 0xFF).
type Page struct {
	Prefix uint
	Offset uint
}

// Config describes the control unit the microprogram is assembled for.
type Config struct {
	WordWidth   int    // Bits in a control word.
	TableSize   int    // Slots in the opcode translation table.
	AddressBits int    // Bits in a control store address.
	Prefix      string // Prefix of the localparam names used as symbols.
	DoneToken   string // Token flagging the end of an opcode's microprogram.
	Extended    []Page // Extended opcode pages.
	MultiExit   []uint // Compacted opcodes allowed more than one done token.

	Symbols      string // Path of the localparam source.
	Microprogram string // Path of the microprogram source.
	Rom          string // Name of the control store image, in the output directory.
	Table        string // Name of the translation table, in the output directory.
}

// Default returns the configuration of the reference S1C88 control unit.
func Default() (cfg *Config) {
	cfg = &Config{
		WordWidth:   36,
		TableSize:   3 * 256,
		AddressBits: 11,
		Prefix:      "MICRO_",
		DoneToken:   "DONE",
		Extended: []Page{
			{Prefix: 0xCE, Offset: 0x100},
			{Prefix: 0xCF, Offset: 0x200},
		},
		MultiExit: []uint{
			0xE0, 0xE1, 0xE2, 0xE3,
			0xE8, 0xE9, 0xEA, 0xEB,
		},

		Symbols:      filepath.Join("rtl", "s1c88.sv"),
		Microprogram: filepath.Join("rom", "microinstructions.txt"),
		Rom:          "rom.mem",
		Table:        "translation_rom.mem",
	}

	for op := uint(0x1F0); op < 0x200; op++ {
		cfg.MultiExit = append(cfg.MultiExit, op)
	}

	return
}

// IsMultiExit is true if the compacted opcode may have several done tokens.
func (cfg *Config) IsMultiExit(opcode int) bool {
	return opcode >= 0 && slices.Contains(cfg.MultiExit, uint(opcode))
}

// Validate checks the configuration for consistency.
func (cfg *Config) Validate() (err error) {
	switch {
	case cfg.WordWidth <= 0:
		err = ErrWordWidth
	case cfg.TableSize <= 0:
		err = ErrTableSize
	case cfg.AddressBits <= 0 || cfg.AddressBits > 32:
		err = ErrAddressBits
	case len(cfg.DoneToken) == 0:
		err = ErrDoneToken
	}
	if err != nil {
		return
	}

	for _, page := range cfg.Extended {
		if page.Offset&0xFF != 0 || int(page.Offset|0xFF) >= cfg.TableSize {
			err = ErrPage(page)
			return
		}
	}

	return
}
