// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package microcode

import (
	"io"
	"log"
	"slices"

	"github.com/ezrec/microrom/config"
	"github.com/ezrec/microrom/diag"
	"github.com/ezrec/microrom/symbol"
)

// Result is the control store and translation table of an assembly pass.
// It is not modified once returned.
type Result struct {
	Words       []Word         // Control store, in address order.
	Table       *Table         // Opcode translation table.
	Entries     []int          // Address of each opcode directive, collisions included.
	Defaults    []int          // Address of each #default directive.
	Implemented int            // Opcodes with an explicit entry point.
	Warnings    []diag.Warning // Recoverable problems, in source order.
}

// Default returns the address of the last #default directive.
func (res *Result) Default() (address int, ok bool) {
	if len(res.Defaults) == 0 {
		return
	}
	return res.Defaults[len(res.Defaults)-1], true
}

// Assembler is a single pass micro-assembler.
type Assembler struct {
	Verbose bool           // If set, verbosely logs the assembler actions.
	Source  string         // Name of the microprogram, used in warnings.
	Config  *config.Config // Control unit description, or nil for the default.
	Symbols *symbol.Table  // Field symbols.
}

// opcodeContext counts the done flags of the opcode being assembled.
type opcodeContext struct {
	valid  bool
	opcode int
	lineNo int
	done   int
}

// Assemble makes a single pass over a microprogram source.
//
// An instruction line that cannot be encoded stops the assembly with an
// error. Opcode collisions and unexpected multiple done flags are reported
// as warnings in the Result.
func (asm *Assembler) Assemble(input io.Reader) (res *Result, err error) {
	cfg := asm.Config
	if cfg == nil {
		cfg = config.Default()
	}

	err = cfg.Validate()
	if err != nil {
		return
	}

	enc := &Encoder{Symbols: asm.Symbols, Width: cfg.WordWidth}
	out := &Result{Table: NewTable(cfg.TableSize, cfg.Extended)}

	warn := func(lineno int, err error) {
		out.Warnings = append(out.Warnings, diag.Warning{Source: asm.Source, LineNo: lineno, Err: err})
	}

	var ctx opcodeContext
	closeContext := func() {
		if ctx.valid && ctx.done > 1 && !cfg.IsMultiExit(ctx.opcode) {
			warn(ctx.lineNo, ErrMultipleDone{Opcode: ctx.opcode, Count: ctx.done})
		}
		ctx = opcodeContext{}
	}

	for ev, everr := range Events(input) {
		if everr != nil {
			err = everr
			return
		}

		if asm.Verbose {
			log.Printf("%v: %v\n", ev.LineNo, ev.Line)
		}

		address := len(out.Words)

		switch ev.Kind {
		case EVENT_DEFAULT:
			closeContext()
			out.Defaults = append(out.Defaults, address)
			out.Table.Fill(address)
		case EVENT_OPCODE:
			closeContext()
			out.Entries = append(out.Entries, address)
			var index int
			index, err = out.Table.Compact(ev.Opcode)
			if err != nil {
				err = &ErrSyntax{LineNo: ev.LineNo, Line: ev.Line, Err: err}
				return
			}
			slot, ok := out.Table.Assign(index, address)
			if ok {
				out.Implemented++
			} else {
				warn(ev.LineNo, ErrOpcodeCollision{Opcode: index, Address: slot.Address})
			}
			ctx = opcodeContext{valid: true, opcode: index, lineNo: ev.LineNo}
		case EVENT_INSTRUCTION:
			if slices.Contains(ev.Tokens, cfg.DoneToken) {
				ctx.done++
			}
			word, fields, encerr := enc.Encode(ev.Tokens)
			if encerr != nil {
				err = &ErrSyntax{LineNo: ev.LineNo, Line: ev.Line, Err: encerr}
				return
			}
			out.Words = append(out.Words, Word{
				LineNo:  ev.LineNo,
				Address: address,
				Fields:  fields,
				Bits:    word,
			})
		}
	}

	closeContext()

	res = out
	return
}
