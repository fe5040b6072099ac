package microcode

import (
	"errors"

	"github.com/ezrec/microrom/translate"
)

var f = translate.From

var (
	// Assembly errors
	ErrTableUnresolved = errors.New(f("opcode table has unresolved slots, missing #default?"))
)

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrDirectiveInvalid string

func (err ErrDirectiveInvalid) Error() string {
	return f("'#%v' is not an opcode or #default", string(err))
}

// ErrOpcodeRange is an opcode outside of the translation table.
type ErrOpcodeRange uint

func (err ErrOpcodeRange) Error() string {
	return f("opcode %#x is outside the translation table", uint(err))
}

// ErrTokenUnknown is a token that is neither a symbol nor a sized literal.
type ErrTokenUnknown struct {
	Token string
	Err   error
}

func (err ErrTokenUnknown) Error() string {
	return f("'%v' is not a symbol or literal (%v)", err.Token, err.Err)
}

func (err ErrTokenUnknown) Unwrap() error {
	return err.Err
}

// ErrWordWidth is a control word of the wrong size.
type ErrWordWidth struct {
	Want int
	Got  int
}

func (err ErrWordWidth) Error() string {
	return f("control word is %v bits, expected %v", err.Got, err.Want)
}

// Warnings

// ErrOpcodeCollision is an opcode implemented more than once.
type ErrOpcodeCollision struct {
	Opcode  int // Compacted opcode.
	Address int // Address of the first implementation, which is kept.
}

func (err ErrOpcodeCollision) Error() string {
	return f("opcode %#x already implemented at %#x", err.Opcode, err.Address)
}

// ErrMultipleDone is an opcode with more than one done token.
type ErrMultipleDone struct {
	Opcode int
	Count  int
}

func (err ErrMultipleDone) Error() string {
	return f("opcode %#x has %v done flags", err.Opcode, err.Count)
}
