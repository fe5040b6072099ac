package symbol

import (
	"errors"

	"github.com/ezrec/microrom/translate"
)

var f = translate.From

var (
	ErrDeclarationComment      = errors.New(f("comments are not supported inside a localparam declaration"))
	ErrDeclarationUnterminated = errors.New(f("localparam declaration without ';'"))
	ErrDeclarationSyntax       = errors.New(f("localparam declaration syntax"))
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

// ErrSymbolValue reports a symbol whose value could not be encoded.
type ErrSymbolValue struct {
	Name  string
	Value string
	Err   error
}

func (err ErrSymbolValue) Error() string {
	return f("symbol %v = %v skipped: %v", err.Name, err.Value, err.Err)
}

func (err ErrSymbolValue) Unwrap() error {
	return err.Err
}

// ErrSymbolRedefined reports a symbol declared more than once.
type ErrSymbolRedefined string

func (err ErrSymbolRedefined) Error() string {
	return f("symbol %v redefined", string(err))
}
