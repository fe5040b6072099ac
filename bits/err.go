package bits

import (
	"errors"

	"github.com/ezrec/microrom/translate"
)

var f = translate.From

var (
	ErrLiteralQuote  = errors.New(f("missing ' in sized literal"))
	ErrLiteralWidth  = errors.New(f("literal width invalid"))
	ErrLiteralDigits = errors.New(f("literal digits missing"))
)

type ErrLiteralFormat string

func (err ErrLiteralFormat) Error() string {
	return f("literal format '%v' is not one of b, h, d", string(err))
}

type ErrLiteralValue string

func (err ErrLiteralValue) Error() string {
	return f("'%v' is not a valid literal value", string(err))
}

type ErrLiteralOverflow struct {
	Width  int
	Digits string
}

func (err ErrLiteralOverflow) Error() string {
	return f("'%v' does not fit in %v bits", err.Digits, err.Width)
}

type ErrLiteral struct {
	Literal string
	Err     error
}

func (err ErrLiteral) Error() string {
	return f("literal %v: %v", err.Literal, err.Err)
}

func (err ErrLiteral) Unwrap() error {
	return err.Err
}
