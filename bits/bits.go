// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package bits

import (
	"math/big"
	"strconv"
	"strings"
)

// MaxWidth is the widest literal accepted.
const MaxWidth = 4096

// String is a bit string of '0' and '1' characters, most significant bit first.
type String string

// Len returns the number of bits.
func (bs String) Len() int {
	return len(bs)
}

// Valid is true if bs only holds '0' and '1' characters.
func (bs String) Valid() bool {
	for _, c := range []byte(bs) {
		if c != '0' && c != '1' {
			return false
		}
	}
	return true
}

// Int returns the unsigned value of the bit string, or zero if the string
// is not Valid.
func (bs String) Int() (value *big.Int) {
	value = new(big.Int)
	if len(bs) == 0 {
		return
	}
	if _, ok := value.SetString(string(bs), 2); !ok {
		value.SetInt64(0)
	}
	return
}

// Hex returns the hexadecimal text of the bit string's unsigned value.
// If pad is set, the text is zero padded to one digit per four bits.
func (bs String) Hex(pad bool) (text string) {
	text = bs.Int().Text(16)
	if pad {
		digits := (len(bs) + 3) / 4
		if len(text) < digits {
			text = strings.Repeat("0", digits-len(text)) + text
		}
	}
	return
}

// Concat joins bit strings, the first part being the most significant.
func Concat(parts ...String) String {
	var sb strings.Builder
	for _, part := range parts {
		sb.WriteString(string(part))
	}
	return String(sb.String())
}

// FromInt encodes a non-negative value as exactly width bits.
func FromInt(value *big.Int, width int) (bs String, err error) {
	if width <= 0 || width > MaxWidth {
		err = ErrLiteralWidth
		return
	}
	if value.Sign() < 0 || value.BitLen() > width {
		err = ErrLiteralOverflow{Width: width, Digits: value.String()}
		return
	}

	text := value.Text(2)
	bs = String(strings.Repeat("0", width-len(text)) + text)
	return
}

// FromUint encodes value as exactly width bits.
func FromUint(value uint64, width int) (bs String, err error) {
	return FromInt(new(big.Int).SetUint64(value), width)
}

// ParseLiteral converts a sized literal, <width>'<format><digits>, into a
// bit string of exactly width bits.
func ParseLiteral(literal string) (bs String, err error) {
	defer func() {
		if err != nil {
			err = &ErrLiteral{Literal: literal, Err: err}
		}
	}()

	quote := strings.IndexByte(literal, '\'')
	if quote < 0 {
		err = ErrLiteralQuote
		return
	}

	width, err := strconv.Atoi(literal[:quote])
	if err != nil || width <= 0 || width > MaxWidth {
		err = ErrLiteralWidth
		return
	}

	rest := literal[quote+1:]
	if len(rest) == 0 {
		err = ErrLiteralFormat("")
		return
	}

	var base int
	switch rest[0] {
	case 'b', 'B':
		base = 2
	case 'h', 'H':
		base = 16
	case 'd', 'D':
		base = 10
	default:
		err = ErrLiteralFormat(rest[:1])
		return
	}

	digits := strings.ReplaceAll(rest[1:], "_", "")
	if len(digits) == 0 {
		err = ErrLiteralDigits
		return
	}
	if digits[0] == '+' || digits[0] == '-' {
		err = ErrLiteralValue(digits)
		return
	}

	value, ok := new(big.Int).SetString(digits, base)
	if !ok {
		err = ErrLiteralValue(digits)
		return
	}

	if value.BitLen() > width {
		err = ErrLiteralOverflow{Width: width, Digits: rest}
		return
	}

	return FromInt(value, width)
}
