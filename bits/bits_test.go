package bits

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLiteral(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		literal string
		bits    String
	}){
		{"4'd5", "0101"},
		{"4'b101", "0101"},
		{"4'b0101", "0101"},
		{"4'h5", "0101"},
		{"8'hA5", "10100101"},
		{"8'Ha5", "10100101"},
		{"1'b0", "0"},
		{"1'b1", "1"},
		{"3'd0", "000"},
		{"11'd2047", "11111111111"},
		{"16'b1010_0000_0000_0001", "1010000000000001"},
		{"7'D100", "1100100"},
		{"36'h0", String(strings.Repeat("0", 36))},
		{"72'hFFFFFFFFFFFFFFFFFF", String(strings.Repeat("1", 72))},
	}

	for _, entry := range table {
		bs, err := ParseLiteral(entry.literal)
		assert.NoError(err, entry.literal)
		assert.Equal(entry.bits, bs, entry.literal)
		assert.True(bs.Valid())
	}
}

func TestParseLiteral_Errors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		literal string
		err     error
	}){
		{"5", ErrLiteralQuote},
		{"FOO", ErrLiteralQuote},
		{"'d5", ErrLiteralWidth},
		{"0'd0", ErrLiteralWidth},
		{"x'd0", ErrLiteralWidth},
		{"4'", ErrLiteralFormat("")},
		{"4'o7", ErrLiteralFormat("o")},
		{"4'q1", ErrLiteralFormat("q")},
		{"4'd", ErrLiteralDigits},
		{"4'h_", ErrLiteralDigits},
		{"4'b102", ErrLiteralValue("102")},
		{"4'd-1", ErrLiteralValue("-1")},
		{"4'hzz", ErrLiteralValue("zz")},
	}

	for _, entry := range table {
		_, err := ParseLiteral(entry.literal)
		assert.ErrorIs(err, entry.err, entry.literal)

		var lit *ErrLiteral
		assert.True(errors.As(err, &lit), entry.literal)
		if lit != nil {
			assert.Equal(entry.literal, lit.Literal)
		}
	}
}

func TestParseLiteral_Overflow(t *testing.T) {
	assert := assert.New(t)

	for _, literal := range []string{"4'd16", "4'h1F", "2'b111", "1'd2"} {
		bs, err := ParseLiteral(literal)
		assert.Equal(String(""), bs, literal)

		var overflow ErrLiteralOverflow
		assert.True(errors.As(err, &overflow), literal)
	}
}

func TestString_Hex(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		bits    String
		compact string
		padded  string
	}){
		{"0101", "5", "5"},
		{String(strings.Repeat("0101", 9)), "555555555", "555555555"},
		{String(strings.Repeat("0", 36)), "0", "000000000"},
		{"00000000011", "3", "003"},
		{"11111111111", "7ff", "7ff"},
		{"100000000000000000000000000000000001", "800000001", "800000001"},
		{"", "0", "0"},
	}

	for _, entry := range table {
		assert.Equal(entry.compact, entry.bits.Hex(false), string(entry.bits))
		assert.Equal(entry.padded, entry.bits.Hex(true), string(entry.bits))
	}
}

func TestString_Valid(t *testing.T) {
	assert := assert.New(t)

	assert.True(String("").Valid())
	assert.True(String("0110").Valid())
	assert.False(String("0120").Valid())
	assert.False(String("FOO").Valid())
	assert.Equal(int64(0), String("0120").Int().Int64())
	assert.Equal(int64(6), String("0110").Int().Int64())
}

func TestConcat(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(String("0101110"), Concat("01", "", "0111", "0"))
	assert.Equal(String(""), Concat())
}

func TestFromUint(t *testing.T) {
	assert := assert.New(t)

	bs, err := FromUint(0x17f, 11)
	assert.NoError(err)
	assert.Equal(String("00101111111"), bs)

	_, err = FromUint(0x800, 11)
	var overflow ErrLiteralOverflow
	assert.True(errors.As(err, &overflow))
	assert.Equal(11, overflow.Width)

	_, err = FromUint(0, 0)
	assert.ErrorIs(err, ErrLiteralWidth)

	_, err = FromInt(big.NewInt(-1), 4)
	assert.True(errors.As(err, &overflow))
}

func FuzzParseLiteral(f *testing.F) {
	f.Add(uint8(4), uint64(5))
	f.Add(uint8(36), uint64(0))
	f.Add(uint8(64), uint64(0xffffffffffffffff))
	f.Add(uint8(1), uint64(1))

	f.Fuzz(func(t *testing.T, width uint8, value uint64) {
		assert := assert.New(t)

		if width == 0 || width > 64 {
			return
		}
		if width < 64 {
			value &= (uint64(1) << width) - 1
		}

		for _, literal := range []string{
			fmt.Sprintf("%d'd%d", width, value),
			fmt.Sprintf("%d'h%x", width, value),
			fmt.Sprintf("%d'b%b", width, value),
		} {
			bs, err := ParseLiteral(literal)
			assert.NoError(err, literal)
			assert.Equal(int(width), bs.Len(), literal)
			assert.Equal(0, bs.Int().Cmp(new(big.Int).SetUint64(value)), literal)
		}
	})
}
