package microcode

import (
	"github.com/ezrec/microrom/bits"
	"github.com/ezrec/microrom/symbol"
)

// Field is a single token of a control word and its bits.
type Field struct {
	Token string
	Bits  bits.String
}

// Word is an assembled control word.
type Word struct {
	LineNo  int         // Source line number.
	Address int         // Control store address.
	Fields  []Field     // Fields, most significant first.
	Bits    bits.String // Concatenated field bits.
}

// Encoder turns the tokens of an instruction line into a control word.
type Encoder struct {
	Symbols *symbol.Table // Field symbols.
	Width   int           // Required control word width.
}

// Resolve returns the bits of a token: a symbol if one is defined,
// otherwise a sized literal.
func (enc *Encoder) Resolve(token string) (value bits.String, err error) {
	value, ok := enc.Symbols.Lookup(token)
	if ok {
		return
	}

	value, err = bits.ParseLiteral(token)
	if err != nil {
		err = &ErrTokenUnknown{Token: token, Err: err}
	}

	return
}

// Encode concatenates the bits of the tokens. The result must be exactly
// the width of a control word.
func (enc *Encoder) Encode(tokens []string) (word bits.String, fields []Field, err error) {
	fields = make([]Field, 0, len(tokens))
	parts := make([]bits.String, 0, len(tokens))

	for _, token := range tokens {
		var value bits.String
		value, err = enc.Resolve(token)
		if err != nil {
			fields = nil
			return
		}
		fields = append(fields, Field{Token: token, Bits: value})
		parts = append(parts, value)
	}

	word = bits.Concat(parts...)
	if word.Len() != enc.Width {
		err = ErrWordWidth{Want: enc.Width, Got: word.Len()}
		word = ""
		fields = nil
		return
	}

	return
}
