package rom

import (
	"github.com/ezrec/microrom/translate"
)

var f = translate.From

// ErrAddressOverflow is a translation table address wider than the
// address field.
type ErrAddressOverflow struct {
	Slot    int
	Address int
	Bits    int
}

func (err ErrAddressOverflow) Error() string {
	return f("opcode %#x address %#x does not fit in %v bits", err.Slot, err.Address, err.Bits)
}

// ErrStoreOverflow is a control store larger than the address space.
type ErrStoreOverflow struct {
	Words int
	Bits  int
}

func (err ErrStoreOverflow) Error() string {
	return f("%v control words do not fit in %v address bits", err.Words, err.Bits)
}
