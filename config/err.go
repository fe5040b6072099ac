package config

import (
	"errors"

	"github.com/ezrec/microrom/translate"
)

var f = translate.From

var (
	ErrWordWidth   = errors.New(f("word_width must be positive"))
	ErrTableSize   = errors.New(f("table_size must be positive"))
	ErrAddressBits = errors.New(f("address_bits must be between 1 and 32"))
	ErrDoneToken   = errors.New(f("done_token must not be empty"))
)

// ErrSetting reports a configuration setting with a bad value.
type ErrSetting struct {
	Name string
	Err  error
}

func (err ErrSetting) Error() string {
	return f("setting %v: %v", err.Name, err.Err)
}

func (err ErrSetting) Unwrap() error {
	return err.Err
}

type ErrSettingUnknown string

func (err ErrSettingUnknown) Error() string {
	return f("unknown setting %v", string(err))
}

type ErrSettingType string

func (err ErrSettingType) Error() string {
	return f("expected %v", string(err))
}

// ErrPage reports an extended opcode page that does not fit the table.
type ErrPage struct {
	Prefix uint
	Offset uint
}

func (err ErrPage) Error() string {
	return f("extended page %#x at offset %#x does not fit the table", err.Prefix, err.Offset)
}
