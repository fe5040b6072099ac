package config

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Load executes a Starlark configuration file, applying its globals over
// the default configuration.
func Load(path string) (cfg *Config, err error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return
	}

	return Parse(path, src, filepath.Dir(path))
}

// Parse executes Starlark configuration source. Relative input paths are
// resolved against dir; the output names are left as given.
func Parse(name string, src []byte, dir string) (cfg *Config, err error) {
	thread := &starlark.Thread{
		Name: name,
		Print: func(_ *starlark.Thread, msg string) {
			log.Printf("%v: %v", name, msg)
		},
	}
	opts := syntax.FileOptions{}

	globals, err := starlark.ExecFileOptions(&opts, thread, name, src, nil)
	if err != nil {
		return
	}

	cfg = Default()
	for _, key := range globals.Keys() {
		if strings.HasPrefix(key, "_") {
			continue
		}
		err = cfg.set(key, globals[key], dir)
		if err != nil {
			cfg = nil
			return
		}
	}

	err = cfg.Validate()
	if err != nil {
		cfg = nil
	}

	return
}

// set applies a single configuration global.
func (cfg *Config) set(key string, value starlark.Value, dir string) (err error) {
	defer func() {
		if err != nil {
			err = &ErrSetting{Name: key, Err: err}
		}
	}()

	path := func(dst *string, relative bool) {
		str, ok := starlark.AsString(value)
		if !ok {
			err = ErrSettingType("string")
			return
		}
		if relative && !filepath.IsAbs(str) {
			str = filepath.Join(dir, str)
		}
		*dst = str
	}

	switch key {
	case "word_width":
		cfg.WordWidth, err = starlark.AsInt32(value)
	case "table_size":
		cfg.TableSize, err = starlark.AsInt32(value)
	case "address_bits":
		cfg.AddressBits, err = starlark.AsInt32(value)
	case "prefix":
		var ok bool
		cfg.Prefix, ok = starlark.AsString(value)
		if !ok {
			err = ErrSettingType("string")
		}
	case "done_token":
		var ok bool
		cfg.DoneToken, ok = starlark.AsString(value)
		if !ok {
			err = ErrSettingType("string")
		}
	case "extended":
		cfg.Extended, err = asPages(value)
	case "multi_exit":
		cfg.MultiExit, err = asUints(value)
	case "symbols":
		path(&cfg.Symbols, true)
	case "microprogram":
		path(&cfg.Microprogram, true)
	case "rom":
		path(&cfg.Rom, false)
	case "table":
		path(&cfg.Table, false)
	default:
		err = ErrSettingUnknown(key)
	}

	return
}

// asUint converts a non-negative Starlark int.
func asUint(value starlark.Value) (u uint, err error) {
	i, err := starlark.AsInt32(value)
	if err != nil {
		return
	}
	if i < 0 {
		err = ErrSettingType("non-negative int")
		return
	}
	u = uint(i)
	return
}

// asUints converts any iterable of non-negative ints.
func asUints(value starlark.Value) (list []uint, err error) {
	iter := starlark.Iterate(value)
	if iter == nil {
		err = ErrSettingType("list of int")
		return
	}
	defer iter.Done()

	list = []uint{}
	var elem starlark.Value
	for iter.Next(&elem) {
		var u uint
		u, err = asUint(elem)
		if err != nil {
			return
		}
		list = append(list, u)
	}

	return
}

// asPages converts an iterable of (prefix, offset) pairs.
func asPages(value starlark.Value) (pages []Page, err error) {
	iter := starlark.Iterate(value)
	if iter == nil {
		err = ErrSettingType("list of (prefix, offset)")
		return
	}
	defer iter.Done()

	pages = []Page{}
	var elem starlark.Value
	for iter.Next(&elem) {
		pair, ok := elem.(starlark.Indexable)
		if !ok || pair.Len() != 2 {
			err = ErrSettingType("list of (prefix, offset)")
			return
		}
		var page Page
		page.Prefix, err = asUint(pair.Index(0))
		if err != nil {
			return
		}
		page.Offset, err = asUint(pair.Index(1))
		if err != nil {
			return
		}
		pages = append(pages, page)
	}

	return
}
