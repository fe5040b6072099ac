// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package bits encodes sized numeric literals into fixed-width bit strings.
//
// A sized literal has the form <width>'<format><digits>, where format is one
// of b (binary), h (hexadecimal) or d (decimal). The literal 4'd5 encodes to
// the bit string "0101". Underscores may separate digits, as in Verilog.
package bits
