// Package microcode implements the micro-assembler for a control store ROM.
//
// A microprogram source holds one control word per line. Each word is a
// whitespace separated list of field symbols or sized literals whose bits
// are concatenated, most significant field first. Lines starting with '#'
// are directives: '#<hex>' marks the entry point of an opcode and
// '#default' marks the code every unimplemented opcode falls back to.
// Comments start with '//'.
//
// The Assembler makes a single pass over the source, building the control
// store and the opcode translation table. Validate then looks for opcodes
// whose microprograms are bit for bit identical.
package microcode
