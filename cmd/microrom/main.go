// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"fmt"
	"log"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/ezrec/microrom/config"
	"github.com/ezrec/microrom/diag"
	"github.com/ezrec/microrom/internal"
	"github.com/ezrec/microrom/microcode"
	"github.com/ezrec/microrom/symbol"
)

// options are the command line options.
type options struct {
	config       string
	symbols      string
	microprogram string
	outDir       string
	compactHex   bool
	verbose      bool
}

var opts options

var rootCmd = &cobra.Command{
	Use:   "microrom",
	Short: "Micro-assembler for the control store ROM",
	Long: `Microrom assembles a microprogram into a control store image and an
opcode translation table.

Control word fields are named by the localparam declarations of a
SystemVerilog source whose names carry the field prefix (MICRO_ by default).
The microprogram holds one control word per line, '#<hex>' opcode entry
points and a '#default' fallback for unimplemented opcodes.

Settings may be changed with a Starlark configuration file (--config).`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.config, "config", "c", "", "Starlark configuration file")
	flags.StringVarP(&opts.symbols, "symbols", "s", "", "SystemVerilog source with the field localparams")
	flags.StringVarP(&opts.microprogram, "microprogram", "m", "", "microprogram source")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose mode")
}

// loadConfig loads the configuration, applying the command line overrides.
func loadConfig() (cfg *config.Config, err error) {
	if len(opts.config) == 0 {
		cfg = config.Default()
	} else {
		cfg, err = config.Load(opts.config)
		if err != nil {
			return
		}
	}

	if len(opts.symbols) != 0 {
		cfg.Symbols = opts.symbols
	}
	if len(opts.microprogram) != 0 {
		cfg.Microprogram = opts.microprogram
	}

	return
}

// loadSymbols builds the symbol table.
func loadSymbols(cfg *config.Config) (tab *symbol.Table, warnings []diag.Warning, err error) {
	inf, err := os.Open(cfg.Symbols)
	if err != nil {
		return
	}
	defer inf.Close()

	builder := &symbol.Builder{
		Verbose: opts.verbose,
		Prefix:  cfg.Prefix,
		Source:  cfg.Symbols,
	}

	return builder.Parse(inf)
}

// session is a finished assembly pass.
type session struct {
	cfg      *config.Config
	symbols  *symbol.Table
	result   *microcode.Result
	warnings []diag.Warning // Symbol table warnings.
}

// assemble loads the configuration and inputs, and assembles the microprogram.
func assemble() (sess *session, err error) {
	sess = &session{}

	sess.cfg, err = loadConfig()
	if err != nil {
		return
	}

	sess.symbols, sess.warnings, err = loadSymbols(sess.cfg)
	if err != nil {
		return
	}

	inf, err := os.Open(sess.cfg.Microprogram)
	if err != nil {
		return
	}
	defer inf.Close()

	asm := &microcode.Assembler{
		Verbose: opts.verbose,
		Source:  sess.cfg.Microprogram,
		Config:  sess.cfg,
		Symbols: sess.symbols,
	}

	sess.result, err = asm.Assemble(inf)
	if err != nil {
		err = fmt.Errorf("%v: %w", asm.Source, err)
		return
	}

	return
}

// report validates the assembly, with the symbol table warnings first.
func (sess *session) report() (rep *microcode.Report) {
	rep = microcode.Validate(sess.result)
	rep.Warnings = slices.Collect(internal.Concat(
		slices.Values(sess.warnings),
		slices.Values(rep.Warnings),
	))
	return
}

func main() {
	log.SetFlags(0)

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}
}
