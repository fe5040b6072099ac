package main

import (
	"github.com/spf13/cobra"

	"github.com/ezrec/microrom/rom"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Assemble the microprogram and write the ROM files",
	Long: `Build assembles the microprogram, prints the assembly report, and writes
the control store image and the opcode translation table.

Nothing is written if assembly fails. Values are written as hex, zero
padded to the width of the control word or address field unless
--compact-hex is given. The ROM file names are relative to --out-dir.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		sess, err := assemble()
		if err != nil {
			return
		}

		img, imgerr := rom.NewImage(sess.result, sess.cfg)

		err = sess.report().Print(cmd.ErrOrStderr())
		if err != nil {
			return
		}

		if imgerr != nil {
			err = imgerr
			return
		}

		w := &rom.Writer{Pad: !opts.compactHex}
		return w.Save(rom.DirFS(opts.outDir), sess.cfg.Rom, sess.cfg.Table, img)
	},
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Assemble the microprogram and print the report only",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		sess, err := assemble()
		if err != nil {
			return
		}

		_, imgerr := rom.NewImage(sess.result, sess.cfg)

		err = sess.report().Print(cmd.ErrOrStderr())
		if err != nil {
			return
		}

		return imgerr
	},
}

func init() {
	flags := buildCmd.Flags()
	flags.StringVarP(&opts.outDir, "out-dir", "o", ".", "directory of the ROM files")
	flags.BoolVar(&opts.compactHex, "compact-hex", false, "write hex values without leading zeros")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(checkCmd)
}
