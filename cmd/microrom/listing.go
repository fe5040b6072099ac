package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ezrec/microrom/microcode"
)

var listingCmd = &cobra.Command{
	Use:   "listing",
	Short: "Print the assembled control store with its fields",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		sess, err := assemble()
		if err != nil {
			return
		}

		return writeListing(cmd.OutOrStdout(), sess.result, (sess.cfg.AddressBits+3)/4)
	},
}

// writeListing prints each control word preceded by the opcodes entering it.
func writeListing(out io.Writer, res *microcode.Result, digits int) (err error) {
	entries := make(map[int][]int)
	for index, slot := range res.Table.Slots {
		if slot.State == microcode.SLOT_ASSIGNED {
			entries[slot.Address] = append(entries[slot.Address], index)
		}
	}

	fallback, has_default := res.Default()

	for _, word := range res.Words {
		if has_default && word.Address == fallback {
			_, err = fmt.Fprintf(out, "#default\n")
			if err != nil {
				return
			}
		}
		for _, opcode := range entries[word.Address] {
			_, err = fmt.Fprintf(out, "#%03x\n", opcode)
			if err != nil {
				return
			}
		}

		fields := make([]string, len(word.Fields))
		for n, field := range word.Fields {
			fields[n] = field.Token + "=" + string(field.Bits)
		}

		_, err = fmt.Fprintf(out, "%0*x  %v  ; %d: %v\n",
			digits, word.Address, word.Bits.Hex(true), word.LineNo, strings.Join(fields, " "))
		if err != nil {
			return
		}
	}

	return
}

func init() {
	rootCmd.AddCommand(listingCmd)
}
