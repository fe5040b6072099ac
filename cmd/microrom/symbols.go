package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ezrec/microrom/translate"
)

var symbolsCmd = &cobra.Command{
	Use:   "symbols",
	Short: "List the control word field symbols",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		cfg, err := loadConfig()
		if err != nil {
			return
		}

		tab, warnings, err := loadSymbols(cfg)
		if err != nil {
			return
		}

		for _, warning := range warnings {
			translate.Fprintln(cmd.ErrOrStderr(), "warning: %v", warning)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-24s %5s %s\n", "SYMBOL", "WIDTH", "VALUE")
		for name, value := range tab.All() {
			fmt.Fprintf(out, "%-24s %5d %s\n", name, value.Len(), value)
		}

		return
	},
}

func init() {
	rootCmd.AddCommand(symbolsCmd)
}
