package main

import (
	"strings"

	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask <text...>",
	Short: "Run one query and print the reply",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sh, err := newShell(cmd)
		if err != nil {
			return err
		}
		if err := sh.Ask(cmd.Context(), strings.Join(args, " ")); err != nil {
			// Already printed by the shell; only the exit code is left.
			cmd.SilenceErrors = true
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
}
