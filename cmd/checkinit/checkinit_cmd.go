// Package checkinit implements the checkinit command, the initfiles step of
// the check battery.
package checkinit

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fipl-hse/2024-2-level-ctlr/checks/initfile"
)

// Cmd represents the checkinit command.
var Cmd = NewCommand()

// NewCommand returns a new checkinit command instance.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "checkinit",
		Short: "Verify that every package declares a package doc comment.",
		RunE: func(cmd *cobra.Command, args []string) error {
			violations, err := initfile.CheckTree(".")
			if err != nil {
				return err
			}

			for _, violation := range violations {
				fmt.Fprintln(cmd.OutOrStdout(), violation)
			}
			if len(violations) > 0 {
				return fmt.Errorf("%d packages have no package doc comment", len(violations))
			}
			return nil
		},
	}
}
