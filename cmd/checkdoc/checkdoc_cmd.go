// Package checkdoc implements the checkdoc command, the docstrings step of
// the check battery.
package checkdoc

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fipl-hse/2024-2-level-ctlr/checks/docstrings"
)

// Cmd represents the checkdoc command.
var Cmd = NewCommand()

// NewCommand returns a new checkdoc command instance.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "checkdoc",
		Short: "Verify that exported declarations carry doc comments.",
		RunE: func(cmd *cobra.Command, args []string) error {
			violations, err := docstrings.CheckTree(".")
			if err != nil {
				return err
			}

			for _, violation := range violations {
				fmt.Fprintln(cmd.OutOrStdout(), violation)
			}
			if len(violations) > 0 {
				return fmt.Errorf("%d exported symbols are undocumented", len(violations))
			}
			return nil
		},
	}
}
