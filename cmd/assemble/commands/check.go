package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/assemble/internal/app"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Compare current build plans against saved snapshots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			modes, _ := cmd.Flags().GetStringSlice("mode")
			return c.app.Check(cmd.Context(), app.CheckOptions{Modes: modes})
		},
	}
	cmd.Flags().StringSliceP("mode", "m", nil, "Modes to check (default all)")
	return cmd
}
