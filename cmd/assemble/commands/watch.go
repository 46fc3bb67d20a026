package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/assemble/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-print the build plan whenever the project config changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, _ := cmd.Flags().GetString("format")
			return c.app.Watch(cmd.Context(), app.WatchOptions{
				Mode:   modeFrom(cmd),
				Format: format,
			})
		},
	}
	addModeFlag(cmd)
	addFormatFlag(cmd)
	return cmd
}
