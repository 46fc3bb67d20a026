package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/assemble/internal/app"
)

func (c *CLI) newMatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match [paths...]",
		Short: "Show the rule and transform chain for each path",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return nil
			}
			format, _ := cmd.Flags().GetString("format")

			return c.app.Match(cmd.Context(), app.MatchOptions{
				Mode:   modeFrom(cmd),
				Format: format,
				Paths:  args,
			})
		},
	}
	addModeFlag(cmd)
	addFormatFlag(cmd)
	return cmd
}
