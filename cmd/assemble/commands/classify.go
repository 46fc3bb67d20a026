package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/assemble/internal/app"
)

func (c *CLI) newClassifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify [dir]",
		Short: "Classify every source file of a directory tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")

			opts := app.ClassifyOptions{
				Mode:   modeFrom(cmd),
				Format: format,
			}
			if len(args) == 1 {
				opts.Dir = args[0]
			}
			return c.app.Classify(cmd.Context(), opts)
		},
	}
	addModeFlag(cmd)
	addFormatFlag(cmd)
	return cmd
}
