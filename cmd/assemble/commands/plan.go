package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/assemble/internal/app"
)

func (c *CLI) newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Print the build plan for a mode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, _ := cmd.Flags().GetString("format")
			save, _ := cmd.Flags().GetBool("save")

			return c.app.Plan(cmd.Context(), app.PlanOptions{
				Mode:   modeFrom(cmd),
				Format: format,
				Save:   save,
			})
		},
	}
	addModeFlag(cmd)
	addFormatFlag(cmd)
	cmd.Flags().BoolP("save", "s", false, "Save the plan as the reference snapshot for check")
	return cmd
}
