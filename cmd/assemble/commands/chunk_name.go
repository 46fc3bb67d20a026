package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/assemble/internal/app"
)

func (c *CLI) newChunkNameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chunk-name [module-paths...]",
		Short: "Print the chunk name a cache group assigns to each module",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			group, _ := cmd.Flags().GetString("group")
			return c.app.ChunkName(cmd.Context(), app.ChunkNameOptions{Group: group, Paths: args})
		},
	}
	cmd.Flags().StringP("group", "g", "vendors", "Cache group key used as the chunk name prefix")
	return cmd
}
