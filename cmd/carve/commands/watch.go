package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/carve/internal/core/domain"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <file>",
		Short: "Render a file and re-render it whenever it or a dependency changes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return domain.ErrNoInputSpecified
			}
			return c.components.App.Watch(cmd.Context(), args[0])
		},
	}
}
