package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/carve/internal/app"
	"go.trai.ch/carve/internal/core/domain"
)

func (c *CLI) newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Compile a file and print its instantiated node tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return domain.ErrNoInputSpecified
			}
			dumpAST, _ := cmd.Flags().GetBool("dump-ast")
			return c.components.App.Render(cmd.Context(), args[0], app.RenderOptions{
				DumpAST: dumpAST,
			})
		},
	}

	cmd.Flags().Bool("dump-ast", false, "Print the parsed module before the node tree")

	return cmd
}
