package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crimson206/func-analyzer/pkg/typeexpr"
)

func newNormalizeCommand() *cobra.Command {
	var (
		colorName string
		ansi      bool
	)

	cmd := &cobra.Command{
		Use:   "normalize <expr> [<expr>...]",
		Short: "Normalize type expressions to canonical form",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				out := typeexpr.Decorate(typeexpr.Normalize(arg), colorName)
				if ansi {
					out = renderANSI(out)
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&colorName, "color", "", "Color name for <fg=COLOR>(...)</> markup")
	cmd.Flags().BoolVar(&ansi, "ansi", false, "Render color markup as ANSI escapes")

	return cmd
}
