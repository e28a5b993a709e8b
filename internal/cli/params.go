package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/crimson206/func-analyzer/pkg/docstring"
)

func newParamsCommand() *cobra.Command {
	var (
		styleName string
		format    string
	)

	cmd := &cobra.Command{
		Use:   "params [file]",
		Short: "Extract parameter descriptions from a docstring",
		Long:  "Reads a docstring from a file (or stdin with no argument or '-') and prints the parameter name to description mapping.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			style, err := docstring.ParseStyle(styleName)
			if err != nil {
				return err
			}
			text, err := readDocstring(cmd, args)
			if err != nil {
				return err
			}
			params := docstring.Extract(text, style)
			return writeFormatted(cmd.OutOrStdout(), format, params)
		},
	}

	cmd.Flags().StringVar(&styleName, "style", "auto", "Docstring style: google, numpy, sphinx or auto")
	cmd.Flags().StringVar(&format, "format", "json", "Output format: json or yaml")

	return cmd
}

func readDocstring(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(filepath.Clean(args[0]))
	if err != nil {
		return "", fmt.Errorf("read docstring file: %w", err)
	}
	return string(data), nil
}
