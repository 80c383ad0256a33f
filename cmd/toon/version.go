package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/macropower/toon/version"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "toon %s\n", version.String())

			return nil
		},
	}
}
