// Package commands wires the CLI surface.
package commands

import (
	"github.com/spf13/cobra"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "punch",
		Short: "Activity logging on the command line.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addDo(topLevel)
	addUI(topLevel)
	addGet(topLevel)
	addExport(topLevel)
	addImport(topLevel)
	addVersion(topLevel)
}
