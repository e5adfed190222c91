package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/punch/pkg/store"
	"tableflip.dev/punch/pkg/tui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive prompt.",
		Example: `
punch ui
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			p, err := store.Load(cfg)
			if err != nil {
				return err
			}
			return tui.Run(cfg, p)
		},
	}

	topLevel.AddCommand(cmd)
}
