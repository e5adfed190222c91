package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/punch/pkg/store"
)

func addExport(topLevel *cobra.Command) {
	out := ""

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the log to a file (.json or .csv by extension).",
		Example: `
punch export
punch export --out activity.csv
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
			path := out
			if path == "" {
				path = cfg.ExportPath
			}
			entries := p.List(context.Background())
			if err := store.Export(entries, path); err != nil {
				return err
			}
			fmt.Printf("exported %d entries to %s\n", len(entries), path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Destination file. Defaults to the configured export path.")

	topLevel.AddCommand(cmd)
}

func addImport(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the log with a JSON export.",
		Example: `
punch import punch-export.json
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			p, err := store.Load(cfg)
			if err != nil {
				return err
			}
			entries, err := store.ImportJSON(args[0])
			if err != nil {
				return err
			}
			if err := p.Rewrite(entries); err != nil {
				return err
			}
			fmt.Printf("imported %d entries\n", len(entries))
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
