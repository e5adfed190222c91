package commands

import (
	"context"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/punch/pkg/command"
	"tableflip.dev/punch/pkg/entry"
	"tableflip.dev/punch/pkg/printers"
	"tableflip.dev/punch/pkg/store"
	"tableflip.dev/punch/pkg/tracker"
)

func addDo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "do <command line>",
		Short: "Run one textual command against the log.",
		Example: `
punch do 'start "work" "site" "build feature"'
punch do stop
punch do 'rename "sector" "work" "consulting"'
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			p, err := store.Load(cfg)
			if err != nil {
				return err
			}

			t := &tracker.Tracker{
				Entries:  p.List(context.Background()),
				Notifier: &printers.Console{},
				Palette:  cfg,
				ImportFunc: func() ([]*entry.Entry, error) {
					return store.ImportJSON(cfg.ExportPath)
				},
				ExportFunc: func(entries []*entry.Entry) error {
					return store.Export(entries, cfg.ExportPath)
				},
			}
			var saveErr error
			t.OnChange = func() {
				if err := p.Rewrite(t.Entries); err != nil {
					saveErr = err
				}
				if err := cfg.Save(); err != nil {
					saveErr = err
				}
			}

			parsed, err := command.Parse(strings.Join(args, " "))
			if err != nil {
				// Unknown operations drop silently.
				return nil
			}
			t.Apply(parsed)
			if saveErr != nil {
				return saveErr
			}

			pp := printers.PrettyPrint{ShowIndex: true}
			pp.NewLine()
			pp.Log(time.Now(), t.Entries...)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
