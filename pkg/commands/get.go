package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/punch/pkg/printers"
	"tableflip.dev/punch/pkg/store"
	"tableflip.dev/punch/pkg/timeutil"
)

func addGet(topLevel *cobra.Command) {
	report := false
	window := timeutil.DefaultWindow

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show the log, or a per-activity time report.",
		Example: `
punch get
punch get --report
punch get --report --window 3d
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
			entries := p.List(context.Background())

			pp := printers.PrettyPrint{ShowIndex: true}
			now := time.Now()
			if report {
				dur, label, err := timeutil.ParseWindow(window)
				if err != nil {
					return err
				}
				pp.Title("last " + label)
				pp.Report(now, dur, entries...)
				return nil
			}
			pp.Log(now, entries...)
			return nil
		},
	}

	cmd.Flags().BoolVar(&report, "report", false, "Total time per sector/project instead of listing entries.")
	cmd.Flags().StringVarP(&window, "window", "w", timeutil.DefaultWindow,
		`Report window, for example "1w" or "3d12h".`)

	topLevel.AddCommand(cmd)
}
