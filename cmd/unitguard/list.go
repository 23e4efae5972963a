package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	var cfgPath string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog dimensions with their units",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadCatalog(cfgPath)
			if err != nil {
				return err
			}
			entries, err := cfg.Resolve()
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
			for _, e := range entries {
				note := ""
				if e.AliasOf != "" {
					note = "= " + e.AliasOf
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", a.colors.render(nameStyle, e.Name), a.colors.render(unitStyle, e.Unit.String()), note)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "catalog file (default: nearest unitguard.yaml, else built-in)")
	return cmd
}
