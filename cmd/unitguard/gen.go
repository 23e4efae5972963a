package main

import (
	"fmt"
	"os"

	"github.com/funvibe/unitguard/internal/codegen"
	"github.com/spf13/cobra"
)

func newGenCmd(a *app) *cobra.Command {
	var cfgPath, output string
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate dimension types from a catalog",
		Long: `Generate Go declarations for every dimension in the catalog: a marker
type with a Unit method, a generic measure alias, and a lookup table.

Without -o the code is written to standard output.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadCatalog(cfgPath)
			if err != nil {
				return err
			}
			entries, err := cfg.Resolve()
			if err != nil {
				return err
			}
			src, err := codegen.Generate(cfg, entries)
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				_, err = a.stdout.Write(src)
				return err
			}
			if err := os.WriteFile(output, src, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}
			a.logger.Info("generated", "file", output, "package", cfg.Package, "dimensions", len(entries))
			return nil
		},
	}
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "catalog file (default: nearest unitguard.yaml, else built-in)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	return cmd
}
