package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/funvibe/unitguard/internal/diagnostics"
	"github.com/funvibe/unitguard/internal/dimcheck"
	"github.com/spf13/cobra"
)

func newVetCmd(a *app) *cobra.Command {
	var (
		cfgPath string
		dimPkg  string
		tests   bool
	)
	cmd := &cobra.Command{
		Use:   "vet [packages]",
		Short: "Report dimension errors in Go packages",
		Long: `Load the named packages (default ".") and report:

  D001  an As, MustAs, MulAs or DivAs conversion that always fails
  D002  a compile error between measures of different dimensions

Use -c and --dim-package to also check dimension types generated from
your own catalog. The exit status is 1 when anything is reported.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"."}
			}
			checker, err := dimcheck.New()
			if err != nil {
				return err
			}
			checker.Tests = tests

			if dimPkg != "" {
				if cfgPath == "" {
					return fmt.Errorf("--dim-package needs the catalog it was generated from (-c)")
				}
				cfg, err := a.loadCatalog(cfgPath)
				if err != nil {
					return err
				}
				entries, err := cfg.Resolve()
				if err != nil {
					return err
				}
				checker.AddPackage(dimPkg, entries)
				a.logger.Debug("registered dimension package", "path", dimPkg, "dimensions", len(entries))
			}

			a.logger.Debug("loading packages", "patterns", args)
			diags, err := checker.Check(cmd.Context(), args...)
			for _, d := range diags {
				fmt.Fprintf(a.stdout, "%s: %s %s\n",
					a.colors.render(posStyle, d.Pos.String()),
					a.colors.render(codeStyle, "["+string(d.Code)+"]"),
					d.Message)
			}
			if err != nil {
				return err
			}
			if len(diags) > 0 {
				fmt.Fprintln(a.stderr, summarize(diags))
				return &ExitError{Code: 1}
			}
			a.logger.Debug("no dimension errors")
			return nil
		},
	}
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "catalog of an extra dimension package")
	cmd.Flags().StringVar(&dimPkg, "dim-package", "", "import path of the package generated from -c")
	cmd.Flags().BoolVar(&tests, "tests", false, "include test files")
	return cmd
}

// summarize counts diagnostics per code, e.g.
// "3 problems: D001 impossible conversion (2), D002 incompatible dimensions (1)".
func summarize(diags []dimcheck.Diagnostic) string {
	counts := make(map[diagnostics.ErrorCode]int)
	for _, d := range diags {
		counts[d.Code]++
	}
	codes := make([]diagnostics.ErrorCode, 0, len(counts))
	for code := range counts {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })

	parts := make([]string, len(codes))
	for i, code := range codes {
		parts[i] = fmt.Sprintf("%s %s (%d)", code, code.Title(), counts[code])
	}
	noun := "problems"
	if len(diags) == 1 {
		noun = "problem"
	}
	return fmt.Sprintf("%d %s: %s", len(diags), noun, strings.Join(parts, ", "))
}
