// Command unitguard generates dimension types from a catalog and checks Go
// packages for dimension errors.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
)

// app carries the state shared by all subcommands.
type app struct {
	verbose bool
	stdout  io.Writer
	stderr  io.Writer
	logger  *log.Logger
	colors  palette
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		stdout: stdout,
		stderr: stderr,
		logger: log.NewWithOptions(stderr, log.Options{
			Prefix: "unitguard",
			Level:  log.WarnLevel,
		}),
		colors: newPalette(stdout),
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "unitguard",
		Short: "Dimension types for Go",
		Long: `unitguard generates Go dimension types from a YAML catalog and checks
packages that use them for dimension errors.

Examples:
  unitguard gen -o dimensions_gen.go   Generate from unitguard.yaml or the built-in catalog
  unitguard list                       Show every dimension with its unit
  unitguard vet ./...                  Report dimension errors`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if a.verbose {
				a.logger.SetLevel(log.DebugLevel)
			}
		},
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")

	root.AddCommand(newGenCmd(a))
	root.AddCommand(newListCmd(a))
	root.AddCommand(newVetCmd(a))
	return root
}

// run executes the CLI and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	a := newApp(stdout, stderr)
	root := newRootCmd(a)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Err != nil {
				fmt.Fprintln(stderr, a.colors.render(errorStyle, "error: ")+exitErr.Err.Error())
			}
			return exitErr.Code
		}
		fmt.Fprintln(stderr, a.colors.render(errorStyle, "error: ")+err.Error())
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// ExitError signals a non-zero exit code without calling os.Exit in RunE.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *ExitError) Unwrap() error { return e.Err }
