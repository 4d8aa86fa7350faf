// Command esx resolves ECMAScript syntax descriptors to bundler targets and
// browserslist queries, and maintains the requirement table behind them.
//
// Usage:
//
//	esx targets es2018 "Chrome 100"
//	esx browserslist --target web esnext
//	esx esbuild es2020 "node >= 16"
//	esx config LIB.bazel
//	esx check es2022 node 16.9
//	esx generate --coverage plugins.json --out table.json
//
// Exit codes:
//
//	0 = success
//	1 = check found the engine unsupported
//	2 = usage or runtime error
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	goesx "github.com/albertocavalcante/go-esx"
	"github.com/albertocavalcante/go-esx/compat"
	"github.com/albertocavalcante/go-esx/edition"
)

const (
	exitOK          = 0
	exitUnsupported = 1
	exitError       = 2
)

// errUnsupported makes Run exit with exitUnsupported. The command has
// already explained why.
var errUnsupported = errors.New("unsupported")

func main() {
	os.Exit(Run(os.Args[1:], os.Stdout, os.Stderr))
}

// Run is the entrypoint for testing.
func Run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		if errors.Is(err, errUnsupported) {
			return exitUnsupported
		}
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
	return exitOK
}

// globalFlags are shared by every subcommand.
type globalFlags struct {
	verbose      bool
	tableFile    string
	coverageFile string
	stderr       io.Writer
}

func (g *globalFlags) logger() *slog.Logger {
	if !g.verbose {
		return nil
	}
	return slog.New(slog.NewTextHandler(g.stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// options converts the global flags to resolver options.
func (g *globalFlags) options() []goesx.Option {
	var opts []goesx.Option
	if l := g.logger(); l != nil {
		opts = append(opts, goesx.WithLogger(l))
	}
	if g.tableFile != "" {
		opts = append(opts, goesx.WithTableFile(g.tableFile))
	}
	if g.coverageFile != "" {
		opts = append(opts, goesx.WithCoverageFile(g.coverageFile))
	}
	return opts
}

// requirements loads the requirement table the flags point at.
func (g *globalFlags) requirements() (*compat.Table, error) {
	switch {
	case g.tableFile != "" && g.coverageFile != "":
		return nil, goesx.ErrConflictingTables
	case g.tableFile != "":
		return compat.ReadTableFile(g.tableFile)
	case g.coverageFile != "":
		cov, err := compat.ReadCoverageFile(g.coverageFile)
		if err != nil {
			return nil, err
		}
		return compat.Synthesize(edition.Default(), cov, nil)
	default:
		return compat.DefaultTable()
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	g := &globalFlags{stderr: stderr}

	root := &cobra.Command{
		Use:           "esx",
		Short:         "Resolve ECMAScript syntax to bundler targets and browserslist queries",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.BoolVarP(&g.verbose, "verbose", "v", false, "log resolution steps to stderr")
	flags.StringVar(&g.tableFile, "table", "", "requirement table written by 'esx generate'")
	flags.StringVar(&g.coverageFile, "coverage", "", "feature coverage matrix to synthesize the table from")

	root.AddCommand(
		newTargetsCmd(g),
		newBrowserslistCmd(g),
		newEsbuildCmd(g),
		newConfigCmd(g),
		newCheckCmd(g),
		newGenerateCmd(g),
	)
	return root
}
