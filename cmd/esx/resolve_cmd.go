package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	goesx "github.com/albertocavalcante/go-esx"
	"github.com/albertocavalcante/go-esx/config"
	"github.com/albertocavalcante/go-esx/esbuildtarget"
	"github.com/albertocavalcante/go-esx/syntax"
)

func printLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func newTargetsCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "targets <syntax>...",
		Short: "Print the bundler target token of each descriptor",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := goesx.ResolveTargets(syntax.Syntax(args), g.options()...)
			if err != nil {
				return err
			}
			return printLines(cmd.OutOrStdout(), tokens)
		},
	}
}

func newBrowserslistCmd(g *globalFlags) *cobra.Command {
	var target string
	cmd := &cobra.Command{
		Use:   "browserslist <syntax>...",
		Short: "Print the browserslist queries for the descriptors",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := append(g.options(), goesx.WithTarget(syntax.Target(target)))
			queries, err := goesx.ResolveBrowserslist(syntax.Syntax(args), opts...)
			if err != nil {
				return err
			}
			return printLines(cmd.OutOrStdout(), queries)
		},
	}
	cmd.Flags().StringVarP(&target, "target", "t", "", "deployment target: node, web or web-worker")
	return cmd
}

func newEsbuildCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "esbuild <syntax>...",
		Short: "Print the esbuild --target value for the descriptors",
		Long: "Print the esbuild --target value for the descriptors. Queries esbuild\n" +
			"cannot express are listed on stderr.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := goesx.ResolveTargets(syntax.Syntax(args), g.options()...)
			if err != nil {
				return err
			}
			opts, err := esbuildtarget.FromTokens(tokens)
			if err != nil {
				return err
			}
			for _, q := range opts.Unmapped {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "warning: no esbuild equivalent for %q\n", q)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), opts.Flag())
			return err
		},
	}
}

// libOutput is the JSON shape of one resolved lib.
type libOutput struct {
	ID           string   `json:"id"`
	Format       string   `json:"format"`
	Syntax       []string `json:"syntax"`
	Target       string   `json:"target,omitempty"`
	Targets      []string `json:"targets"`
	Browserslist []string `json:"browserslist"`
}

func newConfigCmd(g *globalFlags) *cobra.Command {
	var target string
	cmd := &cobra.Command{
		Use:   "config <file>",
		Short: "Resolve every lib of a YAML or Starlark config file as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(args[0])
			if err != nil {
				return err
			}
			opts := append(g.options(), goesx.WithTarget(syntax.Target(target)))
			libs, err := goesx.ComposeConfig(cfg, opts...)
			if err != nil {
				return err
			}

			out := make([]libOutput, 0, len(libs))
			for _, lib := range libs {
				out = append(out, libOutput{
					ID:           lib.Lib.ID,
					Format:       string(lib.Lib.Format),
					Syntax:       lib.Syntax,
					Target:       string(lib.Target),
					Targets:      lib.Targets,
					Browserslist: lib.Browserslist,
				})
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
	cmd.Flags().StringVarP(&target, "target", "t", "", "target for libs that set none")
	return cmd
}
