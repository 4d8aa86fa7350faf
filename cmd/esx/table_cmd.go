package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/albertocavalcante/go-esx/edition"
)

func newGenerateCmd(g *globalFlags) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Synthesize the requirement table and write it as JSON",
		Long: "Synthesize the requirement table from the coverage matrix (the embedded\n" +
			"one unless --coverage is given) and write it to --out or stdout.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			table, err := g.requirements()
			if err != nil {
				return err
			}
			if out == "" {
				_, err = table.WriteTo(cmd.OutOrStdout())
				return err
			}
			if err := table.WriteFile(out); err != nil {
				return err
			}
			if l := g.logger(); l != nil {
				l.Debug("wrote requirement table", "path", out, "editions", table.Len())
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	return cmd
}

// checkAliases maps editions that share another edition's requirement.
var checkAliases = map[edition.Edition]edition.Edition{
	edition.ES6:    edition.ES2015,
	edition.ES2023: edition.ES2022,
}

func newCheckCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check <edition> <engine> <version>",
		Short: "Check whether an engine version runs an edition natively",
		Long: "Check whether an engine version runs an edition natively.\n\n" +
			"<edition> is one of es6 and es2015 through es2023. es5 is a fixed query\n" +
			"list and es2024/esnext follow the latest engines, so neither has a\n" +
			"minimum version to check against.",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := g.requirements()
			if err != nil {
				return err
			}
			e := edition.Normalize(args[0])
			if of, ok := checkAliases[e]; ok {
				e = of
			}
			switch {
			case e == edition.ES5:
				return fmt.Errorf("%s is not checkable: it resolves to a literal query list, not a feature requirement", args[0])
			case e.IsLatest():
				return fmt.Errorf("%s is not checkable: it follows the latest engine releases, not a minimum version", args[0])
			}

			warning, err := table.CheckEngine(e, args[1], args[2])
			if err != nil {
				return err
			}
			if warning != nil {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), warning.String())
				return errUnsupported
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s supports %s\n", args[1], args[2], e)
			return err
		},
	}
}
