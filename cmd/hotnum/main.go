// hotnum is the command-line front end for the hotscript computation core:
// an interactive REPL over the operation catalog, plus one-shot evaluation.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/DetachHead/hotscript"
)

const appName = "hotnum"

func main() {
	root := &cobra.Command{
		Use:           appName,
		Short:         "exact integer arithmetic with curried operations",
		Version:       hotscript.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newReplCmd(), newEvalCmd(), newOpsCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(1)
	}
}

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <line> [<line>...]",
		Short: "Evaluate command lines and print each result",
		Long: `Evaluate one command line per argument against a single session,
so a pending operation from one line can be completed by the next:

  hotnum eval "sub 2" "10"
  hotnum eval "power 2 128"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := hotscript.NewSession()
			for _, line := range args {
				v, err := s.Eval(line)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), v)
			}
			return nil
		},
	}
}

func newOpsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "List the operation catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg := hotscript.Catalog()
			for _, name := range reg.Ops() {
				d, _ := reg.Op(name)
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s %s\n", name, d.Doc)
			}
			return nil
		},
	}
}
