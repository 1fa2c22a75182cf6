package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/armn3t/go-glob"
)

func newMatchCommand() *cobra.Command {
	var parallel bool

	cmd := &cobra.Command{
		Use:   "match <pattern> <path>...",
		Short: "Print the given paths that match a pattern",
		Long: `Match paths against a pattern without touching the filesystem.
A trailing "/" on a path is ignored when matching.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := glob.Compile(args[0])
			if err != nil {
				return err
			}

			var kept []string
			if parallel {
				kept = p.FilterParallel(args[1:])
			} else {
				kept = p.Filter(args[1:])
			}
			for _, path := range kept {
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&parallel, "parallel", false, "match on all CPUs")

	return cmd
}
