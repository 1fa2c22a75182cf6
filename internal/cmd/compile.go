package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/armn3t/go-glob"
)

func newCompileCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "compile <pattern>",
		Short: "Show the segment chain a pattern compiles to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := glob.Compile(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, seg := range p.Segments() {
				kind := seg.Kind.String()
				if seg.Globstar {
					kind = "globstar"
				}
				fmt.Fprintf(out, "%d\t%s\t%s\n", i, kind, seg.Value)
			}
			fmt.Fprintf(out, "regexp\t%s\n", p.Regexp())
			return nil
		},
	}
}
