package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/armn3t/go-glob"
)

func newFindCommand(flags *globalFlags) *cobra.Command {
	var (
		root string
		long bool
	)

	cmd := &cobra.Command{
		Use:   "find <pattern>...",
		Short: "List paths matching each pattern",
		Long: `Walk the namespace selected by --type and print every file and
directory under --root that matches one of the patterns.

Examples:
  globwalk find --mount GAME=./garrysmod '**/*.lua'
  globwalk find --root my-addon/config 'module?/*.lua'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			logger := setupOutput(cfg, out)

			ns, err := cfg.Mount(logger)
			if err != nil {
				return err
			}
			g := glob.New(ns, glob.WithLogger(logger))

			all := make(glob.Matches)
			for _, pattern := range args {
				matches, err := g.Glob(glob.PathType(cfg.DefaultType), pattern, root)
				if err != nil {
					return err
				}
				for p, kind := range matches {
					all[p] = kind
				}
			}
			printMatches(out, all, long)
			return nil
		},
	}

	cmd.Flags().StringVar(&root, "root", "", "directory inside the namespace to search from")
	cmd.Flags().BoolVarP(&long, "long", "l", false, "prefix each path with its kind")

	return cmd
}

// printMatches writes one path per line in lexical order. Directories are
// highlighted.
func printMatches(w io.Writer, matches glob.Matches, long bool) {
	dirColor := color.New(color.FgBlue, color.Bold)
	for _, p := range matches.Paths() {
		kind := matches[p]
		name := p
		if kind == glob.Dir {
			name = dirColor.Sprint(p)
		}
		if long {
			fmt.Fprintf(w, "%-4s %s\n", kind, name)
		} else {
			fmt.Fprintln(w, name)
		}
	}
}
