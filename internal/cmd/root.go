package cmd

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/go-kit/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/armn3t/go-glob/internal/config"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	mounts     []string
	pathType   string
	logLevel   string
	noColor    bool
}

// NewRootCommand creates and returns the root cobra command for globwalk
func NewRootCommand() *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:   "globwalk",
		Short: "Find files and directories matching glob patterns",
		Long: `globwalk matches paths against shell-style glob patterns
("*", "?", "[...]" and the standalone globstar "**").

Directories are served per path type (namespace). Namespaces come from
the config file and from --mount TYPE=DIR flags.`,
		Version:      Version,
		SilenceUsage: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", ".globwalk.yaml", "path to config file")
	pf.StringArrayVar(&flags.mounts, "mount", nil, "serve a path type from a directory (TYPE=DIR, repeatable)")
	pf.StringVar(&flags.pathType, "type", "", "path type to search (default from config)")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error, none")
	pf.BoolVar(&flags.noColor, "no-color", false, "disable colored output")

	cmd.AddCommand(newFindCommand(flags))
	cmd.AddCommand(newMatchCommand())
	cmd.AddCommand(newCompileCommand())

	return cmd
}

// load reads the config file and applies the global flags on top of it.
func (f *globalFlags) load() (*config.Config, error) {
	cfg, err := config.LoadConfig(f.configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.MergeWithFlags(f.mounts, f.pathType, f.logLevel, f.noColor); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setupOutput decides whether out gets colors and returns the logger.
func setupOutput(cfg *config.Config, out io.Writer) log.Logger {
	switch cfg.Color {
	case config.ColorAlways:
		color.NoColor = false
	case config.ColorNever:
		color.NoColor = true
	default:
		f, ok := out.(*os.File)
		color.NoColor = !ok || !(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
	}
	return cfg.Logger(os.Stderr)
}
