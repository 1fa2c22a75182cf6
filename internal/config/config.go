package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"gopkg.in/yaml.v3"

	"github.com/armn3t/go-glob"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents globwalk configuration options
type Config struct {
	// Namespaces maps a path type to the host directory it is served from
	Namespaces map[string]string `yaml:"namespaces"`

	// DefaultType is the path type used when --type is not given
	DefaultType string `yaml:"default_type"`

	// LogLevel sets the logging verbosity (debug, info, warn, error, none)
	LogLevel string `yaml:"log_level"`

	// Color controls colored output (auto, always, never)
	Color string `yaml:"color"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		Namespaces:  map[string]string{},
		DefaultType: "GAME",
		LogLevel:    "warn",
		Color:       ColorAuto,
	}
}

// LoadConfig loads configuration from a YAML file.
// If the file doesn't exist, it returns the default configuration.
// Relative namespace directories are resolved against the file's directory.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	base := filepath.Dir(path)
	for pt, dir := range fileCfg.Namespaces {
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(base, dir)
		}
		cfg.Namespaces[pt] = dir
	}
	if fileCfg.DefaultType != "" {
		cfg.DefaultType = fileCfg.DefaultType
	}
	if fileCfg.LogLevel != "" {
		cfg.LogLevel = fileCfg.LogLevel
	}
	if fileCfg.Color != "" {
		cfg.Color = fileCfg.Color
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	if _, err := levelOption(c.LogLevel); err != nil {
		return err
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q (want auto, always or never)", c.Color)
	}
	if c.DefaultType == "" {
		return fmt.Errorf("default_type must not be empty")
	}
	return nil
}

// MergeWithFlags merges CLI flags into the configuration.
// Empty values leave the configuration untouched; mounts are TYPE=DIR pairs
// that add to or replace entries of Namespaces.
func (c *Config) MergeWithFlags(mounts []string, pathType, logLevel string, noColor bool) error {
	for _, m := range mounts {
		pt, dir, ok := strings.Cut(m, "=")
		if !ok || pt == "" || dir == "" {
			return fmt.Errorf("invalid mount %q (want TYPE=DIR)", m)
		}
		c.Namespaces[pt] = dir
	}
	if pathType != "" {
		c.DefaultType = pathType
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
	if noColor {
		c.Color = ColorNever
	}
	return c.Validate()
}

// Logger returns a logfmt logger on w filtered by LogLevel.
func (c *Config) Logger(w io.Writer) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	opt, err := levelOption(c.LogLevel)
	if err != nil {
		opt = level.AllowWarn()
	}
	return level.NewFilter(logger, opt)
}

// Mount builds the namespaces described by the configuration.
func (c *Config) Mount(logger log.Logger) (*glob.Namespaces, error) {
	ns := glob.NewNamespaces(logger)

	types := make([]string, 0, len(c.Namespaces))
	for pt := range c.Namespaces {
		types = append(types, pt)
	}
	sort.Strings(types)

	for _, pt := range types {
		if err := ns.MountDir(glob.PathType(pt), c.Namespaces[pt]); err != nil {
			return nil, err
		}
	}
	return ns, nil
}

func levelOption(name string) (level.Option, error) {
	switch strings.ToLower(name) {
	case "debug":
		return level.AllowDebug(), nil
	case "info":
		return level.AllowInfo(), nil
	case "warn", "warning":
		return level.AllowWarn(), nil
	case "error":
		return level.AllowError(), nil
	case "none":
		return level.AllowNone(), nil
	default:
		return nil, fmt.Errorf("invalid log level %q", name)
	}
}
