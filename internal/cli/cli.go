// Package cli implements the ecbingo command-line interface.
//
// Board records move through stdin and stdout so commands compose in a
// shell pipeline:
//
//	ecbingo new | ecbingo mark G3 Think | ecbingo render > board.png
//
// Logs and status lines go to stderr. The logger travels through the command
// context; see withLogger.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ecbingo/ecbingo/pkg/buildinfo"
	"github.com/ecbingo/ecbingo/pkg/config"
)

// appName is the binary and directory name.
const appName = "ecbingo"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	configPath string
	verbose    bool
	cfg        *config.Config
}

// New creates a CLI wired to the process's standard streams.
func New(level log.Level) *CLI {
	return NewWithIO(os.Stdin, os.Stdout, os.Stderr, level)
}

// NewWithIO creates a CLI reading records from in, writing results to out and
// logs to errw.
func NewWithIO(in io.Reader, out, errw io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(errw, level),
		stdin:  in,
		stdout: out,
		stderr: errw,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "ecbingo creates, marks and renders Emote Collector bingo boards",
		Long: `ecbingo maintains Emote Collector bingo boards.

A board is a JSON record holding 24 categories and the emote images marking
cells on a 5x5 card whose center (N3) is free. Records are read from stdin and
written to stdout, so commands chain:

  ecbingo new > board.json
  ecbingo mark G3 Think < board.json > marked.json
  ecbingo render < marked.json > board.png`,
		Version:       buildinfo.Resolved(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			registerHooks(c.Logger)
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetIn(c.stdin)
	root.SetOut(c.stdout)
	root.SetErr(c.stderr)

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default "+config.DefaultPath()+")")

	root.AddCommand(c.newCommand())
	root.AddCommand(c.markCommand())
	root.AddCommand(c.unmarkCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// Execute runs the command tree with args.
func (c *CLI) Execute(ctx context.Context, args []string) error {
	root := c.RootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// loadConfig loads settings once per invocation.
func (c *CLI) loadConfig() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("config loaded", "catalog", cfg.CatalogURL, "cache", cfg.CacheDir, "redis", cfg.RedisURL != "")
	c.cfg = cfg
	return cfg, nil
}
