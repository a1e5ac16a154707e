// Package cli wires the todos command tree.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/todos/internal/config"
	"github.com/idilsaglam/todos/internal/logging"
	"github.com/idilsaglam/todos/internal/store/seed"
	"github.com/idilsaglam/todos/internal/todos"
	"github.com/idilsaglam/todos/internal/ui"
)

// Exit codes: 0 ok, 1 error, 2 usage.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// interactiveAnnotation marks commands that own the terminal; their logs
// never go to stderr.
const interactiveAnnotation = "interactive"

var version = "dev"

// SetVersion sets the string printed by `todos version`.
func SetVersion(v string) { version = v }

// usageError marks errors that should exit with ExitUsage.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func usagef(format string, args ...any) error {
	return usageError{fmt.Errorf(format, args...)}
}

// globalFlags mirror the config keys they override.
type globalFlags struct {
	configPath string
	seedFile   string
	theme      string
	logLevel   string
	logFormat  string
	logFile    string
	noColor    bool
}

// env is what every subcommand runs with once the root has loaded config.
type env struct {
	flags  globalFlags
	cfg    *config.Config
	logger *log.Logger
	closer io.Closer
}

// provider builds an unmounted provider from the configured seed.
func (e *env) provider() (*todos.Provider, error) {
	s, err := seed.Load(e.cfg.SeedFile)
	if err != nil {
		return nil, err
	}
	return todos.NewProvider(s, todos.WithLogger(e.logger)), nil
}

// NewRootCmd builds the command tree writing to out and errOut.
func NewRootCmd(out, errOut io.Writer) *cobra.Command {
	root, _ := newRoot(out, errOut)
	return root
}

func newRoot(out, errOut io.Writer) (*cobra.Command, *env) {
	e := &env{logger: logging.Discard()}

	root := &cobra.Command{
		Use:   "todos",
		Short: "todos - a tiny to-do list for the terminal",
		Long: `todos keeps a small to-do list in memory for as long as it runs.

Run it without a subcommand for the interactive list: type a title and
press enter to add it, tab to the list, space to toggle, x to remove.
Nothing is saved; every run starts from the seed list.`,
		Annotations:   map[string]string{interactiveAnnotation: "true"},
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.setup(cmd)
		},
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usagef("unknown subcommand: %s", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, e)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError{err}
	})

	pf := root.PersistentFlags()
	pf.StringVar(&e.flags.configPath, "config", "", "config file (default: <user config dir>/todos/config.toml)")
	pf.StringVar(&e.flags.seedFile, "seed", "", "JSON file with the starting todos (read only)")
	pf.StringVar(&e.flags.theme, "theme", "", "theme: "+strings.Join(ui.Themes(), ", "))
	pf.StringVar(&e.flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&e.flags.logFormat, "log-format", "", "log format: text, logfmt or json")
	pf.StringVar(&e.flags.logFile, "log-file", "", "append logs to this file")
	pf.BoolVar(&e.flags.noColor, "no-color", false, "disable colour output")

	root.AddCommand(
		newRunCmd(e),
		newListCmd(e),
		newApplyCmd(e),
		newVersionCmd(),
	)
	return root, e
}

// close releases the log file, if one was opened. cobra skips post-run
// hooks when a command fails, so callers close after Execute returns.
func (e *env) close() error {
	if e.closer == nil {
		return nil
	}
	return e.closer.Close()
}

// setup loads config, applies flags that were set, and opens the logger.
func (e *env) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(e.flags.configPath)
	if err != nil {
		return err
	}

	fs := cmd.Flags()
	if fs.Changed("seed") {
		cfg.SeedFile = e.flags.seedFile
	}
	if fs.Changed("theme") {
		cfg.Theme = e.flags.theme
	}
	if fs.Changed("log-level") {
		cfg.Log.Level = e.flags.logLevel
	}
	if fs.Changed("log-format") {
		cfg.Log.Format = e.flags.logFormat
	}
	if fs.Changed("log-file") {
		cfg.Log.File = e.flags.logFile
	}
	if fs.Changed("no-color") {
		cfg.NoColor = e.flags.noColor
	}
	e.cfg = cfg

	if !ui.IsTheme(cfg.Theme) {
		return usagef("unknown theme %q (want %s)", cfg.Theme, strings.Join(ui.Themes(), ", "))
	}
	ui.SetTheme(cfg.Theme)
	ui.SetColor(!cfg.NoColor)

	var fallback io.Writer = cmd.ErrOrStderr()
	if cmd.Annotations[interactiveAnnotation] == "true" {
		fallback = io.Discard
	}
	logger, closer, err := logging.Open(cfg.Log.Level, cfg.Log.Format, cfg.Log.File, fallback)
	if err != nil {
		return err
	}
	e.logger, e.closer = logger, closer
	e.logger.Debug("config loaded", "theme", cfg.Theme, "seed", cfg.SeedFile)
	return nil
}

// Execute runs the command tree with args and returns the process exit code.
func Execute(args []string, out, errOut io.Writer) int {
	root, e := newRoot(out, errOut)
	return execute(root, e, args, errOut)
}

func execute(root *cobra.Command, e *env, args []string, errOut io.Writer) int {
	defer e.close()
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		ui.Fail(errOut, err.Error())
		var ue usageError
		if errors.As(err, &ue) {
			fmt.Fprintln(errOut)
			fmt.Fprintln(errOut, root.UsageString())
			return ExitUsage
		}
		return ExitError
	}
	return ExitOK
}

// Main is Execute on the process arguments and standard streams.
func Main() int {
	return Execute(os.Args[1:], os.Stdout, os.Stderr)
}
