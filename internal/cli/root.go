package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/todolist/internal/config"
	"github.com/idilsaglam/todolist/internal/tui"
	"github.com/idilsaglam/todolist/internal/ui"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	Backend    string
	DataPath   string
	Key        string
	Style      string
	Theme      string
	LogLevel   string
	LogFile    string
	Color      bool
	NoColor    bool
}

// usageError marks a bad invocation (exit code 2).
type usageError struct{ msg string }

func (e usageError) Error() string { return e.msg }

func usagef(format string, args ...any) error {
	return usageError{msg: fmt.Sprintf(format, args...)}
}

// usageArgs marks argument validation failures as usage errors.
func usageArgs(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			return usageError{msg: err.Error()}
		}
		return nil
	}
}

func flagUsage(_ *cobra.Command, err error) error {
	return usageError{msg: err.Error()}
}

// NewRootCommand creates the root command. Run without a subcommand it
// opens the interactive list.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "todo",
		Short:         "todo - a tiny to-do list",
		Long:          "A to-do list kept in local storage. Run without arguments for the interactive list; click a row to remove it.",
		Args:          usageArgs(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			ui.SetColorForcing(opts.Color, opts.NoColor)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts, io.Discard)
			if err != nil {
				return err
			}
			defer s.Close()
			return tui.Run(s.adapter, s.cfg.ListStyle(), s.log, tui.Options{Theme: s.cfg.Theme})
		},
	}

	f := cmd.PersistentFlags()
	f.StringVar(&opts.ConfigPath, "config", "", "config file (default ./todo.toml, then user config dir)")
	f.StringVar(&opts.Backend, "backend", "", "storage backend (json|sqlite|memory)")
	f.StringVar(&opts.DataPath, "data", "", "storage file path")
	f.StringVar(&opts.Key, "key", "", "storage key (default todo-list-<style>)")
	f.StringVar(&opts.Style, "style", "", "list strategy (mutable|frozen)")
	f.StringVar(&opts.Theme, "theme", "", "color theme (classic|neon|mono)")
	f.StringVar(&opts.LogLevel, "log-level", "", "log level (debug|info|warn|error)")
	f.StringVar(&opts.LogFile, "log-file", "", "append logs to this file")
	f.BoolVar(&opts.Color, "color", false, "force colored output")
	f.BoolVar(&opts.NoColor, "no-color", false, "disable colored output")
	cmd.SetFlagErrorFunc(flagUsage)

	cmd.AddCommand(newAddCommand(opts))
	cmd.AddCommand(newListCommand(opts))
	cmd.AddCommand(newRemoveCommand(opts))
	cmd.AddCommand(newExportCommand(opts))

	return cmd
}

// Execute runs the CLI with args and returns an exit code
// (0 ok, 1 error, 2 usage).
func Execute(args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return 0
	}
	ui.Fail(stderr, err.Error())
	var ue usageError
	if errors.As(err, &ue) {
		return 2
	}
	return 1
}

// applyFlags copies the flags that were set over the loaded config.
func (o *RootOptions) applyFlags(cfg *config.Config) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&cfg.Backend, o.Backend)
	set(&cfg.DataPath, o.DataPath)
	set(&cfg.Key, o.Key)
	set(&cfg.Style, o.Style)
	set(&cfg.Theme, o.Theme)
	set(&cfg.LogLevel, o.LogLevel)
	set(&cfg.LogFile, o.LogFile)
}
