package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/todolist/internal/app"
	"github.com/idilsaglam/todolist/internal/ui"
	"github.com/idilsaglam/todolist/internal/view"
)

func newAddCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text...>",
		Short: "Add an item (text can be multiple words)",
		Example: `  todo add "Buy milk"
  todo add call the plumber`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return usagef("usage: todo add <text...>")
			}
			s, err := openSession(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.Close()

			a := app.New(s.adapter, s.cfg.ListStyle(), nil, s.log)
			if !a.Submit(strings.Join(args, " ")) {
				return usagef("add: empty item")
			}
			ui.OK(cmd.OutOrStdout(), "added")
			return nil
		},
	}
}

func newListCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "Print the list",
		Args:    usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.Close()

			// The initial render pass prints the panel.
			app.New(s.adapter, s.cfg.ListStyle(), view.New(ui.PanelSink{W: cmd.OutOrStdout()}), s.log)
			return nil
		},
	}
}

func newRemoveCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <index>",
		Aliases: []string{"remove"},
		Short:   "Remove the item at a 1-based index",
		Example: "  todo rm 2",
		Args:    usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return usagef("rm: not a number: %s", args[0])
			}
			s, err := openSession(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.Close()

			a := app.New(s.adapter, s.cfg.ListStyle(), nil, s.log)
			if !a.Remove(n - 1) {
				ui.Hint(cmd.ErrOrStderr(), "Hint: run `todo ls` to see valid indexes")
				return usagef("index out of range: have %d, got %d", len(a.Items()), n)
			}
			ui.OK(cmd.OutOrStdout(), "removed")
			return nil
		},
	}
}

func newExportCommand(opts *RootOptions) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the stored list (json: the persisted encoding)",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "json" && format != "yaml" {
				return usagef("export: invalid format %q: must be json or yaml", format)
			}
			s, err := openSession(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.Close()

			a := app.New(s.adapter, s.cfg.ListStyle(), nil, s.log)
			out := cmd.OutOrStdout()
			if format == "json" {
				fmt.Fprintln(out, a.Serialized())
				return nil
			}
			b, err := yaml.Marshal(struct {
				List []string `yaml:"list"`
			}{List: a.Items()})
			if err != nil {
				return fmt.Errorf("yaml marshal: %w", err)
			}
			_, err = out.Write(b)
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format (json|yaml)")
	return cmd
}
