package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/todos/internal/todos"
)

func newListCmd(e *env) *cobra.Command {
	var o outputFlags
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "Print the starting todos",
		Args:    noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.validate(); err != nil {
				return err
			}
			p, err := e.provider()
			if err != nil {
				return err
			}
			ctx := p.Mount(context.Background())
			defer p.Unmount()

			state, err := todos.StateFrom(ctx)
			if err != nil {
				return err
			}
			return printTodos(cmd.OutOrStdout(), state.State(), o)
		},
	}
	addOutputFlags(cmd, &o)
	return cmd
}

func addOutputFlags(cmd *cobra.Command, o *outputFlags) {
	cmd.Flags().StringVarP(&o.format, "output", "o", formatText, "output format: text, json or yaml")
	cmd.Flags().BoolVar(&o.group, "group", false, "group text output by pending/done")
}

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return usagef("%s: unexpected argument %q", cmd.Name(), args[0])
	}
	return nil
}
