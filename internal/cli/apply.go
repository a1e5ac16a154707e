package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/todos/internal/todos"
	"github.com/idilsaglam/todos/internal/ui"
)

func newApplyCmd(e *env) *cobra.Command {
	var o outputFlags
	cmd := &cobra.Command{
		Use:   "apply <action>...",
		Short: "Dispatch actions against the starting todos and print the result",
		Long: `apply mounts a fresh list, dispatches each action in order and prints
the list that results. Nothing is saved.

Actions:
  create:<text>   append a todo (text may be empty)
  toggle:<id>     flip done on the todo with that id
  remove:<id>     drop the todo with that id`,
		Example: `  todos apply create:D toggle:4 remove:2
  todos apply -o json "create:Buy milk"`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return usagef("usage: todos apply <action>...")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.validate(); err != nil {
				return err
			}
			actions := make([]todos.Action, 0, len(args))
			for _, arg := range args {
				a, err := todos.ParseAction(arg)
				if err != nil {
					return usageError{err}
				}
				actions = append(actions, a)
			}

			p, err := e.provider()
			if err != nil {
				return err
			}
			ctx := p.Mount(context.Background())
			defer p.Unmount()

			dispatch, err := todos.DispatchFrom(ctx)
			if err != nil {
				return err
			}
			for _, a := range actions {
				dispatch(a)
			}

			state, err := todos.StateFrom(ctx)
			if err != nil {
				return err
			}
			if err := printTodos(cmd.OutOrStdout(), state.State(), o); err != nil {
				return err
			}
			if o.format == formatText {
				ui.OK(cmd.OutOrStdout(), fmt.Sprintf("applied %d action(s)", len(actions)))
			}
			return nil
		},
	}
	addOutputFlags(cmd, &o)
	return cmd
}
