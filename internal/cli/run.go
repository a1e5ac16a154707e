package cli

import (
	"github.com/spf13/cobra"

	"github.com/idilsaglam/todos/internal/ui"
)

func newRunCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:         "run",
		Short:       "Open the interactive list (default)",
		Args:        noArgs,
		Annotations: map[string]string{interactiveAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, e)
		},
	}
}

func runInteractive(cmd *cobra.Command, e *env) error {
	p, err := e.provider()
	if err != nil {
		return err
	}
	return ui.Run(cmd.Context(), p, ui.Options{
		Placeholder: e.cfg.Placeholder,
		AltScreen:   e.cfg.AltScreen,
		Logger:      e.logger,
	})
}
