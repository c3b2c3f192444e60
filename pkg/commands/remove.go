package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/ivy/pkg/runner/remove"
	"tableflip.dev/ivy/pkg/store"
)

func addRemove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a task completely",
		Long:    "Delete a task by ID from whichever list holds it. There is no undo.",
		Example: `
ivy remove a9x2
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Open(nil)
			if err != nil {
				return err
			}
			s := remove.Remove{
				ID:          args[0],
				Persistence: p,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}
