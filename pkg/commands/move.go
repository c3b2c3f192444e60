package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/ivy/pkg/runner/move"
	"tableflip.dev/ivy/pkg/store"
)

func addMove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "move <task> <before>",
		Aliases: []string{"mv"},
		Short:   "Place a task in front of another",
		Example: `
ivy move 4 1
ivy mv a9x2 2
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Open(nil)
			if err != nil {
				return err
			}
			s := move.Move{
				From:        args[0],
				To:          args[1],
				Persistence: p,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}
