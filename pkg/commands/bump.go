package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/ivy/pkg/runner/bump"
	"tableflip.dev/ivy/pkg/store"
)

func addBump(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "bump <task ...>",
		Short: "Send tasks to the end of the open list",
		Example: `
ivy bump 1
ivy bump 2 5 a9x2
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a task number or ID")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Open(nil)
			if err != nil {
				return err
			}
			s := bump.Bump{
				Refs:        args,
				Persistence: p,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}
