package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/ivy/pkg/runner/sweep"
	"tableflip.dev/ivy/pkg/store"
)

func addSweep(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Move finished tasks into the done list",
		Example: `
ivy sweep
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Open(nil)
			if err != nil {
				return err
			}
			s := sweep.Sweep{
				Persistence: p,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}
