package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/ivy/pkg/runner/finish"
	"tableflip.dev/ivy/pkg/store"
)

func addFinish(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "finish [task ...]",
		Aliases: []string{"f"},
		Short:   "Mark tasks finished, by number or ID",
		Long: "Mark open tasks finished. Tasks stay in place until the next sweep.\n" +
			"With no argument the first unfinished task is marked.",
		Example: `
ivy finish
ivy finish 2
ivy f 1 3 a9x2
`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Open(nil)
			if err != nil {
				return err
			}
			s := finish.Finish{
				Refs:        args,
				Persistence: p,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}
