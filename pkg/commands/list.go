package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/ivy/pkg/commands/options"
	"tableflip.dev/ivy/pkg/runner/list"
	"tableflip.dev/ivy/pkg/store"
)

func addList(topLevel *cobra.Command) {
	lo := &options.ListOptions{}

	cmd := &cobra.Command{
		Use:     "list [+tag ...] [/tag ...]",
		Aliases: []string{"ls"},
		Short:   "List all tasks as a table",
		Example: `
ivy list
ivy ls --open +work
ivy ls --done
`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Open(nil)
			if err != nil {
				return err
			}
			s := list.List{
				Filter:      args,
				OpenOnly:    lo.Open,
				DoneOnly:    lo.Done,
				Persistence: p,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddListArgs(cmd, lo)
	topLevel.AddCommand(cmd)
}
