package commands

import (
	"context"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/ivy/pkg/commands/options"
	"tableflip.dev/ivy/pkg/runner/show"
	"tableflip.dev/ivy/pkg/store"
)

var (
	oo = &base.OutputOptions{}
)

// New builds the ivy command tree. The bare command renders the priority
// view: the first six open tasks, optionally narrowed by filter tags.
func New() *cobra.Command {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "ivy [+tag ...] [/tag ...]",
		Short: base.Wrap80("Command line tasks following the Ivy Lee method."),
		Example: `
ivy
ivy +work /blocked
`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Open(nil)
			if err != nil {
				return err
			}
			s := show.Show{
				Filter:      args,
				ShowID:      io.ShowID,
				Persistence: p,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddShowIDArgs(cmd, io)
	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addFinish(topLevel)
	addSweep(topLevel)
	addBump(topLevel)
	addMove(topLevel)
	addList(topLevel)
	addEdit(topLevel)
	addRemove(topLevel)
	addTag(topLevel)
	addVersion(topLevel)
}
