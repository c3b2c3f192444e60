package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/ivy/pkg/commands/options"
	"tableflip.dev/ivy/pkg/runner/edit"
	"tableflip.dev/ivy/pkg/store"
)

func addEdit(topLevel *cobra.Command) {
	eo := &options.EditOptions{}

	cmd := &cobra.Command{
		Use:   "edit <id> [+tag ...] [/tag ...]",
		Short: "Edit a task's description, note, or tags",
		Long: "Edit a task by ID, open or done. Only the given fields change;\n" +
			"+tag adds a tag, /tag removes one.",
		Example: `
ivy edit a9x2 -d "Write the Q3 report"
ivy edit a9x2 +urgent /waiting
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a task ID")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Open(nil)
			if err != nil {
				return err
			}
			s := edit.Edit{
				ID:          args[0],
				Tags:        args[1:],
				Persistence: p,
			}
			if cmd.Flags().Changed("desc") {
				s.Description = &eo.Description
			}
			if cmd.Flags().Changed("note") {
				s.Note = &eo.Note
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddEditArgs(cmd, eo)
	topLevel.AddCommand(cmd)
}
