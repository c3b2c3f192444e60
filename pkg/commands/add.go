package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/ivy/pkg/commands/options"
	"tableflip.dev/ivy/pkg/runner/add"
	"tableflip.dev/ivy/pkg/store"
)

func addAdd(topLevel *cobra.Command) {
	no := &options.AddOptions{}
	description := ""
	tagArgs := []string(nil)

	cmd := &cobra.Command{
		Use:     "add <description> [+tag ...]",
		Aliases: []string{"a"},
		Short:   "Add a new task to the end of the open list",
		Example: `
ivy add "Write the quarterly report" +work
ivy a "Call the client" -n "about the renewal" +work +calls
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a task description")
			}
			description = args[0]
			tagArgs = nil
			for _, arg := range args[1:] {
				tag := strings.TrimPrefix(arg, "+")
				if tag == arg || tag == "" {
					return fmt.Errorf("tag %q must start with +", arg)
				}
				tagArgs = append(tagArgs, tag)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Open(nil)
			if err != nil {
				return err
			}
			s := add.Add{
				Description: description,
				Note:        no.Note,
				Tags:        tagArgs,
				Persistence: p,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddNoteArgs(cmd, no)
	topLevel.AddCommand(cmd)
}
