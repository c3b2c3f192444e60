package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/ivy/pkg/commands/options"
	"tableflip.dev/ivy/pkg/runner/tag"
	"tableflip.dev/ivy/pkg/store"
	"tableflip.dev/ivy/pkg/tags"
)

func addTag(topLevel *cobra.Command) {
	to := &options.TagOptions{}

	cmd := &cobra.Command{
		Use:   "tag <tag>",
		Short: "Set the display style of a tag",
		Long: "Set the foreground and/or background colour of a tag.\n" +
			"Colours: " + strings.Join(tags.ColorNames(), ", ") + ".",
		Example: `
ivy tag work --fg cyan
ivy tag urgent --fg hi-red --bg black
ivy tag urgent --bg none
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) != 1 {
				return errors.New("requires a tag name")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Open(nil)
			if err != nil {
				return err
			}
			s := tag.Tag{
				Tag:         args[0],
				Fg:          to.Fg,
				Bg:          to.Bg,
				Persistence: p,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddTagArgs(cmd, to)
	topLevel.AddCommand(cmd)
}
