// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// IDOptions
type IDOptions struct {
	ShowID bool
}

func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVarP(&o.ShowID, "show-id", "k", false,
		"Show task IDs in the output.")
}

// AddOptions
type AddOptions struct {
	Note string
}

func AddNoteArgs(cmd *cobra.Command, o *AddOptions) {
	cmd.Flags().StringVarP(&o.Note, "note", "n", "",
		"Attach a note to the task.")
}

// EditOptions
type EditOptions struct {
	Description string
	Note        string
}

func AddEditArgs(cmd *cobra.Command, o *EditOptions) {
	cmd.Flags().StringVarP(&o.Description, "desc", "d", "",
		"Set the task description.")
	cmd.Flags().StringVarP(&o.Note, "note", "n", "",
		"Set the task note.")
}

// ListOptions
type ListOptions struct {
	Open bool
	Done bool
}

func AddListArgs(cmd *cobra.Command, o *ListOptions) {
	cmd.Flags().BoolVar(&o.Open, "open", false,
		"Only show open tasks.")
	cmd.Flags().BoolVar(&o.Done, "done", false,
		"Only show done tasks.")
}

// TagOptions
type TagOptions struct {
	Fg string
	Bg string
}

func AddTagArgs(cmd *cobra.Command, o *TagOptions) {
	cmd.Flags().StringVar(&o.Fg, "fg", "",
		`The foreground colour, or "none" to clear it.`)
	cmd.Flags().StringVar(&o.Bg, "bg", "",
		`The background colour, or "none" to clear it.`)
}
