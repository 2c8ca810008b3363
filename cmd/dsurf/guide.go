package main

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed guide.md
var guideMarkdown string

var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Show the dsurf guide",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(100),
		)
		if err != nil {
			// Fall back to the raw markdown.
			fmt.Print(guideMarkdown)
			return nil
		}

		out, err := renderer.Render(guideMarkdown)
		if err != nil {
			fmt.Print(guideMarkdown)
			return nil
		}
		fmt.Print(out)
		return nil
	},
}
