package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/vidyasagar/dsurf/internal/app"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Pick a history entry interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}
		defer e.Close()

		// Render on stderr: stdout carries the selected path for the
		// shell wrapper.
		m := app.New(e.ctrl)
		p := tea.NewProgram(m,
			tea.WithAltScreen(),
			tea.WithOutput(os.Stderr),
		)

		final, err := p.Run()
		if err != nil {
			return fmt.Errorf("running picker: %w", err)
		}

		idx := final.(app.Model).Selected()
		if idx < 0 {
			return nil
		}

		_, err = e.ctrl.GoTo(idx)
		return err
	},
}
