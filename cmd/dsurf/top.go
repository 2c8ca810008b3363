package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vidyasagar/dsurf/internal/theme"
)

var topCmd = &cobra.Command{
	Use:   "top [n]",
	Short: "Show the most-visited directories",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}
		defer e.Close()

		if e.visits == nil {
			return fmt.Errorf("visit database unavailable")
		}

		limit := e.cfg.TopLimit
		if len(args) == 1 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n <= 0 {
				cmd.SilenceUsage = false
				return fmt.Errorf("invalid count %q: expected a positive integer", args[0])
			}
			limit = n
		}

		visits := e.visits.Top(limit)
		if len(visits) == 0 {
			fmt.Fprintln(os.Stderr, "no visits recorded yet")
			return nil
		}

		t := theme.Current
		countStyle := lipgloss.NewStyle().Foreground(t.Secondary)
		for _, v := range visits {
			fmt.Printf("%s  %s\n", countStyle.Render(fmt.Sprintf("%5d", v.Count)), v.Path)
		}
		return nil
	},
}
