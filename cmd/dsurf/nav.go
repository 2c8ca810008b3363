package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vidyasagar/dsurf/internal/theme"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"list-history", "ls"},
	Short:   "Show the directory history with the current entry marked",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}
		defer e.Close()

		entries := e.ctrl.List()
		if len(entries) == 0 {
			fmt.Fprintln(os.Stderr, "history is empty")
			return nil
		}

		t := theme.Current
		markerStyle := lipgloss.NewStyle().Foreground(t.Marker).Bold(true)
		indexStyle := lipgloss.NewStyle().Foreground(t.TextDim)
		currentStyle := lipgloss.NewStyle().Foreground(t.TextBright).Bold(true)

		for _, entry := range entries {
			marker := " "
			path := entry.Path
			if entry.Current {
				marker = markerStyle.Render("▸")
				path = currentStyle.Render(path)
			}
			fmt.Printf("%s %s  %s\n", marker, indexStyle.Render(fmt.Sprintf("%3d", entry.Index)), path)
		}
		return nil
	},
}

var nextCmd = &cobra.Command{
	Use:     "next",
	Aliases: []string{"n"},
	Short:   "Step forward in the directory history",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}
		defer e.Close()

		_, err = e.ctrl.Next()
		return err
	},
}

var prevCmd = &cobra.Command{
	Use:     "prev",
	Aliases: []string{"p", "previous"},
	Short:   "Step back in the directory history",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}
		defer e.Close()

		_, err = e.ctrl.Previous()
		return err
	},
}

var gotoCmd = &cobra.Command{
	Use:   "goto <index>",
	Short: "Jump to a history entry by index (negative = relative back)",
	Long: `Jump to a history entry.

A non-negative index addresses an entry from 'dsurf list'. A negative
index is relative to the current entry: 'goto -2' moves two entries back.`,
	// Negative indices would otherwise be eaten by flag parsing.
	DisableFlagParsing: true,
	Args:               cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			cmd.SilenceUsage = false
			return fmt.Errorf("invalid index %q: expected an integer", args[0])
		}

		e, err := newEnv()
		if err != nil {
			return err
		}
		defer e.Close()

		_, err = e.ctrl.GoTo(n)
		return err
	},
}

var recordCmd = &cobra.Command{
	Use:    "record [path]",
	Short:  "Record the current directory (called by the shell hook)",
	Hidden: true,
	Args:   cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		} else {
			wd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("getting working directory: %w", err)
			}
			path = wd
		}

		e, err := newEnv()
		if err != nil {
			return err
		}
		defer e.Close()

		e.ctrl.Record(path)
		return nil
	},
}

var clearVisits bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Erase the directory history",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}
		defer e.Close()

		e.ctrl.Clear()
		if clearVisits && e.visits != nil {
			if err := e.visits.Clear(); err != nil {
				return fmt.Errorf("clearing visit log: %w", err)
			}
		}
		fmt.Fprintln(os.Stderr, "history cleared")
		return nil
	},
}

func init() {
	clearCmd.Flags().BoolVar(&clearVisits, "visits", false, "also erase the visit frequency log")
}
