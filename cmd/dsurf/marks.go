package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vidyasagar/dsurf/internal/shell"
	"github.com/vidyasagar/dsurf/internal/theme"
)

var markCmd = &cobra.Command{
	Use:   "mark <name> [path]",
	Short: "Bookmark a directory under a name",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		path := ""
		if len(args) == 2 {
			path = args[1]
		} else {
			wd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("getting working directory: %w", err)
			}
			path = wd
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", path, err)
		}
		info, err := os.Stat(abs)
		if err != nil || !info.IsDir() {
			return fmt.Errorf("%s is not a directory", abs)
		}

		e, err := newEnv()
		if err != nil {
			return err
		}
		defer e.Close()

		if e.marks == nil {
			return fmt.Errorf("mark database unavailable")
		}
		if !e.marks.Add(name, abs) {
			return fmt.Errorf("could not save mark %q", name)
		}
		fmt.Fprintf(os.Stderr, "marked %s as %q\n", abs, name)
		return nil
	},
}

var unmarkCmd = &cobra.Command{
	Use:   "unmark <name>",
	Short: "Remove a directory bookmark",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}
		defer e.Close()

		if e.marks == nil {
			return fmt.Errorf("mark database unavailable")
		}
		if !e.marks.Remove(args[0]) {
			return fmt.Errorf("no mark named %q", args[0])
		}
		fmt.Fprintf(os.Stderr, "removed mark %q\n", args[0])
		return nil
	},
}

var marksCmd = &cobra.Command{
	Use:   "marks",
	Short: "List directory bookmarks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}
		defer e.Close()

		if e.marks == nil {
			return fmt.Errorf("mark database unavailable")
		}

		marks := e.marks.List()
		if len(marks) == 0 {
			fmt.Fprintln(os.Stderr, "no marks yet, try: dsurf mark <name>")
			return nil
		}

		t := theme.Current
		nameStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
		for _, m := range marks {
			fmt.Printf("%s  %s\n", nameStyle.Render(fmt.Sprintf("%-12s", m.Name)), m.Path)
		}
		return nil
	},
}

var jumpCmd = &cobra.Command{
	Use:   "jump <name>",
	Short: "Emit the path of a mark for the shell wrapper to cd into",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}
		defer e.Close()

		if e.marks == nil {
			return fmt.Errorf("mark database unavailable")
		}
		path, ok := e.marks.Get(args[0])
		if !ok {
			return fmt.Errorf("no mark named %q", args[0])
		}

		// The hook records the visit after the shell cd's.
		reloc := &shell.EmitRelocator{Out: os.Stdout}
		if err := reloc.Relocate(path); err != nil {
			return fmt.Errorf("jumping to %s: %w", path, err)
		}
		return nil
	},
}
