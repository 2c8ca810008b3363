package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vidyasagar/dsurf/internal/shell"
)

var initCmd = &cobra.Command{
	Use:   "init <shell>",
	Short: "Print the shell integration script",
	Long: `Print the shell integration script for bash, zsh or fish.

The script installs a hook that records your working directory after
every command, plus the wrapper functions (dn, dp, dg, dh, db, dj) that
cd into whatever path dsurf emits.

  bash:  eval "$(dsurf init bash)"     # in ~/.bashrc
  zsh:   eval "$(dsurf init zsh)"      # in ~/.zshrc
  fish:  dsurf init fish | source      # in config.fish`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: shell.Supported,
	RunE: func(cmd *cobra.Command, args []string) error {
		script, err := shell.InitScript(args[0])
		if err != nil {
			cmd.SilenceUsage = false
			return err
		}
		fmt.Print(script)
		return nil
	},
}
