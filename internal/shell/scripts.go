package shell

import (
	"embed"
	"fmt"
)

//go:embed scripts/dsurf.bash scripts/dsurf.zsh scripts/dsurf.fish
var scripts embed.FS

// Supported lists the shells `dsurf init` can emit integration for.
var Supported = []string{"bash", "zsh", "fish"}

// InitScript returns the hook script for the named shell. The script
// installs the per-prompt record hook and the cd wrapper functions.
func InitScript(name string) (string, error) {
	switch name {
	case "bash", "zsh", "fish":
		data, err := scripts.ReadFile("scripts/dsurf." + name)
		if err != nil {
			return "", fmt.Errorf("reading %s script: %w", name, err)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("unsupported shell %q (supported: bash, zsh, fish)", name)
	}
}
