// Package shell is the boundary to the host shell: it validates and emits
// relocation targets for the shell wrapper functions to cd into, and
// carries the hook scripts installed by `dsurf init`.
package shell

import (
	"fmt"
	"io"
	"os"
)

// EmitRelocator implements nav.Relocator for a CLI process. A child
// process cannot chdir its parent shell, so relocation means verifying
// the target still exists and printing it on out; the shell function
// wrapping dsurf performs the actual cd. Everything else dsurf prints
// goes to stderr so out stays machine-readable.
type EmitRelocator struct {
	Out io.Writer
}

// Relocate checks that path is an existing directory and emits it.
func (r *EmitRelocator) Relocate(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("directory no longer exists")
		}
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory")
	}

	_, err = fmt.Fprintln(r.Out, path)
	return err
}
