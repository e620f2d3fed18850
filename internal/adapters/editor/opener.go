package editor

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"tracklist/internal/ports"
)

var _ ports.EditorOpener = (*Opener)(nil)

// ErrCompressed is returned for gzipped designs, which cannot be edited as text.
var ErrCompressed = errors.New("compressed designs cannot be edited")

// fallbackEditors are tried in order when neither $VISUAL nor $EDITOR is set.
var fallbackEditors = []string{"nvim", "vim", "vi", "nano"}

// Opener implements ports.EditorOpener
type Opener struct {
	getenv   func(string) string
	lookPath func(string) (string, error)
}

// NewOpener creates an opener that reads the process environment
func NewOpener() *Opener {
	return &Opener{getenv: os.Getenv, lookPath: exec.LookPath}
}

// Command returns an exec.Cmd that opens path in the user's editor.
// $VISUAL and $EDITOR may carry arguments, e.g. "code --wait".
func (o *Opener) Command(path string) (*exec.Cmd, error) {
	if strings.HasSuffix(strings.ToLower(path), ".gz") {
		return nil, fmt.Errorf("%w: %s", ErrCompressed, path)
	}

	argv := o.editorArgv()
	if len(argv) == 0 {
		return nil, fmt.Errorf("no editor found: set $EDITOR environment variable")
	}

	cmd := exec.Command(argv[0], append(argv[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd, nil
}

func (o *Opener) editorArgv() []string {
	for _, name := range []string{"VISUAL", "EDITOR"} {
		if fields := strings.Fields(o.getenv(name)); len(fields) > 0 {
			return fields
		}
	}
	for _, editor := range fallbackEditors {
		if path, err := o.lookPath(editor); err == nil {
			return []string{path}
		}
	}
	return nil
}
