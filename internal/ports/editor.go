package ports

import "os/exec"

// EditorOpener opens design files in an external editor
type EditorOpener interface {
	// Command returns an exec.Cmd for editing path, suitable for
	// bubbletea's ExecProcess
	Command(path string) (*exec.Cmd, error)
}

// Revealer shows a design file's location in the desktop file manager
type Revealer interface {
	Reveal(path string) error
}
