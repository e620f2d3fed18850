package desktop

import (
	"os/exec"
	"path/filepath"
	"testing"
)

func TestCommand(t *testing.T) {
	tests := []struct {
		name    string
		goos    string
		wantArg []string
		wantErr bool
	}{
		{
			name:    "macOS",
			goos:    "darwin",
			wantArg: []string{"open", "/designs"},
		},
		{
			name:    "linux",
			goos:    "linux",
			wantArg: []string{"xdg-open", "/designs"},
		},
		{
			name:    "windows",
			goos:    "windows",
			wantArg: []string{"cmd", "/c", "start", "", "/designs"},
		},
		{
			name:    "unsupported",
			goos:    "plan9",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := &Opener{goos: tt.goos}
			cmd, err := o.Command("/designs")
			if (err != nil) != tt.wantErr {
				t.Fatalf("Command() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(cmd.Args) != len(tt.wantArg) {
				t.Fatalf("Args = %q, want %q", cmd.Args, tt.wantArg)
			}
			for i := range cmd.Args {
				if cmd.Args[i] != tt.wantArg[i] {
					t.Errorf("Args[%d] = %q, want %q", i, cmd.Args[i], tt.wantArg[i])
				}
			}
		})
	}
}

func TestReveal(t *testing.T) {
	dir := t.TempDir()

	var ran *exec.Cmd
	o := &Opener{goos: "linux", run: func(c *exec.Cmd) error {
		ran = c
		return nil
	}}

	if err := o.Reveal(filepath.Join(dir, "Beast.td.yaml")); err != nil {
		t.Fatalf("Reveal() error = %v", err)
	}
	if ran == nil || ran.Args[len(ran.Args)-1] != dir {
		t.Errorf("Reveal() ran %v, want the design directory %s", ran, dir)
	}
}

func TestReveal_MissingDirectory(t *testing.T) {
	o := &Opener{goos: "linux", run: func(*exec.Cmd) error {
		t.Fatal("nothing should run")
		return nil
	}}

	if err := o.Reveal(filepath.Join(t.TempDir(), "gone", "Beast.td.yaml")); err == nil {
		t.Error("Reveal() of a missing directory should fail")
	}
}
