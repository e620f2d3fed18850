package editor

import (
	"errors"
	"os/exec"
	"testing"
)

func testOpener(env map[string]string, installed ...string) *Opener {
	return &Opener{
		getenv: func(k string) string { return env[k] },
		lookPath: func(name string) (string, error) {
			for _, n := range installed {
				if n == name {
					return "/usr/bin/" + name, nil
				}
			}
			return "", exec.ErrNotFound
		},
	}
}

func TestCommand(t *testing.T) {
	tests := []struct {
		name      string
		env       map[string]string
		installed []string
		wantArgs  []string
	}{
		{
			name:     "visual wins over editor",
			env:      map[string]string{"VISUAL": "code --wait", "EDITOR": "vi"},
			wantArgs: []string{"code", "--wait", "/d/x.td.yaml"},
		},
		{
			name:     "editor",
			env:      map[string]string{"EDITOR": "hx"},
			wantArgs: []string{"hx", "/d/x.td.yaml"},
		},
		{
			name:      "fallback",
			env:       map[string]string{"EDITOR": "   "},
			installed: []string{"nano", "vi"},
			wantArgs:  []string{"/usr/bin/vi", "/d/x.td.yaml"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := testOpener(tt.env, tt.installed...).Command("/d/x.td.yaml")
			if err != nil {
				t.Fatalf("Command failed: %v", err)
			}
			if len(cmd.Args) != len(tt.wantArgs) {
				t.Fatalf("Args = %v, want %v", cmd.Args, tt.wantArgs)
			}
			for i := range tt.wantArgs {
				if cmd.Args[i] != tt.wantArgs[i] {
					t.Errorf("Args = %v, want %v", cmd.Args, tt.wantArgs)
					break
				}
			}
		})
	}
}

func TestCommand_NoEditor(t *testing.T) {
	if _, err := testOpener(nil).Command("/d/x.td.yaml"); err == nil {
		t.Error("expected error when no editor is available")
	}
}

func TestCommand_Compressed(t *testing.T) {
	_, err := testOpener(map[string]string{"EDITOR": "vi"}).Command("/d/x.td.yaml.gz")
	if !errors.Is(err, ErrCompressed) {
		t.Errorf("expected ErrCompressed, got %v", err)
	}
}
