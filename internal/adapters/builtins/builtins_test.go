package builtins

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AntonioJCosta/minish/internal/core/domain/loop"
	"github.com/fatih/color"
)

// chdirForTest moves to dir and restores the previous working directory when
// the test finishes.
func chdirForTest(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() failed: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir(%q) failed: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(orig); err != nil {
			t.Fatalf("restoring working directory failed: %v", err)
		}
	})
}

func runBuiltin(t *testing.T, name string, tokens []string, out, errOut *bytes.Buffer) loop.Signal {
	t.Helper()
	r := NewRegistry(out, errOut)
	run, ok := r.Lookup(name)
	if !ok {
		t.Fatalf("Lookup(%q) did not find the builtin", name)
	}
	return run(tokens)
}

func TestBuiltin_Cd(t *testing.T) {
	chdirForTest(t, t.TempDir())

	t.Run("missing argument reports usage and keeps the directory", func(t *testing.T) {
		before, _ := os.Getwd()
		var out, errOut bytes.Buffer

		signal := runBuiltin(t, "cd", []string{"cd"}, &out, &errOut)

		if signal != loop.Continue {
			t.Errorf("cd signal = %v, want Continue", signal)
		}
		if !strings.Contains(errOut.String(), `expected argument to "cd"`) {
			t.Errorf("cd stderr = %q, want a usage message", errOut.String())
		}
		if after, _ := os.Getwd(); after != before {
			t.Errorf("cd with no argument changed directory from %q to %q", before, after)
		}
	})

	t.Run("valid directory changes silently", func(t *testing.T) {
		target := t.TempDir()
		var out, errOut bytes.Buffer

		signal := runBuiltin(t, "cd", []string{"cd", target}, &out, &errOut)

		if signal != loop.Continue {
			t.Errorf("cd signal = %v, want Continue", signal)
		}
		if errOut.Len() != 0 || out.Len() != 0 {
			t.Errorf("cd success wrote output: stdout=%q stderr=%q", out.String(), errOut.String())
		}
		after, _ := os.Getwd()
		want, _ := filepath.EvalSymlinks(target)
		got, _ := filepath.EvalSymlinks(after)
		if got != want {
			t.Errorf("cd moved to %q, want %q", got, want)
		}
	})

	t.Run("nonexistent directory reports and stays put", func(t *testing.T) {
		before, _ := os.Getwd()
		var out, errOut bytes.Buffer

		signal := runBuiltin(t, "cd", []string{"cd", "nonexistent-dir-123"}, &out, &errOut)

		if signal != loop.Continue {
			t.Errorf("cd signal = %v, want Continue", signal)
		}
		if !strings.Contains(errOut.String(), "No such file or directory") {
			t.Errorf("cd stderr = %q, want a not-found message", errOut.String())
		}
		if after, _ := os.Getwd(); after != before {
			t.Errorf("failed cd changed directory from %q to %q", before, after)
		}
	})
}

func TestBuiltin_Help(t *testing.T) {
	color.NoColor = true

	var out, errOut bytes.Buffer
	signal := runBuiltin(t, "help", []string{"help", "extra", "args"}, &out, &errOut)

	if signal != loop.Continue {
		t.Errorf("help signal = %v, want Continue", signal)
	}

	text := out.String()
	if !strings.Contains(text, "minish") {
		t.Errorf("help output missing banner: %q", text)
	}
	for _, name := range []string{"cd", "help", "exit"} {
		if !strings.Contains(text, name) {
			t.Errorf("help output missing builtin %q", name)
		}
	}
	if strings.Contains(text, "extra") || strings.Contains(text, "args") {
		t.Errorf("help echoed its arguments: %q", text)
	}
	if errOut.Len() != 0 {
		t.Errorf("help wrote to stderr: %q", errOut.String())
	}
}

func TestBuiltin_Exit(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
	}{
		{name: "no arguments", tokens: []string{"exit"}},
		{name: "arguments are ignored", tokens: []string{"exit", "1", "now"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			if signal := runBuiltin(t, "exit", tt.tokens, &out, &errOut); signal != loop.Terminate {
				t.Errorf("exit signal = %v, want Terminate", signal)
			}
			if out.Len() != 0 || errOut.Len() != 0 {
				t.Errorf("exit wrote output: stdout=%q stderr=%q", out.String(), errOut.String())
			}
		})
	}
}
