//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package cli_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/calvinalkan/agent-todo/internal/cli"
)

// Not parallel: replaces the process's stdin.
func Test_Run_Plain_Reads_Piped_Stdin_Without_Prompt(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}

	if _, err := w.WriteString("add a\nadd b\ntoggle 1\nquit\n"); err != nil {
		t.Fatal(err)
	}

	_ = w.Close()

	stdin := os.Stdin
	os.Stdin = r

	t.Cleanup(func() {
		os.Stdin = stdin
		_ = r.Close()
	})

	var stdout, stderr bytes.Buffer

	c := cli.NewCLI(t)
	exitCode := cli.Run(os.Stdin, &stdout, &stderr, []string{"todo", "-C", c.Dir, "run", "--plain"}, c.Env, nil)

	if got, want := exitCode, 0; got != want {
		t.Fatalf("exitCode=%d, want=%d\nstderr: %s", got, want, stderr.String())
	}

	cli.AssertNotContains(t, stdout.String(), "todo> ")
	cli.AssertNotContains(t, stdout.String(), "type 'help' for commands")
	cli.AssertContains(t, stdout.String(), "Tasks (1 open, 1 done)")
	cli.AssertContains(t, stdout.String(), "1. [x] a")
}
