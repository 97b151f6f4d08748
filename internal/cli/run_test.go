package cli_test

import (
	"bytes"
	"testing"

	"github.com/calvinalkan/agent-todo/internal/cli"
)

func Test_Invalid_Global_Flag_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout, stderr, exitCode := c.Run("--invalid-flag", "print-config")

	if got, want := exitCode, 1; got != want {
		t.Errorf("exitCode=%d, want=%d", got, want)
	}

	if got, want := stdout, ""; got != want {
		t.Errorf("stdout=%q, want=%q", got, want)
	}

	cli.AssertContains(t, stderr, "unknown flag")
	cli.AssertContains(t, stderr, "--invalid-flag")

	cli.AssertContains(t, stderr, "Global flags:")
	cli.AssertContains(t, stderr, "--help")
	cli.AssertContains(t, stderr, "--cwd")
	cli.AssertContains(t, stderr, "--config")
}

func Test_Main_Help_When_Invoked(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name string
		args []string
	}{
		{name: "long flag", args: []string{"--help"}},
		{name: "short flag", args: []string{"-h"}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := cli.NewCLI(t)
			stdout, stderr, exitCode := c.Run(tt.args...)

			if got, want := exitCode, 0; got != want {
				t.Errorf("exitCode=%d, want=%d", got, want)
			}

			if got, want := stderr, ""; got != want {
				t.Errorf("stderr=%q, want=%q", got, want)
			}

			cli.AssertContains(t, stdout, "todo - a small task list for the terminal")
			cli.AssertContains(t, stdout, "--cwd")
			cli.AssertContains(t, stdout, "run [--plain]")
			cli.AssertContains(t, stdout, "print-config [--yaml]")
			cli.AssertContains(t, stdout, "init-config [--global] [--force]")
		})
	}
}

func Test_Unknown_Command_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout, stderr, exitCode := c.Run("frobnicate")

	if got, want := exitCode, 1; got != want {
		t.Errorf("exitCode=%d, want=%d", got, want)
	}

	if got, want := stdout, ""; got != want {
		t.Errorf("stdout=%q, want=%q", got, want)
	}

	cli.AssertContains(t, stderr, "error: unknown command: frobnicate")
	cli.AssertContains(t, stderr, "Commands:")
}

func Test_Invalid_Command_Flag_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout, stderr, exitCode := c.Run("run", "--invalid-flag")

	if got, want := exitCode, 1; got != want {
		t.Errorf("exitCode=%d, want=%d", got, want)
	}

	cli.AssertContains(t, stdout, "Usage: todo run")
	cli.AssertContains(t, stdout, "Flags:")
	cli.AssertContains(t, stdout, "--plain")

	cli.AssertContains(t, stderr, "error:")
	cli.AssertContains(t, stderr, "unknown flag")
	cli.AssertContains(t, stderr, "--invalid-flag")
}

func Test_Command_Help_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout := c.MustRun("init-config", "--help")

	cli.AssertContains(t, stdout, "Usage: todo init-config")
	cli.AssertContains(t, stdout, "--global")
	cli.AssertContains(t, stdout, "--force")
}

func Test_Version_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout := c.MustRun("version")

	if got, want := stdout, "todo "+cli.Version; got != want {
		t.Errorf("stdout=%q, want=%q", got, want)
	}
}

func Test_Bare_Command_Starts_Plain_Mode_When_Configured(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer

	c := cli.NewCLI(t)
	c.WriteFile(".todo.json", `{"mode": "plain"}`)

	// Call Run directly without the helper's command list.
	exitCode := cli.Run(nil, &stdout, &stderr, []string{"todo", "-C", c.Dir}, nil, nil)

	if got, want := exitCode, 0; got != want {
		t.Errorf("exitCode=%d, want=%d\nstderr: %s", got, want, stderr.String())
	}

	cli.AssertContains(t, stdout.String(), "Tasks (0 open, 0 done)")
}

func Test_Command_Rejects_Extra_Arguments_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout, stderr, exitCode := c.Run("version", "now", "please")

	if got, want := exitCode, 1; got != want {
		t.Errorf("exitCode=%d, want=%d", got, want)
	}

	cli.AssertContains(t, stderr, "error: unexpected argument: now please")
	cli.AssertContains(t, stdout, "Usage: todo version")
}
