package cli_test

import (
	"path/filepath"
	"testing"

	"github.com/calvinalkan/agent-todo/internal/cli"
)

// Tests for print-config and init-config.

func Test_Print_Config_Defaults_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout := c.MustRun("print-config")

	cli.AssertContains(t, stdout, `"title": "To-Do App"`)
	cli.AssertContains(t, stdout, `"mode": "tui"`)
	cli.AssertContains(t, stdout, "# effective_cwd="+c.Dir)
	cli.AssertContains(t, stdout, "# (defaults only)")
}

func Test_Print_Config_From_Config_File_With_Comments_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	path := c.WriteFile(".todo.json", `{
		// This is a comment
		"title": "Groceries",
		"filter": "notdone",
	}`)

	stdout := c.MustRun("print-config")

	cli.AssertContains(t, stdout, `"title": "Groceries"`)
	cli.AssertContains(t, stdout, `"filter": "notdone"`)
	cli.AssertContains(t, stdout, "# project_config="+path)
}

func Test_Print_Config_Explicit_Config_Flag_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteFile("custom.json", `{"title": "Custom"}`)

	for _, args := range [][]string{
		{"-c", "custom.json", "print-config"},
		{"--config=custom.json", "print-config"},
	} {
		stdout := c.MustRun(args...)
		cli.AssertContains(t, stdout, `"title": "Custom"`)
	}
}

func Test_Print_Config_Global_Config_When_XDG_Set(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.Env["XDG_CONFIG_HOME"] = filepath.Join(c.Dir, "xdg")
	c.WriteFile("xdg/todo/config.json", `{"title": "Global"}`)

	stdout := c.MustRun("print-config")

	cli.AssertContains(t, stdout, `"title": "Global"`)
	cli.AssertContains(t, stdout, "# global_config="+filepath.Join(c.Dir, "xdg", "todo", "config.json"))
}

func Test_Print_Config_As_YAML_When_Flag_Given(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout := c.MustRun("print-config", "--yaml")

	cli.AssertContains(t, stdout, "title: To-Do App")
	cli.AssertNotContains(t, stdout, `"title"`)
}

func Test_Print_Config_Fails_When_Config_Invalid(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteFile(".todo.json", `{"filter": "someday"}`)

	stderr := c.MustFail("print-config")

	cli.AssertContains(t, stderr, "error:")
	cli.AssertContains(t, stderr, "someday")
}

func Test_Print_Config_Fails_When_Explicit_Config_Missing(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stderr := c.MustFail("-c", "nope.json", "print-config")

	cli.AssertContains(t, stderr, "nope.json")
}

func Test_Init_Config_Writes_Project_File_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout := c.MustRun("init-config")

	cli.AssertContains(t, stdout, "wrote "+filepath.Join(c.Dir, ".todo.json"))
	cli.AssertContains(t, c.ReadFile(".todo.json"), `"title": "To-Do App"`)

	// The starter must load as-is.
	c.MustRun("print-config")
}

func Test_Init_Config_Refuses_Overwrite_Unless_Forced(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteFile(".todo.json", `{"title": "Mine"}`)

	stderr := c.MustFail("init-config")
	cli.AssertContains(t, stderr, "already exists")
	cli.AssertContains(t, c.ReadFile(".todo.json"), "Mine")

	c.MustRun("init-config", "--force")
	cli.AssertNotContains(t, c.ReadFile(".todo.json"), "Mine")
}

func Test_Init_Config_Writes_Global_File_When_Flag_Given(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.Env["XDG_CONFIG_HOME"] = filepath.Join(c.Dir, "xdg")

	c.MustRun("init-config", "--global")

	cli.AssertContains(t, c.ReadFile("xdg/todo/config.json"), `"mode": "tui"`)
}

func Test_Init_Config_Fails_When_No_Config_Home(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stderr := c.MustFail("init-config", "--global")

	cli.AssertContains(t, stderr, "cannot determine config directory")
}

func Test_Init_Config_Writes_Explicit_Path_When_Config_Flag_Given(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.MustRun("-c", "conf/todo.json", "init-config")

	cli.AssertContains(t, c.ReadFile("conf/todo.json"), `"filter": "all"`)
}
