package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/agent-todo/internal/config"
)

var errUnknownCommand = errors.New("unknown command")

// globals holds the values of the flags accepted before the command name.
type globals struct {
	cwd        string
	configPath string
	env        map[string]string
}

// load resolves the configuration for a command, applying overrides last.
func (g *globals) load(overrides config.Config) (config.Config, error) {
	return config.Load(config.LoadInput{
		WorkDirOverride: g.cwd,
		ConfigPath:      g.configPath,
		Overrides:       overrides,
		Env:             g.env,
	})
}

func (g *globals) workDir() (string, error) {
	if g.cwd != "" {
		return g.cwd, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("cannot get working directory: %w", err)
	}

	return wd, nil
}

// Run is the main entry point. Returns exit code.
//
// With no command the task list starts ("run"). sigCh may be nil; when it
// delivers a signal the running command's context is cancelled.
func Run(in io.Reader, out io.Writer, errOut io.Writer, args []string, env map[string]string, sigCh <-chan os.Signal) int {
	g := &globals{env: env}

	globalFlags := flag.NewFlagSet("todo", flag.ContinueOnError)
	globalFlags.SetInterspersed(false)
	globalFlags.SetOutput(&strings.Builder{})
	globalFlags.StringVarP(&g.cwd, "cwd", "C", "", "Run as if started in `dir`")
	globalFlags.StringVarP(&g.configPath, "config", "c", "", "Use specified config `file`")
	help := globalFlags.BoolP("help", "h", false, "Show help")

	commands := []*Command{
		RunCmd(g, in),
		PrintConfigCmd(g),
		InitConfigCmd(g),
		VersionCmd(),
	}

	o := NewIO(out, errOut)

	var rest []string
	if len(args) > 1 {
		rest = args[1:]
	}

	if err := globalFlags.Parse(rest); err != nil {
		o.ErrPrintln("error:", err)
		o.ErrPrintln()
		printUsage(NewIO(errOut, errOut), globalFlags, commands)

		return 1
	}

	if *help {
		printUsage(o, globalFlags, commands)

		return 0
	}

	name := "run"
	cmdArgs := globalFlags.Args()

	if len(cmdArgs) > 0 {
		name, cmdArgs = cmdArgs[0], cmdArgs[1:]
	}

	cmd := findCommand(commands, name)
	if cmd == nil {
		o.ErrPrintln("error:", fmt.Errorf("%w: %s", errUnknownCommand, name))
		o.ErrPrintln()
		printUsage(NewIO(errOut, errOut), globalFlags, commands)

		return 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if sigCh != nil {
		go func() {
			select {
			case <-sigCh:
				cancel()
			case <-ctx.Done():
			}
		}()
	}

	return cmd.Run(ctx, o, cmdArgs)
}

func findCommand(commands []*Command, name string) *Command {
	for _, cmd := range commands {
		if cmd.Name() == name {
			return cmd
		}
	}

	return nil
}

func printUsage(o *IO, globalFlags *flag.FlagSet, commands []*Command) {
	o.Println("todo - a small task list for the terminal")
	o.Println()
	o.Println("Usage: todo [global flags] [command] [flags]")
	o.Println()
	o.Println("Global flags:")

	var buf strings.Builder
	globalFlags.SetOutput(&buf)
	globalFlags.PrintDefaults()
	o.Printf("%s", buf.String())

	o.Println()
	o.Println("Commands:")

	for _, cmd := range commands {
		o.Println(cmd.HelpLine())
	}

	o.Println()
	o.Println("Without a command, todo runs the task list.")
}
