package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/agent-todo/internal/config"
	"github.com/calvinalkan/agent-todo/internal/repl"
	"github.com/calvinalkan/agent-todo/internal/todo"
	"github.com/calvinalkan/agent-todo/internal/tui"
)

// RunCmd returns the run command, which starts one of the front-ends.
func RunCmd(g *globals, in io.Reader) *Command {
	flags := flag.NewFlagSet("run", flag.ContinueOnError)
	plain := flags.Bool("plain", false, "Use the line prompt instead of the full-screen UI")
	filter := flags.String("filter", "", "Initial filter: all, done or notdone")
	title := flags.String("title", "", "Heading shown above the list")
	logFile := flags.String("log", "", "Write a debug log of every command to `file`")

	return &Command{
		Flags: flags,
		Usage: "run [--plain] [--filter <f>] [--title <t>]",
		Short: "Start the task list (default)",
		Long: `Start the task list.

The full-screen UI is used unless --plain is given or the config sets
"mode": "plain". In plain mode commands are read from a line prompt, or
from stdin when it is not a terminal.`,
		Exec: func(ctx context.Context, o *IO, _ []string) error {
			overrides := config.Config{Title: *title, Filter: *filter, LogFile: *logFile}
			if *plain {
				overrides.Mode = config.ModePlain
			}

			cfg, err := g.load(overrides)
			if err != nil {
				return err
			}

			return execRun(ctx, o, in, cfg)
		},
	}
}

func execRun(ctx context.Context, o *IO, in io.Reader, cfg config.Config) error {
	opts := []todo.Option{todo.WithFilter(cfg.StartFilter)}

	if cfg.LogFileAbs != "" {
		f, err := tea.LogToFile(cfg.LogFileAbs, "todo")
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}

		defer func() {
			log.SetOutput(os.Stderr)
			_ = f.Close()
		}()

		log.Printf("starting: mode=%s filter=%s", cfg.Mode, cfg.StartFilter)

		opts = append(opts, todo.WithObserver(logCommand))
	}

	ctrl := todo.NewController(opts...)

	if cfg.Mode == config.ModePlain {
		r := repl.New(ctrl, cfg.Title, o.Out())

		if in == nil {
			in = strings.NewReader("")
		}

		// liner only edits lines on the process's own terminal.
		if in == os.Stdin && isTerminal(os.Stdin) {
			return r.Run(ctx)
		}

		return r.RunReader(ctx, in)
	}

	return tui.Run(ctx, ctrl, cfg, in, o.Out())
}

// logCommand is a todo.Observer that writes one line per command to the
// standard logger, which tea.LogToFile points at the debug log.
func logCommand(cmd todo.Command, before, after todo.State) {
	editIndex, _ := after.EditIndex()

	log.Printf("%s: tasks %d->%d filter=%s edit=%d draft=%q",
		cmd, before.Len(), after.Len(), after.Filter(), editIndex, after.Draft())
}
