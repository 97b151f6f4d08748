// Package repl is the line-oriented front-end: a readline prompt that maps
// short commands onto the same todo controller the full-screen UI uses.
package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/peterh/liner"

	"github.com/calvinalkan/agent-todo/internal/todo"
)

const prompt = "todo> "

var commands = []string{
	"type", "add", "submit", "update",
	"toggle", "edit", "rm", "delete",
	"filter", "ls", "list",
	"help", "exit", "quit", "q",
}

// REPL is the interactive command loop.
type REPL struct {
	ctrl  *todo.Controller
	title string
	out   io.Writer
	done  lipgloss.Style
}

// New returns a REPL driving ctrl and writing to out.
func New(ctrl *todo.Controller, title string, out io.Writer) *REPL {
	return &REPL{
		ctrl:  ctrl,
		title: title,
		out:   out,
		done:  lipgloss.NewStyle().Strikethrough(true),
	}
}

// Run reads commands until quit, EOF, Ctrl-C or ctx cancellation.
func (r *REPL) Run(ctx context.Context) error {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(r.complete)

	r.printf("%s - type 'help' for commands.\n\n", r.title)
	r.render()

	for ctx.Err() == nil {
		input, err := line.Prompt(prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				r.printf("\n")

				return nil
			}

			return fmt.Errorf("reading input: %w", err)
		}

		if strings.TrimSpace(input) != "" {
			line.AppendHistory(input)
		}

		if quit := r.Exec(input); quit {
			return nil
		}
	}

	return nil
}

// RunReader is Run for non-interactive input such as a pipe or a script:
// lines are read from in without line editing until quit, EOF or ctx
// cancellation.
func (r *REPL) RunReader(ctx context.Context, in io.Reader) error {
	r.render()

	scanner := bufio.NewScanner(in)

	for ctx.Err() == nil && scanner.Scan() {
		if quit := r.Exec(scanner.Text()); quit {
			return nil
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	return nil
}

// Exec runs one input line. It reports whether the user asked to quit.
func (r *REPL) Exec(input string) bool {
	input = strings.TrimLeft(input, " \t")
	if strings.TrimSpace(input) == "" {
		return false
	}

	name, rest, _ := strings.Cut(input, " ")
	name = strings.ToLower(strings.TrimSpace(name))

	switch name {
	case "exit", "quit", "q":
		return true

	case "help", "?":
		r.printHelp()

		return false

	case "ls", "list":
		// render below

	case "type":
		r.ctrl.SetDraft(rest)

	case "add", "update":
		if rest != "" {
			r.ctrl.SetDraft(rest)
		}

		r.ctrl.Submit()

	case "submit":
		r.ctrl.Submit()

	case "toggle", "edit", "rm", "delete":
		row, ok := r.parseRow(name, rest)
		if !ok {
			return false
		}

		switch name {
		case "toggle":
			r.ctrl.Toggle(row)
		case "edit":
			r.ctrl.BeginEdit(row)
		default:
			r.ctrl.Delete(row)
		}

	case "filter":
		f, ok := todo.ParseFilter(rest)
		if !ok {
			r.printf("unknown filter %q, showing all\n", strings.TrimSpace(rest))
		}

		r.ctrl.SetFilter(f)

	default:
		r.printf("Unknown command: %s (type 'help' for commands)\n", name)

		return false
	}

	r.render()

	return false
}

// parseRow turns a 1-based visible row number into a position in the full
// task list. Numbers outside the view map to -1, which every row command
// ignores.
func (r *REPL) parseRow(name, arg string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		r.printf("usage: %s <row>\n", name)

		return 0, false
	}

	rows := r.ctrl.Rows()
	if n < 1 || n > len(rows) {
		return -1, true
	}

	return rows[n-1].Index, true
}

func (r *REPL) render() {
	s := r.ctrl.State()
	counts := s.Counts()

	controls := make([]string, 0, len(todo.Filters))

	for _, f := range todo.Filters {
		if f == s.Filter() {
			controls = append(controls, "["+f.Label()+"]")
		} else {
			controls = append(controls, f.Label())
		}
	}

	r.printf("Tasks (%d open, %d done)   Filters: %s\n", counts.Open, counts.Done, strings.Join(controls, "  "))

	rows := s.Rows()
	if len(rows) == 0 {
		if s.Len() == 0 {
			r.printf("  (no tasks yet)\n")
		} else {
			r.printf("  (nothing matches this filter)\n")
		}
	}

	editIndex, editing := s.EditIndex()

	for i, row := range rows {
		check, text := "[ ]", row.Text
		if row.Done {
			check, text = "[x]", r.done.Render(row.Text)
		}

		marker := ""
		if editing && row.Index == editIndex {
			marker = "  (editing)"
		}

		r.printf("  %d. %s %s%s\n", i+1, check, text, marker)
	}

	if editing {
		r.printf("Edit task: %q  (update to save)\n", s.Draft())
	} else if s.Draft() != "" {
		r.printf("Add a task: %q  (add to save)\n", s.Draft())
	}
}

// complete provides tab completion for commands and filter names.
func (r *REPL) complete(line string) []string {
	lower := strings.ToLower(line)

	if after, ok := strings.CutPrefix(lower, "filter "); ok {
		var out []string

		for _, f := range todo.Filters {
			if strings.HasPrefix(f.String(), after) {
				out = append(out, "filter "+f.String())
			}
		}

		return out
	}

	var completions []string

	for _, cmd := range commands {
		if strings.HasPrefix(cmd, lower) {
			completions = append(completions, cmd)
		}
	}

	return completions
}

func (r *REPL) printHelp() {
	r.printf(`Commands:
  type <text>        Put text in the field without saving
  add [text]         Add the field (or text) as a new task
  update [text]      Save the field (or text) into the task being edited
  submit             Add or update, like pressing Enter
  toggle <row>       Mark a row done / not done
  edit <row>         Load a row into the field for editing
  rm <row>           Delete a row
  filter <f>         Show all, done or notdone
  ls                 Show the list
  help               Show this help
  exit / quit / q    Exit

Rows are numbered as shown by ls.
`)
}

func (r *REPL) printf(format string, a ...any) {
	_, _ = fmt.Fprintf(r.out, format, a...)
}
