package repl_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/agent-todo/internal/repl"
	"github.com/calvinalkan/agent-todo/internal/todo"
)

func newREPL(t *testing.T) (*repl.REPL, *todo.Controller, *bytes.Buffer) {
	t.Helper()

	ctrl := todo.NewController(todo.WithIDSource(&todo.SequenceIDs{}))
	out := &bytes.Buffer{}

	return repl.New(ctrl, "To-Do App", out), ctrl, out
}

func exec(t *testing.T, r *repl.REPL, lines ...string) {
	t.Helper()

	for _, line := range lines {
		require.False(t, r.Exec(line), "line %q quit unexpectedly", line)
	}
}

type task struct {
	Text string
	Done bool
}

func tasks(ctrl *todo.Controller) []task {
	var out []task

	for _, t := range ctrl.State().Tasks() {
		out = append(out, task{Text: t.Text, Done: t.Done})
	}

	return out
}

func Test_REPL_Adds_Tasks_When_Add_Has_Text(t *testing.T) {
	t.Parallel()

	r, ctrl, out := newREPL(t)

	exec(t, r, "add Buy milk", "add   Walk dog  ")

	assert.Equal(t, []task{{Text: "Buy milk"}, {Text: "Walk dog"}}, tasks(ctrl))
	assert.Empty(t, ctrl.State().Draft())
	assert.Contains(t, out.String(), "1. [ ] Buy milk")
	assert.Contains(t, out.String(), "2. [ ] Walk dog")
}

func Test_REPL_Submits_Draft_When_Type_Then_Add(t *testing.T) {
	t.Parallel()

	r, ctrl, out := newREPL(t)

	exec(t, r, "type Read book")
	assert.Equal(t, "Read book", ctrl.State().Draft())
	assert.Contains(t, out.String(), `Add a task: "Read book"`)

	exec(t, r, "add")
	assert.Equal(t, []task{{Text: "Read book"}}, tasks(ctrl))
}

func Test_REPL_Ignores_Add_When_Draft_Is_Blank(t *testing.T) {
	t.Parallel()

	r, ctrl, out := newREPL(t)

	exec(t, r, "type    ", "submit")

	assert.Empty(t, tasks(ctrl))
	assert.Contains(t, out.String(), "(no tasks yet)")
}

func Test_REPL_Toggles_Full_List_Task_When_Row_Is_From_Filtered_View(t *testing.T) {
	t.Parallel()

	r, ctrl, out := newREPL(t)

	exec(t, r, "add A", "add B", "add C", "toggle 2", "filter notdone")
	out.Reset()

	// Visible rows are A (1) and C (2).
	exec(t, r, "toggle 2")

	assert.Equal(t, []task{{Text: "A"}, {Text: "B", Done: true}, {Text: "C", Done: true}}, tasks(ctrl))
	assert.Contains(t, out.String(), "1. [ ] A")
	assert.NotContains(t, out.String(), "2. ")
}

func Test_REPL_Edits_Task_When_Edit_Then_Update(t *testing.T) {
	t.Parallel()

	r, ctrl, out := newREPL(t)

	exec(t, r, "add Walk dog", "edit 1")

	s := ctrl.State()
	assert.True(t, s.EditMode())
	assert.Equal(t, "Walk dog", s.Draft())
	assert.Contains(t, out.String(), "(editing)")

	exec(t, r, "update Walk the dog")

	assert.Equal(t, []task{{Text: "Walk the dog"}}, tasks(ctrl))
	assert.False(t, ctrl.State().EditMode())
}

func Test_REPL_Leaves_Edit_Mode_When_Row_Deleted(t *testing.T) {
	t.Parallel()

	r, ctrl, _ := newREPL(t)

	exec(t, r, "add A", "add B", "edit 1", "rm 2")

	s := ctrl.State()
	assert.False(t, s.EditMode())
	assert.Equal(t, "A", s.Draft())
	assert.Equal(t, []task{{Text: "A"}}, tasks(ctrl))
}

func Test_REPL_Ignores_Row_When_Out_Of_Range(t *testing.T) {
	t.Parallel()

	r, ctrl, _ := newREPL(t)

	exec(t, r, "add A", "toggle 0", "toggle 2", "rm 9", "edit -1")

	assert.Equal(t, []task{{Text: "A"}}, tasks(ctrl))
	assert.False(t, ctrl.State().EditMode())
}

func Test_REPL_Prints_Usage_When_Row_Is_Not_A_Number(t *testing.T) {
	t.Parallel()

	r, ctrl, out := newREPL(t)

	exec(t, r, "add A", "toggle first")

	assert.Contains(t, out.String(), "usage: toggle <row>")
	assert.Equal(t, []task{{Text: "A"}}, tasks(ctrl))
}

func Test_REPL_Falls_Back_To_All_When_Filter_Unknown(t *testing.T) {
	t.Parallel()

	r, ctrl, out := newREPL(t)

	exec(t, r, "filter done")
	assert.Equal(t, todo.FilterDone, ctrl.State().Filter())

	exec(t, r, "filter someday")
	assert.Equal(t, todo.FilterAll, ctrl.State().Filter())
	assert.Contains(t, out.String(), `unknown filter "someday"`)
}

func Test_REPL_Shows_Filter_Controls_When_Listing(t *testing.T) {
	t.Parallel()

	r, _, out := newREPL(t)

	exec(t, r, "add A", "toggle 1", "add B", "filter done")
	out.Reset()

	exec(t, r, "ls")

	assert.Contains(t, out.String(), "Tasks (1 open, 1 done)")
	assert.Contains(t, out.String(), "[Done]")
	assert.Contains(t, out.String(), "1. [x] A")
}

func Test_REPL_Reports_Empty_Filter_When_Nothing_Matches(t *testing.T) {
	t.Parallel()

	r, _, out := newREPL(t)

	exec(t, r, "add A", "filter done")

	assert.Contains(t, out.String(), "(nothing matches this filter)")
}

func Test_REPL_Prints_Hint_When_Command_Unknown(t *testing.T) {
	t.Parallel()

	r, _, out := newREPL(t)

	exec(t, r, "frobnicate 3")

	assert.Contains(t, out.String(), "Unknown command: frobnicate")
}

func Test_REPL_Quits_When_Quit_Commands_Given(t *testing.T) {
	t.Parallel()

	for _, line := range []string{"quit", "exit", "q", "  QUIT"} {
		r, _, _ := newREPL(t)
		assert.True(t, r.Exec(line), "line %q", line)
	}
}

func Test_REPL_Ignores_Blank_Lines(t *testing.T) {
	t.Parallel()

	r, _, out := newREPL(t)

	exec(t, r, "", "   ", "\t")

	assert.Empty(t, out.String())
}

func Test_REPL_Prints_Help_When_Asked(t *testing.T) {
	t.Parallel()

	r, _, out := newREPL(t)

	exec(t, r, "help")

	assert.Contains(t, out.String(), "toggle <row>")
	assert.Contains(t, out.String(), "filter <f>")
}

func Test_REPL_Reads_Script_When_RunReader_Used(t *testing.T) {
	t.Parallel()

	r, ctrl, out := newREPL(t)

	err := r.RunReader(t.Context(), strings.NewReader("add Buy milk\nadd Walk dog\ntoggle 1\nquit\nadd never\n"))
	require.NoError(t, err)

	assert.Equal(t, []task{{Text: "Buy milk", Done: true}, {Text: "Walk dog"}}, tasks(ctrl))
	assert.Contains(t, out.String(), "(no tasks yet)")
}

func Test_REPL_Stops_When_Context_Cancelled(t *testing.T) {
	t.Parallel()

	r, ctrl, _ := newREPL(t)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	err := r.RunReader(ctx, strings.NewReader("add A\n"))
	require.NoError(t, err)
	assert.Empty(t, tasks(ctrl))
}
