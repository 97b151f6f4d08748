package testutil

import (
	"testing"

	"github.com/calvinalkan/agent-todo/internal/testutil/oracle"
	"github.com/calvinalkan/agent-todo/internal/todo"
)

// Harness wires together the real controller and the oracle model.
//
// This is intentionally small: it exists to share setup and provide
// a single place to hang helper methods for behavior tests.
type Harness struct {
	TB         testing.TB
	Controller *todo.Controller
	Model      *oracle.Model
}

// NewHarness creates a new behavior test harness. The controller draws
// deterministic IDs so failures replay identically.
func NewHarness(tb testing.TB) *Harness {
	tb.Helper()

	return &Harness{
		TB:         tb,
		Controller: todo.NewController(todo.WithIDSource(&todo.SequenceIDs{})),
		Model:      oracle.New(),
	}
}

// Apply runs the operation against the real controller, then the model.
func (h *Harness) Apply(op Op) {
	op.ApplyReal(h)
	op.ApplyModel(h)
}

// Snapshot converts controller state into the model's observable form.
func Snapshot(s todo.State) oracle.Snapshot {
	tasks := s.Tasks()

	out := oracle.Snapshot{
		Tasks:     make([]oracle.Task, 0, len(tasks)),
		Draft:     s.Draft(),
		Filter:    s.Filter().String(),
		EditMode:  s.EditMode(),
		EditIndex: -1,
		Visible:   []int{},
	}

	for _, t := range tasks {
		out.Tasks = append(out.Tasks, oracle.Task{Text: t.Text, Done: t.Done})
	}

	if i, ok := s.EditIndex(); ok {
		out.EditIndex = i
	}

	for _, r := range s.Rows() {
		out.Visible = append(out.Visible, r.Index)
	}

	return out
}
