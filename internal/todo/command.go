package todo

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// Command is one state transition. The set of commands is closed; use the
// concrete types below.
type Command interface {
	fmt.Stringer
	apply(s *State, ids IDSource)
}

// SetDraft replaces the draft text (a keystroke in the text field).
type SetDraft struct{ Text string }

// Add appends the trimmed draft as a new open task and clears the draft.
// A blank draft makes it a no-op.
type Add struct{}

// Delete removes the task at Index and always leaves edit mode.
type Delete struct{ Index int }

// Toggle flips the completion flag of the task at Index.
type Toggle struct{ Index int }

// BeginEdit loads the task at Index into the draft and enters edit mode.
type BeginEdit struct{ Index int }

// CommitEdit writes the draft into the task being edited and resets the
// edit state. Outside edit mode it is a no-op.
type CommitEdit struct{}

// SetFilter replaces the active filter.
type SetFilter struct{ Filter Filter }

// Submit is the Enter key / primary button: CommitEdit in edit mode, Add
// otherwise.
type Submit struct{}

func (c SetDraft) String() string { return fmt.Sprintf("set-draft %q", c.Text) }
func (Add) String() string { return "add" }
func (c Delete) String() string { return fmt.Sprintf("delete %d", c.Index) }
func (c Toggle) String() string { return fmt.Sprintf("toggle %d", c.Index) }
func (c BeginEdit) String() string { return fmt.Sprintf("begin-edit %d", c.Index) }
func (CommitEdit) String() string { return "commit-edit" }
func (c SetFilter) String() string { return "set-filter " + c.Filter.String() }
func (Submit) String() string { return "submit" }

// Reduce applies cmd to s and returns the resulting state. s is not
// modified. ids is only consulted by commands that create a task.
func Reduce(s State, cmd Command, ids IDSource) State {
	s.tasks = slices.Clone(s.tasks)
	cmd.apply(&s, ids)

	return s
}

func (c SetDraft) apply(s *State, _ IDSource) {
	s.draft = c.Text
}

func (Add) apply(s *State, ids IDSource) {
	text := strings.TrimSpace(s.draft)
	if text == "" {
		return
	}

	s.tasks = append(s.tasks, Task{ID: ids.NewID(), Text: text})
	s.draft = ""
}

func (c Delete) apply(s *State, _ IDSource) {
	if !s.valid(c.Index) {
		return
	}

	s.tasks = slices.Delete(s.tasks, c.Index, c.Index+1)
	s.editID = uuid.Nil
}

func (c Toggle) apply(s *State, _ IDSource) {
	if !s.valid(c.Index) {
		return
	}

	s.tasks[c.Index].Done = !s.tasks[c.Index].Done
}

func (c BeginEdit) apply(s *State, _ IDSource) {
	if !s.valid(c.Index) {
		return
	}

	s.editID = s.tasks[c.Index].ID
	s.draft = s.tasks[c.Index].Text
}

func (CommitEdit) apply(s *State, _ IDSource) {
	i, ok := s.EditIndex()
	if !ok {
		return
	}

	s.tasks[i].Text = s.draft
	s.editID = uuid.Nil
	s.draft = ""
}

func (c SetFilter) apply(s *State, _ IDSource) {
	s.filter = c.Filter
}

func (Submit) apply(s *State, ids IDSource) {
	if s.EditMode() {
		CommitEdit{}.apply(s, ids)

		return
	}

	Add{}.apply(s, ids)
}
