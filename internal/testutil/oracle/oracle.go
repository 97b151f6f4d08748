// Package oracle is an in-memory reference model of the observable task-list
// semantics.
//
// It is deliberately the most literal rendition possible: tasks are
// addressed purely by position, the edit cursor is a plain index (-1 for
// none), filters are the strings "all", "done" and "notdone". The real
// controller uses stable IDs and typed commands internally; behavior tests
// drive both in lockstep and require identical observable state.
//
// Design principles:
//
//   - Simple over performant. Obvious by inspection beats clever.
//
//   - No dependencies beyond the standard library.
//
//   - Panics indicate bugs in the model itself (invariant violations).
//     Invalid user input is never an error: it is a silent no-op.
//
//   - Inputs are primitives (string, int) as a user or fuzzer supplies them.
//
// This package is designed to be simple enough to not need tests.
package oracle

import "strings"

// Task is a task as the user sees it.
type Task struct {
	Text string
	Done bool
}

// Snapshot is the complete observable state.
type Snapshot struct {
	Tasks     []Task
	Draft     string
	Filter    string
	EditMode  bool
	EditIndex int
	Visible   []int
}

// Model is the oracle state machine.
type Model struct {
	tasks     []Task
	draft     string
	filter    string
	editMode  bool
	editIndex int
}

// New returns an empty model showing all tasks.
func New() *Model {
	return &Model{filter: "all", editIndex: -1}
}

// Len returns the number of tasks.
func (m *Model) Len() int {
	return len(m.tasks)
}

// SetDraft replaces the text field contents.
func (m *Model) SetDraft(text string) {
	m.draft = text
}

// Add appends the trimmed draft when it is not blank.
func (m *Model) Add() {
	text := strings.TrimSpace(m.draft)
	if text == "" {
		return
	}

	m.tasks = append(m.tasks, Task{Text: text})
	m.draft = ""
}

// Delete removes the task at index and leaves edit mode.
func (m *Model) Delete(index int) {
	if index < 0 || index >= len(m.tasks) {
		return
	}

	next := make([]Task, 0, len(m.tasks)-1)
	next = append(next, m.tasks[:index]...)
	next = append(next, m.tasks[index+1:]...)
	m.tasks = next

	m.editMode = false
	m.editIndex = -1
}

// Toggle flips the done flag of the task at index.
func (m *Model) Toggle(index int) {
	if index < 0 || index >= len(m.tasks) {
		return
	}

	m.tasks[index].Done = !m.tasks[index].Done
}

// BeginEdit loads the task at index into the draft.
func (m *Model) BeginEdit(index int) {
	if index < 0 || index >= len(m.tasks) {
		return
	}

	m.editMode = true
	m.editIndex = index
	m.draft = m.tasks[index].Text
}

// CommitEdit writes the draft into the edited task.
func (m *Model) CommitEdit() {
	if m.editIndex == -1 {
		return
	}

	if m.editIndex >= len(m.tasks) {
		panic("oracle: edit index points past the end of the task list")
	}

	m.tasks[m.editIndex].Text = m.draft
	m.editMode = false
	m.editIndex = -1
	m.draft = ""
}

// SetFilter replaces the filter. Names other than "done" and "notdone"
// show every task.
func (m *Model) SetFilter(filter string) {
	m.filter = filter
}

// Submit is the Enter key.
func (m *Model) Submit() {
	if m.editMode {
		m.CommitEdit()

		return
	}

	m.Add()
}

// Visible returns the indices of the tasks the current filter shows.
func (m *Model) Visible() []int {
	out := []int{}

	for i, t := range m.tasks {
		switch m.filter {
		case "done":
			if t.Done {
				out = append(out, i)
			}
		case "notdone":
			if !t.Done {
				out = append(out, i)
			}
		default:
			out = append(out, i)
		}
	}

	return out
}

// Snapshot returns a deep copy of the observable state.
func (m *Model) Snapshot() Snapshot {
	filter := m.filter
	if filter != "done" && filter != "notdone" {
		filter = "all"
	}

	return Snapshot{
		Tasks:     append([]Task{}, m.tasks...),
		Draft:     m.draft,
		Filter:    filter,
		EditMode:  m.editMode,
		EditIndex: m.editIndex,
		Visible:   m.Visible(),
	}
}
