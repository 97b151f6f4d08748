package todo

import (
	"slices"

	"github.com/google/uuid"
)

// State is the complete task-list state. The zero value is an empty list
// with an empty draft, FilterAll and no edit in progress.
//
// State is a value: [Reduce] never mutates the State it is given, so a
// caller may keep old States around (e.g. to diff before and after).
type State struct {
	tasks  []Task
	draft  string
	filter Filter
	editID uuid.UUID
}

// NewState returns an empty state with the given initial filter.
func NewState(filter Filter) State {
	return State{filter: filter}
}

// Tasks returns a copy of the full, unfiltered task sequence.
func (s State) Tasks() []Task {
	return slices.Clone(s.tasks)
}

// Len returns the number of tasks.
func (s State) Len() int {
	return len(s.tasks)
}

// Task returns the task at index i.
func (s State) Task(i int) (Task, bool) {
	if !s.valid(i) {
		return Task{}, false
	}

	return s.tasks[i], true
}

// Draft returns the scratch text shared by the create and edit flows.
func (s State) Draft() string {
	return s.draft
}

// Filter returns the active filter.
func (s State) Filter() Filter {
	return s.filter
}

// EditMode reports whether the draft is being used to edit an existing task.
func (s State) EditMode() bool {
	return s.editID != uuid.Nil
}

// EditIndex returns the position of the task being edited.
func (s State) EditIndex() (int, bool) {
	if s.editID == uuid.Nil {
		return -1, false
	}

	return s.IndexOf(s.editID)
}

// IndexOf returns the current position of the task with the given ID.
func (s State) IndexOf(id uuid.UUID) (int, bool) {
	i := slices.IndexFunc(s.tasks, func(t Task) bool { return t.ID == id })

	return i, i >= 0
}

func (s State) valid(i int) bool {
	return i >= 0 && i < len(s.tasks)
}
