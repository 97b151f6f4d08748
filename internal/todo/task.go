// Package todo holds the task-list state machine: an ordered list of tasks,
// the shared draft buffer, the edit cursor and the active filter.
//
// All mutation goes through [Reduce] (or a [Controller] wrapping it). Every
// command is total: input that fails a command's precondition (blank draft,
// out-of-range index, no edit target) leaves the state unchanged. There is no
// error return anywhere in this package.
package todo

import (
	"strings"

	"github.com/google/uuid"
)

// Task is a single entry in the list.
type Task struct {
	// ID is assigned once at creation and never changes. Commands still
	// address tasks by position; the ID is what lets the edit cursor and
	// front-ends follow a task while positions shift.
	ID   uuid.UUID
	Text string
	Done bool
}

// Filter selects which tasks the view shows. It never mutates tasks.
type Filter int

// Filter values. The zero value is [FilterAll].
const (
	FilterAll Filter = iota
	FilterDone
	FilterNotDone
)

// Filters lists every filter in display order.
var Filters = []Filter{FilterAll, FilterDone, FilterNotDone}

// String returns the canonical textual form (all, done, notdone).
func (f Filter) String() string {
	switch f {
	case FilterDone:
		return "done"
	case FilterNotDone:
		return "notdone"
	default:
		return "all"
	}
}

// Label returns the human label shown on filter controls.
func (f Filter) Label() string {
	switch f {
	case FilterDone:
		return "Done"
	case FilterNotDone:
		return "Not Done"
	default:
		return "All"
	}
}

// Match reports whether t passes the filter. Unknown values behave as All.
func (f Filter) Match(t Task) bool {
	switch f {
	case FilterDone:
		return t.Done
	case FilterNotDone:
		return !t.Done
	default:
		return true
	}
}

// ParseFilter maps text to a Filter. It is permissive: anything it does not
// recognise yields FilterAll and ok=false.
func ParseFilter(s string) (Filter, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all", "":
		return FilterAll, true
	case "done":
		return FilterDone, true
	case "notdone", "not-done", "not_done", "open":
		return FilterNotDone, true
	default:
		return FilterAll, false
	}
}
