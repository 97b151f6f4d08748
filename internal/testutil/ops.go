// Package testutil provides ops, a generator and a harness for
// model-vs-controller behavior tests.
package testutil

import (
	"fmt"

	"github.com/calvinalkan/agent-todo/internal/todo"
)

// Op is a behavior test operation executed against both the oracle model and
// the real controller.
type Op interface {
	ApplyModel(h *Harness)
	ApplyReal(h *Harness)
	String() string
}

// OpSetDraft types text into the field.
type OpSetDraft struct{ Text string }

// OpAdd presses the Add button while not editing.
type OpAdd struct{}

// OpSubmit presses Enter in the text field.
type OpSubmit struct{}

// OpDelete clicks the delete icon of the task at Index.
type OpDelete struct{ Index int }

// OpToggle clicks the checkbox of the task at Index.
type OpToggle struct{ Index int }

// OpBeginEdit clicks the edit icon of the task at Index.
type OpBeginEdit struct{ Index int }

// OpCommitEdit presses the Update button.
type OpCommitEdit struct{}

// OpSetFilter clicks a filter control. Filter is the raw text, which may be
// unrecognised.
type OpSetFilter struct{ Filter string }

func (o OpSetDraft) ApplyModel(h *Harness) { h.Model.SetDraft(o.Text) }
func (o OpSetDraft) ApplyReal(h *Harness) { h.Controller.SetDraft(o.Text) }
func (o OpSetDraft) String() string { return fmt.Sprintf("set-draft %q", o.Text) }

func (OpAdd) ApplyModel(h *Harness) { h.Model.Add() }
func (OpAdd) ApplyReal(h *Harness) { h.Controller.Add() }
func (OpAdd) String() string { return "add" }

func (OpSubmit) ApplyModel(h *Harness) { h.Model.Submit() }
func (OpSubmit) ApplyReal(h *Harness) { h.Controller.Submit() }
func (OpSubmit) String() string { return "submit" }

func (o OpDelete) ApplyModel(h *Harness) { h.Model.Delete(o.Index) }
func (o OpDelete) ApplyReal(h *Harness) { h.Controller.Delete(o.Index) }
func (o OpDelete) String() string { return fmt.Sprintf("delete %d", o.Index) }

func (o OpToggle) ApplyModel(h *Harness) { h.Model.Toggle(o.Index) }
func (o OpToggle) ApplyReal(h *Harness) { h.Controller.Toggle(o.Index) }
func (o OpToggle) String() string { return fmt.Sprintf("toggle %d", o.Index) }

func (o OpBeginEdit) ApplyModel(h *Harness) { h.Model.BeginEdit(o.Index) }
func (o OpBeginEdit) ApplyReal(h *Harness) { h.Controller.BeginEdit(o.Index) }
func (o OpBeginEdit) String() string { return fmt.Sprintf("begin-edit %d", o.Index) }

func (OpCommitEdit) ApplyModel(h *Harness) { h.Model.CommitEdit() }
func (OpCommitEdit) ApplyReal(h *Harness) { h.Controller.CommitEdit() }
func (OpCommitEdit) String() string { return "commit-edit" }

func (o OpSetFilter) ApplyModel(h *Harness) { h.Model.SetFilter(o.Filter) }

func (o OpSetFilter) ApplyReal(h *Harness) {
	f, _ := todo.ParseFilter(o.Filter)
	h.Controller.SetFilter(f)
}

func (o OpSetFilter) String() string { return "set-filter " + o.Filter }

// FormatOps renders an op history for failure messages.
func FormatOps(history []string) string {
	out := "ops:\n"
	for i, op := range history {
		out += fmt.Sprintf("  %3d: %s\n", i+1, op)
	}

	return out
}
