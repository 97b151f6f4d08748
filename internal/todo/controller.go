package todo

// Observer is notified after every dispatched command.
type Observer func(cmd Command, before, after State)

// Controller owns a State and applies commands to it one at a time.
//
// A Controller is not safe for concurrent use. Front-ends deliver one
// event at a time and each Dispatch runs to completion.
type Controller struct {
	state    State
	ids      IDSource
	observer Observer
}

// Option configures a Controller.
type Option func(*Controller)

// WithIDSource replaces the default UUIDv7 ID source.
func WithIDSource(ids IDSource) Option {
	return func(c *Controller) { c.ids = ids }
}

// WithObserver registers fn to run after every Dispatch.
func WithObserver(fn Observer) Option {
	return func(c *Controller) { c.observer = fn }
}

// WithFilter sets the initial filter.
func WithFilter(f Filter) Option {
	return func(c *Controller) { c.state.filter = f }
}

// NewController returns a Controller over an empty task list.
func NewController(opts ...Option) *Controller {
	c := &Controller{ids: UUIDv7{}}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Dispatch applies cmd and returns the new state.
func (c *Controller) Dispatch(cmd Command) State {
	before := c.state
	c.state = Reduce(c.state, cmd, c.ids)

	if c.observer != nil {
		c.observer(cmd, before, c.state)
	}

	return c.state
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// Rows returns the currently visible rows.
func (c *Controller) Rows() []Row {
	return c.state.Rows()
}

// SetDraft replaces the draft text.
func (c *Controller) SetDraft(text string) { c.Dispatch(SetDraft{Text: text}) }

// Add appends the draft as a new task.
func (c *Controller) Add() { c.Dispatch(Add{}) }

// Delete removes the task at index.
func (c *Controller) Delete(index int) { c.Dispatch(Delete{Index: index}) }

// Toggle flips the task at index.
func (c *Controller) Toggle(index int) { c.Dispatch(Toggle{Index: index}) }

// BeginEdit starts editing the task at index.
func (c *Controller) BeginEdit(index int) { c.Dispatch(BeginEdit{Index: index}) }

// CommitEdit writes the draft into the task being edited.
func (c *Controller) CommitEdit() { c.Dispatch(CommitEdit{}) }

// SetFilter changes the active filter.
func (c *Controller) SetFilter(f Filter) { c.Dispatch(SetFilter{Filter: f}) }

// Submit adds or commits depending on edit mode.
func (c *Controller) Submit() { c.Dispatch(Submit{}) }
