package todo

// Row is a task as shown in the filtered view. Index is the task's position
// in the full sequence, which is what row-level commands must be given.
type Row struct {
	Index int
	Task
}

// Visible projects tasks through filter, preserving relative order.
func Visible(tasks []Task, filter Filter) []Row {
	rows := make([]Row, 0, len(tasks))

	for i, t := range tasks {
		if filter.Match(t) {
			rows = append(rows, Row{Index: i, Task: t})
		}
	}

	return rows
}

// Counts summarises a task sequence.
type Counts struct {
	Total int
	Done  int
	Open  int
}

// CountTasks tallies done and open tasks.
func CountTasks(tasks []Task) Counts {
	c := Counts{Total: len(tasks)}

	for _, t := range tasks {
		if t.Done {
			c.Done++
		}
	}

	c.Open = c.Total - c.Done

	return c
}

// Rows returns the visible rows of s under its own filter.
func (s State) Rows() []Row {
	return Visible(s.tasks, s.filter)
}

// Counts tallies the tasks of s regardless of the filter.
func (s State) Counts() Counts {
	return CountTasks(s.tasks)
}
