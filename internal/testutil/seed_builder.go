package testutil

import (
	"fmt"
	"slices"
)

// SeedBuilder builds deterministic byte seeds for OpGenerator without
// hand-writing raw byte sequences.
//
// The builder encodes values according to OpGenerator's byte consumption
// order. It tracks the task count the model will have, so row references
// can be validated while building.
type SeedBuilder struct {
	cfg   OpGenConfig
	tasks int
	data  []byte
}

// NewSeedBuilder creates a new builder for the given OpGenerator config.
func NewSeedBuilder(cfg *OpGenConfig) *SeedBuilder {
	if cfg == nil {
		panic("seed builder: cfg must not be nil")
	}

	return &SeedBuilder{cfg: *cfg}
}

// WithTasks tells the builder how many tasks the model already holds.
func (b *SeedBuilder) WithTasks(n int) *SeedBuilder {
	b.tasks = n

	return b
}

// Bytes returns a copy of the built seed bytes.
func (b *SeedBuilder) Bytes() []byte {
	return append([]byte(nil), b.data...)
}

// -----------------------------------------------------------------------------
// High-level ops
// -----------------------------------------------------------------------------

// SetDraft types one of the known seed texts.
func (b *SeedBuilder) SetDraft(text string) *SeedBuilder {
	b.opChoice(0, b.cfg.SetDraftRate)

	if i := slices.Index(seedTexts, text); i >= 0 {
		b.forceBelow(b.cfg.BlankTextRate, false, "BlankTextRate")
		b.appendByte(byte(i))

		return b
	}

	if i := slices.Index(seedBlankTexts, text); i >= 0 {
		b.forceBelow(b.cfg.BlankTextRate, true, "BlankTextRate")
		b.appendByte(byte(i))

		return b
	}

	panic(fmt.Sprintf("seed builder: unknown text %q", text))
}

// Add appends an Add press. When the draft is a seed text (not blank) the
// caller should have typed it with SetDraft first.
func (b *SeedBuilder) Add() *SeedBuilder {
	b.opChoice(b.cfg.SetDraftRate, b.cfg.AddRate)

	return b
}

// AddTask types text and presses Add, counting the new task.
func (b *SeedBuilder) AddTask(text string) *SeedBuilder {
	b.SetDraft(text).Add()
	b.tasks++

	return b
}

// Submit appends an Enter press.
func (b *SeedBuilder) Submit() *SeedBuilder {
	b.opChoice(b.start(2), b.cfg.SubmitRate)

	return b
}

// SubmitTask types text and presses Enter outside edit mode, counting the
// new task.
func (b *SeedBuilder) SubmitTask(text string) *SeedBuilder {
	b.SetDraft(text).Submit()
	b.tasks++

	return b
}

// Delete removes the task at index.
func (b *SeedBuilder) Delete(index int) *SeedBuilder {
	b.opChoice(b.start(3), b.cfg.DeleteRate)
	b.pickIndex(index)
	b.tasks--

	return b
}

// Toggle flips the task at index.
func (b *SeedBuilder) Toggle(index int) *SeedBuilder {
	b.opChoice(b.start(4), b.cfg.ToggleRate)
	b.pickIndex(index)

	return b
}

// ToggleInvalid toggles an out-of-range index (-1, len or len+7).
func (b *SeedBuilder) ToggleInvalid(index int) *SeedBuilder {
	b.opChoice(b.start(4), b.cfg.ToggleRate)
	b.pickInvalidIndex(index)

	return b
}

// BeginEdit starts editing the task at index.
func (b *SeedBuilder) BeginEdit(index int) *SeedBuilder {
	b.opChoice(b.start(5), b.cfg.BeginEditRate)
	b.pickIndex(index)

	return b
}

// CommitEdit appends an Update press.
func (b *SeedBuilder) CommitEdit() *SeedBuilder {
	b.opChoice(b.start(6), b.cfg.CommitEditRate)

	return b
}

// SetFilter selects one of "all", "done", "notdone" or "someday".
func (b *SeedBuilder) SetFilter(name string) *SeedBuilder {
	start := b.start(7)
	if start >= 100 {
		panic("seed builder: SetFilter cannot be selected when other rates sum to 100")
	}

	i := slices.Index(seedFilters, name)
	if i < 0 {
		panic(fmt.Sprintf("seed builder: unknown filter %q", name))
	}

	b.appendByte(byte(start))
	b.appendByte(byte(i))

	return b
}

// -----------------------------------------------------------------------------
// Internals
// -----------------------------------------------------------------------------

// start returns where the n-th op bucket begins in NextOp's choice range.
func (b *SeedBuilder) start(n int) int {
	rates := []int{
		b.cfg.SetDraftRate, b.cfg.AddRate, b.cfg.SubmitRate, b.cfg.DeleteRate,
		b.cfg.ToggleRate, b.cfg.BeginEditRate, b.cfg.CommitEditRate,
	}

	sum := 0
	for _, r := range rates[:n] {
		sum += r
	}

	return sum
}

func (b *SeedBuilder) opChoice(start, rate int) {
	if rate <= 0 {
		panic(fmt.Sprintf("seed builder: op rate is zero at start=%d", start))
	}

	// NextOp uses choice := NextByte()%100. Any value in [start, start+rate)
	// selects this op. We always choose the range start for stability.
	b.appendByte(byte(start % 100))
}

// forceBelow emits a byte for NextPercent(rate) that yields want.
func (b *SeedBuilder) forceBelow(rate int, want bool, name string) {
	if want {
		if rate <= 0 {
			panic("seed builder: cannot force true when " + name + "=0")
		}

		b.appendByte(0)

		return
	}

	if rate >= 100 {
		panic("seed builder: cannot force false when " + name + "=100")
	}

	b.appendByte(byte(rate))
}

func (b *SeedBuilder) pickIndex(index int) {
	if index < 0 || index >= b.tasks {
		panic(fmt.Sprintf("seed builder: index %d out of range (tasks=%d)", index, b.tasks))
	}

	b.forceBelow(b.cfg.InvalidIndexRate, false, "InvalidIndexRate")
	b.appendByte(byte(index))
}

func (b *SeedBuilder) pickInvalidIndex(index int) {
	invalid := invalidIndexes(b.tasks)

	i := slices.Index(invalid[:], index)
	if i < 0 {
		panic(fmt.Sprintf("seed builder: %d is not a generated invalid index (tasks=%d)", index, b.tasks))
	}

	b.forceBelow(b.cfg.InvalidIndexRate, true, "InvalidIndexRate")
	b.appendByte(byte(i))
}

func (b *SeedBuilder) appendByte(v byte) {
	b.data = append(b.data, v)
}
