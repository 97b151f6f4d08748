package testutil

import (
	"github.com/calvinalkan/agent-todo/internal/testutil/oracle"
)

// OpGenConfig configures the operation generator. Rates are percentages and
// should sum to at most 100; the remainder goes to SetFilter.
type OpGenConfig struct {
	// SetDraftRate is the percentage of ops that type into the field.
	SetDraftRate int

	// AddRate is the percentage of ops that press Add directly.
	AddRate int

	// SubmitRate is the percentage of ops that press Enter.
	SubmitRate int

	// DeleteRate is the percentage of ops that delete a task.
	DeleteRate int

	// ToggleRate is the percentage of ops that toggle a task.
	ToggleRate int

	// BeginEditRate is the percentage of ops that start editing a task.
	BeginEditRate int

	// CommitEditRate is the percentage of ops that press Update.
	CommitEditRate int

	// BlankTextRate is the percentage of drafts that are blank.
	BlankTextRate int

	// InvalidIndexRate is the percentage of row references that are out of range.
	InvalidIndexRate int
}

// DefaultOpGenConfig returns a balanced configuration.
func DefaultOpGenConfig() OpGenConfig {
	return OpGenConfig{
		SetDraftRate:     25,
		AddRate:          10,
		SubmitRate:       15,
		DeleteRate:       10,
		ToggleRate:       15,
		BeginEditRate:    10,
		CommitEditRate:   5,
		BlankTextRate:    15,
		InvalidIndexRate: 10,
	}
}

// seedTexts are the drafts the generator types.
var seedTexts = []string{
	"Buy milk",
	"Walk dog",
	"Write tests",
	"  padded  ",
	"Call mom",
	"Fix bike",
	"Buy milk",
	"Read book",
}

// seedBlankTexts are drafts that Add must ignore.
var seedBlankTexts = []string{"", " ", "\t", " \n "}

// seedFilters includes one name no filter recognises.
var seedFilters = []string{"all", "done", "notdone", "someday"}

// OpGenerator generates deterministic operations from a byte stream.
type OpGenerator struct {
	stream *ByteStream
	config OpGenConfig
	model  *oracle.Model
}

// NewOpGenerator creates a new operation generator. The model is consulted
// for the current task count so most row references land on real tasks.
func NewOpGenerator(fuzzBytes []byte, model *oracle.Model, cfg *OpGenConfig) *OpGenerator {
	return &OpGenerator{
		stream: NewByteStream(fuzzBytes),
		config: *cfg,
		model:  model,
	}
}

// HasMore reports whether more operations can be generated.
func (g *OpGenerator) HasMore() bool {
	return g.stream.HasMore()
}

// NextOp generates the next operation.
func (g *OpGenerator) NextOp() Op {
	choice := int(g.stream.NextByte()) % 100
	cumulative := 0

	cumulative += g.config.SetDraftRate
	if choice < cumulative {
		return OpSetDraft{Text: g.genText()}
	}

	cumulative += g.config.AddRate
	if choice < cumulative {
		return OpAdd{}
	}

	cumulative += g.config.SubmitRate
	if choice < cumulative {
		return OpSubmit{}
	}

	cumulative += g.config.DeleteRate
	if choice < cumulative {
		return OpDelete{Index: g.genIndex()}
	}

	cumulative += g.config.ToggleRate
	if choice < cumulative {
		return OpToggle{Index: g.genIndex()}
	}

	cumulative += g.config.BeginEditRate
	if choice < cumulative {
		return OpBeginEdit{Index: g.genIndex()}
	}

	cumulative += g.config.CommitEditRate
	if choice < cumulative {
		return OpCommitEdit{}
	}

	return OpSetFilter{Filter: seedFilters[g.stream.NextInt(len(seedFilters))]}
}

// genText consumes two bytes: the blank decision and the pick.
func (g *OpGenerator) genText() string {
	blank := g.stream.NextPercent(g.config.BlankTextRate)
	pick := g.stream.NextByte()

	if blank {
		return seedBlankTexts[int(pick)%len(seedBlankTexts)]
	}

	return seedTexts[int(pick)%len(seedTexts)]
}

// genIndex consumes two bytes: the invalid decision and the pick.
func (g *OpGenerator) genIndex() int {
	invalid := g.stream.NextPercent(g.config.InvalidIndexRate)
	pick := int(g.stream.NextByte())
	n := g.model.Len()

	if invalid || n == 0 {
		return invalidIndexes(n)[pick%3]
	}

	return pick % n
}

// invalidIndexes lists the out-of-range references used for n tasks.
func invalidIndexes(n int) [3]int {
	return [3]int{-1, n, n + 7}
}
