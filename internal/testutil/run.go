package testutil

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// RunConfig configures a behavior test run.
type RunConfig struct {
	// MaxOps is the maximum number of operations to execute.
	MaxOps int

	// CompareStateEveryN runs full state comparison every N operations.
	// Set to 0 to only check at the end.
	CompareStateEveryN int
}

// DefaultRunConfig returns a balanced configuration for behavior tests.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		MaxOps:             100,
		CompareStateEveryN: 1,
	}
}

// RunBehavior executes a deterministic stream of operations and compares
// the oracle model with the real controller.
func RunBehavior(tb testing.TB, cfg RunConfig, gen *OpGenerator, h *Harness) {
	tb.Helper()

	if cfg.MaxOps <= 0 {
		tb.Fatalf("RunBehavior requires MaxOps > 0")
	}

	history := make([]string, 0, cfg.MaxOps)

	for opIndex := 1; opIndex <= cfg.MaxOps && gen.HasMore(); opIndex++ {
		op := gen.NextOp()
		history = append(history, op.String())

		h.Apply(op)

		if cfg.CompareStateEveryN > 0 && opIndex%cfg.CompareStateEveryN == 0 {
			if err := CompareState(h, history); err != nil {
				tb.Fatal(err)
			}
		}
	}

	if err := CompareState(h, history); err != nil {
		tb.Fatal(err)
	}
}

// RunBehaviorWithSeed runs behavior tests with a specific byte seed.
func RunBehaviorWithSeed(tb testing.TB, seed []byte, cfg RunConfig) {
	tb.Helper()

	h := NewHarness(tb)
	genCfg := DefaultOpGenConfig()
	gen := NewOpGenerator(seed, h.Model, &genCfg)

	RunBehavior(tb, cfg, gen, h)
}

// CompareState reports the first difference between model and controller.
func CompareState(h *Harness, history []string) error {
	want := h.Model.Snapshot()
	got := Snapshot(h.Controller.State())

	if diff := cmp.Diff(want, got); diff != "" {
		return fmt.Errorf("state mismatch (-model +controller):\n%s\n%s", diff, FormatOps(history))
	}

	return nil
}
