package todo_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/calvinalkan/agent-todo/internal/testutil"
)

func Test_Controller_Matches_Model_When_Curated_Seed_Applied(t *testing.T) {
	t.Parallel()

	for _, seed := range testutil.CuratedSeeds() {
		t.Run(seed.Name, func(t *testing.T) {
			t.Parallel()

			testutil.RunBehaviorWithSeed(t, seed.Data, testutil.DefaultRunConfig())
		})
	}
}

func Test_Controller_Matches_Model_When_Seeded_Random_Ops_Applied(t *testing.T) {
	t.Parallel()

	seedsCount := 25
	if testing.Short() {
		seedsCount = 5
	}

	for seedIndex := range seedsCount {
		seed := uint64(seedIndex + 1)
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			t.Parallel()

			rng := rand.New(rand.NewPCG(seed, seed))
			fuzzBytes := make([]byte, 2048)
			fillRandom(rng, fuzzBytes)

			cfg := testutil.DefaultRunConfig()
			cfg.MaxOps = 400

			testutil.RunBehaviorWithSeed(t, fuzzBytes, cfg)
		})
	}
}

func FuzzController_Matches_Model_When_Random_Ops_Applied(f *testing.F) {
	for _, seed := range testutil.CuratedSeeds() {
		f.Add(seed.Data)
	}

	f.Add([]byte{0x00, 0x01, 0x02})
	f.Add([]byte("todo-ops"))

	f.Fuzz(func(t *testing.T, fuzzBytes []byte) {
		cfg := testutil.DefaultRunConfig()
		cfg.MaxOps = 200

		testutil.RunBehaviorWithSeed(t, fuzzBytes, cfg)
	})
}

func fillRandom(rng *rand.Rand, dst []byte) {
	for i := range dst {
		dst[i] = byte(rng.Uint32())
	}
}
