package bias_test

import (
	"fmt"
	"math/rand"

	"github.com/gramforge/gramforge/bias"
)

// Run several episodes over the same weight table, rewarding the ones
// that end well. Later episodes lean toward the rewarded choices.
func ExampleBias() {
	root := bias.New(bias.WithRand(rand.New(rand.NewSource(1))))

	for i := 0; i < 50; i++ {
		episode := root.Fork()
		pick := episode.Choose([]any{"retry", "abort"})
		if pick == "retry" {
			episode.Reward()
		} else {
			episode.Penalize()
		}
	}

	fmt.Printf("retry > abort: %v\n",
		root.Weight("retry", nil) > root.Weight("abort", nil))
	// Output:
	// retry > abort: true
}
