// Profiling:
// go build ./profile/allocator
// go tool pprof -http=":8000" -nodefraction=0.001 ./allocator mem.pprof

package main

import (
	"math/rand"

	"github.com/pkg/profile"
	"github.com/plus3/entable/ecs"
)

func main() {
	rounds := 100
	churn := 100000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, churn)
	p.Stop()
}

// run fragments the id space heavily, then drains the free list, to
// exercise the coalescing paths rather than the fast ++last one.
func run(rounds, churn int) {
	rng := rand.New(rand.NewSource(42))
	for range rounds {
		var allocator ecs.EntityAllocator
		live := make([]ecs.Entity, 0, churn)

		for range churn {
			live = append(live, allocator.Add())
		}
		rng.Shuffle(len(live), func(i, j int) {
			live[i], live[j] = live[j], live[i]
		})
		for _, entity := range live[:churn/2] {
			allocator.Remove(entity)
		}
		for range churn / 2 {
			allocator.Add()
		}
	}
}
