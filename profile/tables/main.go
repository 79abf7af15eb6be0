// Profiling:
// go build ./profile/tables
// go tool pprof -http=":8000" -nodefraction=0.001 ./tables cpu.pprof

package main

import (
	"github.com/pkg/profile"
	"github.com/plus3/entable/ecs"
)

type body struct {
	X, Y   float32
	VX, VY float32
}

func main() {
	rounds := 50
	iters := 1000
	entities := ecs.EntityIndex(10000)
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters, entities)
	p.Stop()
}

func run(rounds, iters int, numEntities ecs.EntityIndex) {
	for range rounds {
		var allocator ecs.EntityAllocator
		dense := ecs.NewDenseTable[body]()
		stable := ecs.NewStableTable[body]()

		r := allocator.AddRange(numEntities)
		dense.AddRange(r, body{VX: 1, VY: 1})
		stable.AddRange(r, body{VX: 1, VY: 1})

		for range iters {
			for b := range dense.Values() {
				b.X += b.VX
				b.Y += b.VY
			}
			for b := range stable.Values() {
				b.X += b.VX
				b.Y += b.VY
			}
		}

		dense.Release()
		stable.Release()
	}
}
