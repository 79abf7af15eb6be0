package ecs_test

import (
	"fmt"

	"github.com/plus3/entable/ecs"
)

// ExampleStableTable demonstrates address stability: removing one entity
// leaves every other component exactly where it was, at the cost of a
// tombstone slot that Pack later reclaims.
func ExampleStableTable() {
	bodies := ecs.NewStableTable[Position]()

	for e := ecs.Entity(1); e <= 4; e++ {
		bodies.Add(e, Position{X: float32(e)})
	}

	third := bodies.Get(3)
	bodies.Remove(2)

	fmt.Printf("still valid: %v\n", third == bodies.Get(3))
	fmt.Printf("live: %d, slots: %d\n", bodies.Count(), len(bodies.Entities()))

	bodies.Pack()
	fmt.Printf("after pack: live %d, slots %d\n", bodies.Count(), len(bodies.Entities()))

	// Output:
	// still valid: true
	// live: 3, slots: 4
	// after pack: live 3, slots 3
}

// ExampleStableTable_iteration shows that traversal skips tombstones.
func ExampleStableTable_iteration() {
	labels := ecs.NewStableTable[Label]()

	labels.Add(1, Label{"alpha"})
	labels.Add(2, Label{"beta"})
	labels.Add(3, Label{"gamma"})
	labels.Remove(2)

	for entity, label := range labels.All() {
		fmt.Printf("entity %d: %s\n", entity, label.Value)
	}

	// Output:
	// entity 1: alpha
	// entity 3: gamma
}

// ExampleStableTable_tombstoneReuse shows that insertions reuse the most
// recently freed slot first.
func ExampleStableTable_tombstoneReuse() {
	table := ecs.NewStableTable[int]()

	for e := ecs.Entity(1); e <= 5; e++ {
		table.Add(e, int(e))
	}
	table.Remove(2)
	table.Remove(4)

	table.Add(6, 6)
	fmt.Printf("entity 6 landed in slot %d\n", table.UnstableIndex(6))

	// Output:
	// entity 6 landed in slot 3
}
