package ecs_test

import (
	"testing"

	"github.com/plus3/entable/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDenseTableBasics(t *testing.T) {
	table := ecs.NewDenseTable[Label]()

	assert.Equal(t, ecs.EntityIndex(0), table.Count())
	assert.False(t, table.Exists(1))
}

func TestDenseTableAddRemove(t *testing.T) {
	table := ecs.NewDenseTable[Label]()

	table.Add(1, Label{"a"})
	table.Add(2, Label{"b"})
	table.Add(3, Label{"c"})

	assert.Equal(t, ecs.EntityIndex(3), table.Count())
	assert.Equal(t, "b", table.Get(2).Value)

	table.Remove(1)

	assert.Equal(t, ecs.EntityIndex(2), table.Count())
	assert.False(t, table.Exists(1))
	assert.Equal(t, "c", table.Get(3).Value)
	assert.Equal(t, "b", table.Get(2).Value)

	// The last component was swapped into the freed slot
	assert.Equal(t, []ecs.Entity{3, 2}, table.Entities())
}

func TestDenseTableRemoveLastSlot(t *testing.T) {
	table := ecs.NewDenseTable[Label]()

	table.Add(1, Label{"a"})
	table.Add(2, Label{"b"})
	table.Remove(2)

	assert.Equal(t, []ecs.Entity{1}, table.Entities())
	assert.Equal(t, "a", table.Get(1).Value)
}

func TestDenseTableAddReturnsSlot(t *testing.T) {
	table := ecs.NewDenseTable[Health]()

	slot := table.Add(1, Health{Current: 100, Max: 100})
	require.NotNil(t, slot)
	slot.Current = 40

	assert.Equal(t, 40, table.Get(1).Current)
	assert.Same(t, table.Get(1), slot)
}

func TestDenseTableTryAdd(t *testing.T) {
	table := ecs.NewDenseTable[Health]()

	assert.False(t, table.TryRemove(1))

	first := table.TryAdd(1, Health{Current: 42, Max: 42})
	assert.Equal(t, ecs.EntityIndex(1), table.Count())
	assert.Equal(t, 42, first.Current)

	second := table.TryAdd(1, Health{Current: 24, Max: 42})
	assert.Equal(t, ecs.EntityIndex(1), table.Count())
	assert.Same(t, first, second)
	assert.Equal(t, 24, table.Get(1).Current)

	third := table.TryAddWith(1, func(h *Health) { h.Current = 123 })
	assert.Same(t, first, third)
	assert.Equal(t, 123, table.Get(1).Current)

	assert.True(t, table.TryRemove(1))
	assert.False(t, table.Exists(1))
	assert.False(t, table.TryRemove(1))
}

func TestDenseTableTryAddWithConstructsOnMiss(t *testing.T) {
	table := ecs.NewDenseTable[Health]()

	slot := table.TryAddWith(7, func(h *Health) {
		assert.Zero(t, h.Current)
		h.Current = 10
		h.Max = 10
	})

	assert.Equal(t, 10, slot.Current)
	assert.True(t, table.Exists(7))
}

func TestDenseTablePreconditions(t *testing.T) {
	table := ecs.NewDenseTable[Label]()
	table.Add(1, Label{"a"})

	assert.Panics(t, func() { table.Add(1, Label{"b"}) }, "add of present entity")
	assert.Panics(t, func() { table.Remove(2) }, "remove of absent entity")
	assert.Panics(t, func() { table.Get(2) }, "get of absent entity")
	assert.Panics(t, func() { table.Extract(2) }, "extract of absent entity")
	assert.Panics(t, func() { table.At(10) }, "index out of range")
}

func TestDenseTableAddRemoveRange(t *testing.T) {
	r := ecs.EntityRange{Begin: 0, End: 100}
	table := ecs.NewDenseTable[Position]()

	table.AddRange(r, Position{X: 1})
	assert.Equal(t, r.Size(), table.Count())
	for e := r.Begin; e != r.End; e++ {
		assert.True(t, table.Exists(e))
		assert.Equal(t, float32(1), table.Get(e).X)
	}

	table.RemoveRange(r)
	assert.Equal(t, ecs.EntityIndex(0), table.Count())
	for e := r.Begin; e != r.End; e++ {
		assert.False(t, table.Exists(e))
	}
}

func TestDenseTableRemoveRangePartial(t *testing.T) {
	table := ecs.NewDenseTable[int]()

	table.AddRange(ecs.EntityRange{Begin: 0, End: 10}, 0)
	for entity, slot := range table.All() {
		*slot = int(entity)
	}

	// A range that only partially overlaps the table
	table.RemoveRange(ecs.EntityRange{Begin: 5, End: 50})

	assert.Equal(t, ecs.EntityIndex(5), table.Count())
	for e := ecs.Entity(0); e < 5; e++ {
		require.True(t, table.Exists(e))
		assert.Equal(t, int(e), *table.Get(e))
	}
	for e := ecs.Entity(5); e < 10; e++ {
		assert.False(t, table.Exists(e))
	}

	// Indices stay aligned after the compaction
	for i, entity := range table.Entities() {
		assert.Equal(t, ecs.EntityIndex(i), table.UnstableIndex(entity))
	}

	// Disjoint range is a no-op
	table.RemoveRange(ecs.EntityRange{Begin: 100, End: 200})
	assert.Equal(t, ecs.EntityIndex(5), table.Count())
}

func TestDenseTableExtract(t *testing.T) {
	table := ecs.NewDenseTable[Label]()

	table.Add(1, Label{"payload"})
	value := table.Extract(1)

	assert.Equal(t, "payload", value.Value)
	assert.Equal(t, ecs.EntityIndex(0), table.Count())
	assert.False(t, table.Exists(1))
}

func TestDenseTableRoundTrip(t *testing.T) {
	table := ecs.NewDenseTable[int]()

	for e := ecs.Entity(1); e <= 32; e++ {
		table.Add(e, int(e)*3)
	}
	for e := ecs.Entity(1); e <= 32; e++ {
		assert.Equal(t, int(e)*3, table.Extract(e))
	}
	assert.Equal(t, ecs.EntityIndex(0), table.Count())
}

func TestDenseTableUnstableIndex(t *testing.T) {
	table := ecs.NewDenseTable[Label]()

	table.Add(10, Label{"x"})
	table.Add(20, Label{"y"})

	assert.Equal(t, ecs.EntityIndex(0), table.UnstableIndex(10))
	assert.Equal(t, ecs.EntityIndex(1), table.UnstableIndex(20))
	assert.Equal(t, ecs.NullIndex, table.UnstableIndex(30))

	assert.Equal(t, "y", table.At(1).Value)

	// Swap-removal moves the tail entity's index
	table.Remove(10)
	assert.Equal(t, ecs.EntityIndex(0), table.UnstableIndex(20))
}

func TestDenseTableIterators(t *testing.T) {
	table := ecs.NewDenseTable[int]()

	for e := ecs.Entity(1); e <= 100; e++ {
		table.Add(e, int(e))
	}

	var entities []ecs.Entity
	var values []int
	for entity, value := range table.All() {
		entities = append(entities, entity)
		values = append(values, *value)
	}
	assert.Len(t, entities, 100)
	assert.Equal(t, entities[0], ecs.Entity(1))
	assert.Equal(t, values[99], 100)

	// Components in dense order, mutable through the iterator
	for value := range table.Values() {
		*value *= 2
	}
	assert.Equal(t, 2, *table.Get(1))
	assert.Equal(t, 200, *table.Get(100))

	// Early exit
	seen := 0
	for range table.Keys() {
		seen++
		if seen == 50 {
			break
		}
	}
	assert.Equal(t, 50, seen)
}

func TestDenseTableSort(t *testing.T) {
	table := ecs.NewDenseTable[int]()

	value := 100
	for e := ecs.Entity(1); e <= 100; e++ {
		value--
		table.Add(e, value)
	}

	table.Sort(func(a, b ecs.Entity) bool {
		return *table.Get(a) < *table.Get(b)
	})

	last := -1
	for value := range table.Values() {
		assert.Greater(t, *value, last)
		last = *value
	}
	for i, entity := range table.Entities() {
		assert.Equal(t, ecs.EntityIndex(i), table.UnstableIndex(entity))
		assert.Equal(t, entity, table.Entities()[table.UnstableIndex(entity)])
	}
}

func TestDenseTableSortSeedCase(t *testing.T) {
	table := ecs.NewDenseTable[int]()

	table.Add(1, 3)
	table.Add(2, 1)
	table.Add(3, 2)

	table.Sort(func(a, b ecs.Entity) bool {
		return *table.Get(a) < *table.Get(b)
	})

	var ordered []int
	for value := range table.Values() {
		ordered = append(ordered, *value)
	}
	assert.Equal(t, []int{1, 2, 3}, ordered)
	assert.Equal(t, []ecs.Entity{2, 3, 1}, table.Entities())
	for i, entity := range table.Entities() {
		assert.Equal(t, ecs.EntityIndex(i), table.UnstableIndex(entity))
	}
}

func TestDenseTableClearAndRelease(t *testing.T) {
	table := ecs.NewDenseTable[Position]()

	table.AddRange(ecs.EntityRange{Begin: 0, End: 100}, Position{})
	table.Clear()
	assert.Equal(t, ecs.EntityIndex(0), table.Count())
	assert.False(t, table.Exists(50))

	// Clear is idempotent
	table.Clear()
	assert.Equal(t, ecs.EntityIndex(0), table.Count())

	table.AddRange(ecs.EntityRange{Begin: 0, End: 100}, Position{})
	table.Release()
	assert.Equal(t, ecs.EntityIndex(0), table.Count())
	table.Release()
	assert.Equal(t, ecs.EntityIndex(0), table.Count())

	// The table is usable after a release
	table.Add(1, Position{X: 5})
	assert.Equal(t, float32(5), table.Get(1).X)
}
