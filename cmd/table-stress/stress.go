package main

import (
	"math/rand"

	"github.com/plus3/entable/ecs"
)

// StressTable erases the component type of a table under churn, so the
// driver loop can treat the generated fleet uniformly.
type StressTable interface {
	Name() string
	Spawn(entity ecs.Entity)
	SpawnRange(r ecs.EntityRange)
	Despawn(entity ecs.Entity) bool
	SortByEntity()
	Pack()
	Stats() ecs.TableStats
}

type denseStress[C any] struct {
	name  string
	table *ecs.DenseTable[C]
	fill  func(*rand.Rand) C
	rng   *rand.Rand
}

func newDenseStress[C any](name string, fill func(*rand.Rand) C) StressTable {
	return &denseStress[C]{
		name:  name,
		table: ecs.NewDenseTable[C](),
		fill:  fill,
		rng:   rand.New(rand.NewSource(int64(len(name)))),
	}
}

func (s *denseStress[C]) Name() string { return s.name }

func (s *denseStress[C]) Spawn(entity ecs.Entity) {
	s.table.Add(entity, s.fill(s.rng))
}

func (s *denseStress[C]) SpawnRange(r ecs.EntityRange) {
	s.table.AddRange(r, s.fill(s.rng))
}

func (s *denseStress[C]) Despawn(entity ecs.Entity) bool {
	return s.table.TryRemove(entity)
}

func (s *denseStress[C]) SortByEntity() {
	s.table.Sort(func(a, b ecs.Entity) bool { return a < b })
}

func (s *denseStress[C]) Pack() {}

func (s *denseStress[C]) Stats() ecs.TableStats { return s.table.Stats() }

type stableStress[C any] struct {
	name  string
	table *ecs.StableTable[C]
	fill  func(*rand.Rand) C
	rng   *rand.Rand
}

func newStableStress[C any](name string, fill func(*rand.Rand) C) StressTable {
	return &stableStress[C]{
		name:  name,
		table: ecs.NewStableTable[C](),
		fill:  fill,
		rng:   rand.New(rand.NewSource(int64(len(name)))),
	}
}

func (s *stableStress[C]) Name() string { return s.name }

func (s *stableStress[C]) Spawn(entity ecs.Entity) {
	s.table.Add(entity, s.fill(s.rng))
}

func (s *stableStress[C]) SpawnRange(r ecs.EntityRange) {
	s.table.AddRange(r, s.fill(s.rng))
}

func (s *stableStress[C]) Despawn(entity ecs.Entity) bool {
	return s.table.TryRemove(entity)
}

func (s *stableStress[C]) SortByEntity() {
	s.table.Sort(func(a, b ecs.Entity) bool { return a < b })
}

func (s *stableStress[C]) Pack() {
	s.table.Pack()
}

func (s *stableStress[C]) Stats() ecs.TableStats { return s.table.Stats() }
