package ecs

import (
	"fmt"
	"iter"
	"slices"
	"sort"
)

// StableTable stores components in fixed-width pages and, outside Pack and
// Sort, never moves a component while its entity stays in the table, so
// component pointers remain valid across unrelated mutations. A removal leaves a tombstone
// (entities[i] == NullEntity) that later insertions reuse LIFO; Pack
// compacts the tombstones away when density matters more than stability.
type StableTable[C any] struct {
	indices    SparseIndex
	entities   []Entity
	tombstones []EntityIndex
	pages      [][]C
	pageSize   EntityIndex
}

// NewStableTable creates an empty stable table.
func NewStableTable[C any](opts ...TableOption) *StableTable[C] {
	cfg := makeTableConfig(opts)
	if cfg.componentPageSize == 0 {
		cfg.componentPageSize = defaultComponentPageSize[C]()
	}
	table := &StableTable[C]{pageSize: cfg.componentPageSize}
	table.indices.init(cfg.entityPageSize)
	return table
}

// Count returns the number of live components in the table.
func (t *StableTable[C]) Count() EntityIndex {
	return EntityIndex(len(t.entities) - len(t.tombstones))
}

// Exists reports whether the entity has a component in the table.
func (t *StableTable[C]) Exists(entity Entity) bool {
	return t.indices.Get(entity) != NullIndex
}

// componentAt returns the component slot at a page-decomposed index.
func (t *StableTable[C]) componentAt(index EntityIndex) *C {
	return &t.pages[index/t.pageSize][index&(t.pageSize-1)]
}

// Add attaches a component to an entity that must not already be present.
// The freshest tombstone is reused first; otherwise the table grows by one
// slot, materializing a new page when the current one is full.
func (t *StableTable[C]) Add(entity Entity, component C) *C {
	var index EntityIndex
	if n := len(t.tombstones); n > 0 {
		index = t.tombstones[n-1]
		t.tombstones = t.tombstones[:n-1]
		t.entities[index] = entity
	} else {
		index = EntityIndex(len(t.entities))
		t.entities = append(t.entities, entity)
		if page := int(index / t.pageSize); page == len(t.pages) {
			t.pages = append(t.pages, make([]C, t.pageSize))
		}
	}
	t.indices.Insert(entity, index)
	slot := t.componentAt(index)
	*slot = component
	return slot
}

// TryAdd attaches a component, overwriting the old value when the entity is
// already present.
func (t *StableTable[C]) TryAdd(entity Entity, component C) *C {
	if index := t.indices.Get(entity); index != NullIndex {
		slot := t.componentAt(index)
		*slot = component
		return slot
	}
	return t.Add(entity, component)
}

// TryAddWith passes the entity's component to update, inserting a zero
// value first when the entity is absent. The callback must leave the
// component fully initialized.
func (t *StableTable[C]) TryAddWith(entity Entity, update func(*C)) *C {
	index := t.indices.Get(entity)
	var slot *C
	if index == NullIndex {
		var zero C
		slot = t.Add(entity, zero)
	} else {
		slot = t.componentAt(index)
	}
	update(slot)
	return slot
}

// AddRange attaches a copy of component to every entity of the range.
func (t *StableTable[C]) AddRange(r EntityRange, component C) {
	for entity := r.Begin; entity != r.End; entity++ {
		t.Add(entity, component)
	}
}

// Remove detaches the component of an entity that must be present. The
// slot becomes a tombstone; other components keep their addresses.
func (t *StableTable[C]) Remove(entity Entity) {
	t.removeAt(t.indices.Extract(entity))
}

// TryRemove detaches the entity's component if present.
func (t *StableTable[C]) TryRemove(entity Entity) bool {
	index := t.indices.Get(entity)
	if index == NullIndex {
		return false
	}
	t.indices.Remove(entity)
	t.removeAt(index)
	return true
}

func (t *StableTable[C]) removeAt(index EntityIndex) {
	var zero C
	*t.componentAt(index) = zero
	t.entities[index] = NullEntity
	t.tombstones = append(t.tombstones, index)
}

// RemoveRange detaches the components of the range's entities; each of
// them must be present.
func (t *StableTable[C]) RemoveRange(r EntityRange) {
	for entity := r.Begin; entity != r.End; entity++ {
		t.Remove(entity)
	}
}

// Extract removes the component of an entity that must be present and
// returns its value.
func (t *StableTable[C]) Extract(entity Entity) C {
	index := t.indices.Extract(entity)
	component := *t.componentAt(index)
	t.removeAt(index)
	return component
}

// Get returns the component of an entity that must be present.
func (t *StableTable[C]) Get(entity Entity) *C {
	index := t.indices.Get(entity)
	if index == NullIndex {
		panic(fmt.Sprintf("ecs: stable table get of absent entity %d", entity))
	}
	return t.componentAt(index)
}

// UnstableIndex returns the entity's current slot index, or NullIndex if
// absent. The index stays valid until the entity is removed or the table
// is packed or sorted.
func (t *StableTable[C]) UnstableIndex(entity Entity) EntityIndex {
	return t.indices.Get(entity)
}

// At returns the component at a slot index.
func (t *StableTable[C]) At(index EntityIndex) *C {
	if index >= EntityIndex(len(t.entities)) {
		panic(fmt.Sprintf("ecs: stable table index %d out of range %d", index, len(t.entities)))
	}
	return t.componentAt(index)
}

// Entities returns the table's backing entity list, tombstones included.
func (t *StableTable[C]) Entities() []Entity {
	return t.entities
}

// Pack shifts live components into tombstone slots until the table is
// dense again, preserving slot order. Component addresses and slot indices
// of everything past the first tombstone change.
func (t *StableTable[C]) Pack() {
	if len(t.tombstones) == 0 {
		return
	}
	slices.Sort(t.tombstones)
	write := t.tombstones[0]
	for read := write + 1; read < EntityIndex(len(t.entities)); read++ {
		entity := t.entities[read]
		if entity == NullEntity {
			continue
		}
		t.entities[write] = entity
		*t.componentAt(write) = *t.componentAt(read)
		t.indices.Assign(entity, write)
		write++
	}
	var zero C
	for index := write; index < EntityIndex(len(t.entities)); index++ {
		*t.componentAt(index) = zero
	}
	t.entities = t.entities[:write]
	t.tombstones = t.tombstones[:0]
}

// All iterates live entities and their components in slot order, skipping
// tombstones. The table must not be mutated during iteration.
func (t *StableTable[C]) All() iter.Seq2[Entity, *C] {
	return func(yield func(Entity, *C) bool) {
		for index := t.nextLive(0); index < EntityIndex(len(t.entities)); index = t.nextLive(index + 1) {
			if !yield(t.entities[index], t.componentAt(index)) {
				return
			}
		}
	}
}

// Values iterates live components in slot order.
func (t *StableTable[C]) Values() iter.Seq[*C] {
	return func(yield func(*C) bool) {
		for index, entity := range t.entities {
			if entity == NullEntity {
				continue
			}
			if !yield(t.componentAt(EntityIndex(index))) {
				return
			}
		}
	}
}

// nextLive returns the first live slot at or after index, or the slot
// count when none is left.
func (t *StableTable[C]) nextLive(index EntityIndex) EntityIndex {
	for index < EntityIndex(len(t.entities)) && t.entities[index] == NullEntity {
		index++
	}
	return index
}

// prevLive returns the last live slot at or before index, or NullIndex
// when none is left.
func (t *StableTable[C]) prevLive(index EntityIndex) EntityIndex {
	for index != NullIndex && t.entities[index] == NullEntity {
		index--
	}
	return index
}

// Backward iterates live entities and their components in reverse slot
// order, skipping tombstones.
func (t *StableTable[C]) Backward() iter.Seq2[Entity, *C] {
	return func(yield func(Entity, *C) bool) {
		for index := t.prevLive(EntityIndex(len(t.entities)) - 1); index != NullIndex; index = t.prevLive(index - 1) {
			if !yield(t.entities[index], t.componentAt(index)) {
				return
			}
		}
	}
}

// Keys iterates live entities in slot order.
func (t *StableTable[C]) Keys() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for _, entity := range t.entities {
			if entity == NullEntity {
				continue
			}
			if !yield(entity) {
				return
			}
		}
	}
}

// Sort packs the table, then reorders it so that entities are totally
// ordered by less. Packing first keeps the permutation well-defined over a
// dense entity list; like Pack, sorting breaks address stability.
func (t *StableTable[C]) Sort(less func(a, b Entity) bool) {
	t.Pack()
	sort.Slice(t.entities, func(i, j int) bool {
		return less(t.entities[i], t.entities[j])
	})
	for position := range t.entities {
		current := EntityIndex(position)
		next := t.indices.Get(t.entities[current])
		for current != next {
			following := t.indices.Get(t.entities[next])
			a, b := t.componentAt(next), t.componentAt(following)
			*a, *b = *b, *a
			t.indices.Assign(t.entities[current], current)
			current = next
			next = following
		}
	}
}

// Clear removes every component, keeping allocated capacity.
func (t *StableTable[C]) Clear() {
	var zero C
	for index, entity := range t.entities {
		if entity != NullEntity {
			*t.componentAt(EntityIndex(index)) = zero
		}
	}
	t.entities = t.entities[:0]
	t.tombstones = t.tombstones[:0]
	t.indices.Clear()
}

// Release removes every component and frees the backing buffers.
func (t *StableTable[C]) Release() {
	t.entities = nil
	t.tombstones = nil
	t.pages = nil
	t.indices.Release()
}
