package ecs

import (
	"fmt"
	"iter"
	"sort"
)

// DenseTable stores components in a packed array indexed through a sparse
// index. Iteration is contiguous and cache-friendly; in exchange a removal
// swaps the last component into the freed slot, so component addresses and
// indices are unstable across any mutation. Use StableTable for components
// whose addresses are referenced elsewhere.
type DenseTable[C any] struct {
	indices    SparseIndex
	entities   []Entity
	components []C
}

// NewDenseTable creates an empty dense table.
func NewDenseTable[C any](opts ...TableOption) *DenseTable[C] {
	cfg := makeTableConfig(opts)
	table := &DenseTable[C]{}
	table.indices.init(cfg.entityPageSize)
	return table
}

// Count returns the number of components in the table.
func (t *DenseTable[C]) Count() EntityIndex {
	return EntityIndex(len(t.entities))
}

// Exists reports whether the entity has a component in the table.
func (t *DenseTable[C]) Exists(entity Entity) bool {
	return t.indices.Get(entity) != NullIndex
}

// Add attaches a component to an entity that must not already be present.
func (t *DenseTable[C]) Add(entity Entity, component C) *C {
	index := EntityIndex(len(t.entities))
	t.indices.Insert(entity, index)
	t.entities = append(t.entities, entity)
	t.components = append(t.components, component)
	return &t.components[index]
}

// TryAdd attaches a component, overwriting the old value when the entity is
// already present.
func (t *DenseTable[C]) TryAdd(entity Entity, component C) *C {
	if index := t.indices.Get(entity); index != NullIndex {
		t.components[index] = component
		return &t.components[index]
	}
	return t.Add(entity, component)
}

// TryAddWith passes the entity's component to update, inserting a zero
// value first when the entity is absent. The callback must leave the
// component fully initialized.
func (t *DenseTable[C]) TryAddWith(entity Entity, update func(*C)) *C {
	index := t.indices.Get(entity)
	if index == NullIndex {
		var zero C
		slot := t.Add(entity, zero)
		update(slot)
		return slot
	}
	slot := &t.components[index]
	update(slot)
	return slot
}

// AddRange attaches a copy of component to every entity of the range.
func (t *DenseTable[C]) AddRange(r EntityRange, component C) {
	for entity := r.Begin; entity != r.End; entity++ {
		t.Add(entity, component)
	}
}

// Remove detaches the component of an entity that must be present.
func (t *DenseTable[C]) Remove(entity Entity) {
	t.removeAt(t.indices.Extract(entity))
}

// TryRemove detaches the entity's component if present.
func (t *DenseTable[C]) TryRemove(entity Entity) bool {
	index := t.indices.Get(entity)
	if index == NullIndex {
		return false
	}
	t.indices.Remove(entity)
	t.removeAt(index)
	return true
}

// removeAt swap-removes the component at index. The sparse slot of its
// entity must already be cleared.
func (t *DenseTable[C]) removeAt(index EntityIndex) {
	last := EntityIndex(len(t.entities) - 1)
	if index != last {
		lastEntity := t.entities[last]
		t.entities[index] = lastEntity
		t.components[index] = t.components[last]
		t.indices.Assign(lastEntity, index)
	}
	var zero C
	t.components[last] = zero
	t.entities = t.entities[:last]
	t.components = t.components[:last]
}

// RemoveRange detaches the components of every entity of the range that is
// present. Absent entities are skipped.
func (t *DenseTable[C]) RemoveRange(r EntityRange) {
	var holes []EntityIndex
	for entity := r.Begin; entity != r.End; entity++ {
		if index := t.indices.Get(entity); index != NullIndex {
			t.indices.Remove(entity)
			holes = append(holes, index)
		}
	}
	if len(holes) == 0 {
		return
	}
	// Fill holes from the tail, largest hole first, so that no source
	// slot is itself a pending hole.
	sort.Slice(holes, func(i, j int) bool { return holes[i] > holes[j] })
	end := len(t.entities) - 1
	var zero C
	for _, hole := range holes {
		if int(hole) != end {
			moved := t.entities[end]
			t.entities[hole] = moved
			t.components[hole] = t.components[end]
			t.indices.Assign(moved, hole)
		}
		t.components[end] = zero
		end--
	}
	t.entities = t.entities[:end+1]
	t.components = t.components[:end+1]
}

// Extract removes the component of an entity that must be present and
// returns its value.
func (t *DenseTable[C]) Extract(entity Entity) C {
	index := t.indices.Extract(entity)
	component := t.components[index]
	t.removeAt(index)
	return component
}

// Get returns the component of an entity that must be present.
func (t *DenseTable[C]) Get(entity Entity) *C {
	index := t.indices.Get(entity)
	if index == NullIndex {
		panic(fmt.Sprintf("ecs: dense table get of absent entity %d", entity))
	}
	return &t.components[index]
}

// UnstableIndex returns the entity's current dense index, or NullIndex if
// absent. Any mutation of the table invalidates it.
func (t *DenseTable[C]) UnstableIndex(entity Entity) EntityIndex {
	return t.indices.Get(entity)
}

// At returns the component at a dense index.
func (t *DenseTable[C]) At(index EntityIndex) *C {
	if index >= EntityIndex(len(t.components)) {
		panic(fmt.Sprintf("ecs: dense table index %d out of range %d", index, len(t.components)))
	}
	return &t.components[index]
}

// Entities returns the table's packed entity list.
func (t *DenseTable[C]) Entities() []Entity {
	return t.entities
}

// All iterates entities and their components in dense order. The table
// must not be mutated during iteration.
func (t *DenseTable[C]) All() iter.Seq2[Entity, *C] {
	return func(yield func(Entity, *C) bool) {
		for i := range t.entities {
			if !yield(t.entities[i], &t.components[i]) {
				return
			}
		}
	}
}

// Values iterates components in dense order.
func (t *DenseTable[C]) Values() iter.Seq[*C] {
	return func(yield func(*C) bool) {
		for i := range t.components {
			if !yield(&t.components[i]) {
				return
			}
		}
	}
}

// Keys iterates entities in dense order.
func (t *DenseTable[C]) Keys() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for _, entity := range t.entities {
			if !yield(entity) {
				return
			}
		}
	}
}

// Sort reorders the table so that entities are totally ordered by less.
// Components and sparse indices are re-aligned in O(n) moves by chasing
// the permutation's cycles.
func (t *DenseTable[C]) Sort(less func(a, b Entity) bool) {
	sort.Slice(t.entities, func(i, j int) bool {
		return less(t.entities[i], t.entities[j])
	})
	for position := range t.entities {
		current := EntityIndex(position)
		next := t.indices.Get(t.entities[current])
		for current != next {
			following := t.indices.Get(t.entities[next])
			t.components[next], t.components[following] = t.components[following], t.components[next]
			t.indices.Assign(t.entities[current], current)
			current = next
			next = following
		}
	}
}

// Clear removes every component, keeping allocated capacity.
func (t *DenseTable[C]) Clear() {
	var zero C
	for i := range t.components {
		t.components[i] = zero
	}
	t.entities = t.entities[:0]
	t.components = t.components[:0]
	t.indices.Clear()
}

// Release removes every component and frees the backing buffers.
func (t *DenseTable[C]) Release() {
	t.entities = nil
	t.components = nil
	t.indices.Release()
}
