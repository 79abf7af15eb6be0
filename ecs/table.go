package ecs

import "iter"

// Table is the operation surface shared by DenseTable and StableTable.
// Systems hold the concrete type for hot paths; the interface exists for
// code that manages heterogeneous collections of tables, like the debug
// inspector or bulk clean-up.
type Table[C any] interface {
	// Count returns the number of live components in the table.
	Count() EntityIndex
	// Exists reports whether the entity has a component in the table.
	Exists(entity Entity) bool

	// Add attaches a component to an entity that must not already be
	// present, returning a pointer to the stored component.
	Add(entity Entity, component C) *C
	// TryAdd attaches a component, overwriting the previous value when
	// the entity is already present.
	TryAdd(entity Entity, component C) *C
	// TryAddWith passes the entity's component to update, inserting a
	// zero-valued component first when the entity is absent. The
	// callback must leave the component fully initialized.
	TryAddWith(entity Entity, update func(*C)) *C
	// AddRange attaches a copy of component to every entity of the
	// range; none of them may already be present.
	AddRange(r EntityRange, component C)

	// Remove detaches the component of an entity that must be present.
	Remove(entity Entity)
	// TryRemove detaches the entity's component if present, reporting
	// whether a removal happened.
	TryRemove(entity Entity) bool
	// RemoveRange detaches the components of the range's entities.
	RemoveRange(r EntityRange)
	// Extract removes the component of an entity that must be present
	// and returns its value.
	Extract(entity Entity) C

	// Get returns the component of an entity that must be present.
	Get(entity Entity) *C
	// UnstableIndex returns the entity's current index in the table, or
	// NullIndex if absent. The index is invalidated by any mutation.
	UnstableIndex(entity Entity) EntityIndex
	// At returns the component stored at an index previously obtained
	// from UnstableIndex.
	At(index EntityIndex) *C

	// Entities returns the table's backing entity list. Stable tables
	// keep NullEntity tombstones in it.
	Entities() []Entity
	// All iterates live entities and their components in table order.
	All() iter.Seq2[Entity, *C]
	// Values iterates live components in table order.
	Values() iter.Seq[*C]
	// Keys iterates live entities in table order.
	Keys() iter.Seq[Entity]

	// Sort reorders the table so that entities are totally ordered by
	// less, keeping components and indices aligned.
	Sort(less func(a, b Entity) bool)

	// Clear removes every component, keeping allocated capacity.
	Clear()
	// Release removes every component and frees the backing buffers.
	Release()
}

var (
	_ Table[int] = (*DenseTable[int])(nil)
	_ Table[int] = (*StableTable[int])(nil)
)
