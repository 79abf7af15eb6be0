package ecs

import "sort"

// EntityAllocator hands out entity ids, recycling released ids through a
// sorted list of coalesced free ranges. Id 0 is never issued. The
// allocator is not safe for concurrent use; like the tables, it belongs
// to a single owner.
type EntityAllocator struct {
	last Entity
	free []EntityRange
}

// maxEntity is the largest id the allocator will ever issue.
const maxEntity = NullEntity - 1

// Add returns a fresh or recycled entity id.
func (a *EntityAllocator) Add() Entity {
	if len(a.free) == 0 {
		if a.last >= maxEntity {
			panic("ecs: entity id space exhausted")
		}
		a.last++
		return a.last
	}
	head := &a.free[0]
	entity := head.Begin
	head.Begin++
	if head.Begin == head.End {
		a.free = append(a.free[:0], a.free[1:]...)
	}
	return entity
}

// AddRange returns a contiguous range of count fresh or recycled ids. The
// first free range large enough is consumed from the front; when none
// fits, the id space is extended.
func (a *EntityAllocator) AddRange(count EntityIndex) EntityRange {
	for i := range a.free {
		head := &a.free[i]
		if head.Size() < count {
			continue
		}
		r := EntityRange{Begin: head.Begin, End: head.Begin + Entity(count)}
		head.Begin += Entity(count)
		if head.Begin == head.End {
			a.free = append(a.free[:i], a.free[i+1:]...)
		}
		return r
	}
	if Entity(count) > maxEntity-a.last {
		panic("ecs: entity id space exhausted")
	}
	r := EntityRange{Begin: a.last + 1, End: a.last + 1 + Entity(count)}
	a.last += Entity(count)
	return r
}

// Remove releases an entity id for reuse. Releasing the most recently
// issued id unwinds the id space directly instead of touching the free
// list; the two are not merged back together afterwards.
func (a *EntityAllocator) Remove(entity Entity) {
	if entity == a.last {
		a.last--
		return
	}
	a.insertFree(EntityRange{Begin: entity, End: entity + 1})
}

// RemoveRange releases a contiguous range of ids for reuse.
func (a *EntityAllocator) RemoveRange(r EntityRange) {
	if r.End-1 == a.last {
		a.last = r.Begin - 1
		return
	}
	a.insertFree(r)
}

// insertFree merges r into the free list, keeping it sorted, disjoint and
// non-adjacent.
func (a *EntityAllocator) insertFree(r EntityRange) {
	i := sort.Search(len(a.free), func(i int) bool { return a.free[i].Begin > r.Begin })
	mergeLeft := i > 0 && a.free[i-1].End == r.Begin
	mergeRight := i < len(a.free) && a.free[i].Begin == r.End
	switch {
	case mergeLeft && mergeRight:
		a.free[i-1].End = a.free[i].End
		a.free = append(a.free[:i], a.free[i+1:]...)
	case mergeLeft:
		a.free[i-1].End = r.End
	case mergeRight:
		a.free[i].Begin = r.Begin
	default:
		a.free = append(a.free, EntityRange{})
		copy(a.free[i+1:], a.free[i:])
		a.free[i] = r
	}
}

// FreeRanges returns the allocator's free list, sorted by Begin.
func (a *EntityAllocator) FreeRanges() []EntityRange {
	return a.free
}

// Last returns the largest id ever issued and not unwound.
func (a *EntityAllocator) Last() Entity {
	return a.last
}
