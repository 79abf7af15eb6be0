package ecs

import "unsafe"

// TableStats is a point-in-time breakdown of a table's occupancy, used by
// the debug inspector and the stress report.
type TableStats struct {
	Live           EntityIndex
	Slots          EntityIndex
	Tombstones     EntityIndex
	ComponentPages int
	IndexPages     int
	ComponentBytes uintptr
}

// AllocatorStats is a point-in-time breakdown of an entity allocator.
type AllocatorStats struct {
	Last       Entity
	FreeRanges int
	FreeIds    EntityIndex
}

func (s *SparseIndex) livePages() int {
	pages := 0
	for _, page := range s.pages {
		if page != nil {
			pages++
		}
	}
	return pages
}

// Stats collects occupancy statistics for the table.
func (t *DenseTable[C]) Stats() TableStats {
	return TableStats{
		Live:           t.Count(),
		Slots:          EntityIndex(len(t.entities)),
		IndexPages:     t.indices.livePages(),
		ComponentBytes: uintptr(cap(t.components)) * unsafe.Sizeof(*new(C)),
	}
}

// Stats collects occupancy statistics for the table.
func (t *StableTable[C]) Stats() TableStats {
	return TableStats{
		Live:           t.Count(),
		Slots:          EntityIndex(len(t.entities)),
		Tombstones:     EntityIndex(len(t.tombstones)),
		ComponentPages: len(t.pages),
		IndexPages:     t.indices.livePages(),
		ComponentBytes: uintptr(len(t.pages)) * uintptr(t.pageSize) * unsafe.Sizeof(*new(C)),
	}
}

// Stats collects occupancy statistics for the allocator.
func (a *EntityAllocator) Stats() AllocatorStats {
	var freeIds EntityIndex
	for _, r := range a.free {
		freeIds += r.Size()
	}
	return AllocatorStats{
		Last:       a.last,
		FreeRanges: len(a.free),
		FreeIds:    freeIds,
	}
}
