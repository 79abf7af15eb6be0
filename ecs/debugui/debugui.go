// Package debugui provides immediate-mode inspector windows for tables and
// entity allocators using Dear ImGui. Register the tables to watch on an
// Inspector and call Render once per frame between the backend's
// BeginFrame/EndFrame.
package debugui

import (
	"github.com/plus3/entable/ecs"
)

// InspectableTable is the non-generic view of a table the inspector works
// against. Both DenseTable and StableTable satisfy it.
type InspectableTable interface {
	Count() ecs.EntityIndex
	Entities() []ecs.Entity
	Stats() ecs.TableStats
}

type tableEntry struct {
	name      string
	table     InspectableTable
	component func(ecs.Entity) any
	browser   TableBrowserComponent
}

// Inspector owns the debug windows of a set of tables and one allocator.
type Inspector struct {
	tables    []*tableEntry
	allocator *ecs.EntityAllocator
	viewer    AllocatorViewerComponent
	perf      PerformanceStatsComponent
}

// NewInspector creates an inspector watching the given allocator. Pass nil
// to skip the allocator window.
func NewInspector(allocator *ecs.EntityAllocator) *Inspector {
	return &Inspector{
		allocator: allocator,
		perf:      NewPerformanceStatsComponent(120),
	}
}

// RegisterTable adds a table window to the inspector. The component
// snapshot shown for a selected entity is read through the table's Get.
// The component type is inferred from the table's Get method and may also
// be given explicitly:
//
//	debugui.RegisterTable[Position](inspector, "positions", positions)
func RegisterTable[C any](inspector *Inspector, name string, table interface {
	InspectableTable
	Get(ecs.Entity) *C
}) {
	inspector.tables = append(inspector.tables, &tableEntry{
		name:      name,
		table:     table,
		component: func(entity ecs.Entity) any { return table.Get(entity) },
		browser:   NewTableBrowserComponent(64),
	})
}

// Render draws every registered window for the current frame.
func (in *Inspector) Render(deltaTime float32) {
	stats := make([]NamedTableStats, 0, len(in.tables))
	for _, entry := range in.tables {
		entry.browser.Render(entry)
		stats = append(stats, NamedTableStats{Name: entry.name, Stats: entry.table.Stats()})
	}
	if in.allocator != nil {
		in.viewer.Render(in.allocator)
	}
	in.perf.Render(stats, deltaTime)
}
