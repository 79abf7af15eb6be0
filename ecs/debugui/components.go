package debugui

import (
	"github.com/kamstrup/intmap"
	"github.com/plus3/entable/ecs"
)

type TableBrowserComponent struct {
	rowCache       *intmap.Map[ecs.Entity, string]
	cachedCount    ecs.EntityIndex
	selectedEntity ecs.Entity
	hasSelection   bool
	filterText     string
	showTombstones bool
	maxRowsPerPage int
	currentPage    int
}

type AllocatorViewerComponent struct {
	showRanges bool
}

type PerformanceStatsComponent struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

// NamedTableStats pairs a registered table's display name with a stats
// snapshot for the aggregate window.
type NamedTableStats struct {
	Name  string
	Stats ecs.TableStats
}

func NewTableBrowserComponent(maxRowsPerPage int) TableBrowserComponent {
	return TableBrowserComponent{
		rowCache:       intmap.New[ecs.Entity, string](256),
		showTombstones: true,
		maxRowsPerPage: maxRowsPerPage,
	}
}

func NewPerformanceStatsComponent(historyFrames int) PerformanceStatsComponent {
	return PerformanceStatsComponent{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}
