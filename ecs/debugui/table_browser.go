package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/kamstrup/intmap"
	"github.com/plus3/entable/ecs"
)

func (tb *TableBrowserComponent) Render(entry *tableEntry) {
	if !imgui.BeginV(fmt.Sprintf("Table: %s", entry.name), nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	// A structural mutation changes the live count; that is cheap to
	// detect and good enough to invalidate the formatted rows.
	if count := entry.table.Count(); count != tb.cachedCount {
		tb.rowCache = intmap.New[ecs.Entity, string](256)
		tb.cachedCount = count
	}

	stats := entry.table.Stats()
	imgui.Text(fmt.Sprintf("Live: %d  Slots: %d  Tombstones: %d", stats.Live, stats.Slots, stats.Tombstones))
	imgui.Text(fmt.Sprintf("Pages: %d component / %d index (%d KiB)",
		stats.ComponentPages, stats.IndexPages, stats.ComponentBytes/1024))

	imgui.InputTextWithHint("##search", "Search...", &tb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		tb.filterText = ""
	}
	imgui.Checkbox("Show tombstones", &tb.showTombstones)

	rows := tb.visibleRows(entry)

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("Rows", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Slot")
		imgui.TableSetupColumn("Entity")
		imgui.TableSetupColumn("Component")
		imgui.TableHeadersRow()

		start := tb.currentPage * tb.maxRowsPerPage
		end := min(start+tb.maxRowsPerPage, len(rows))
		for _, row := range rows[start:end] {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", row.slot))

			imgui.TableNextColumn()
			if row.entity == ecs.NullEntity {
				imgui.Text("tombstone")
				imgui.TableNextColumn()
				imgui.Text("-")
				continue
			}
			selected := tb.hasSelection && tb.selectedEntity == row.entity
			if imgui.SelectableBoolV(fmt.Sprintf("%d", row.entity), selected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				tb.selectedEntity = row.entity
				tb.hasSelection = true
			}

			imgui.TableNextColumn()
			imgui.Text(tb.rowText(entry, row.entity))
		}

		imgui.EndTable()
	}

	if len(rows) > tb.maxRowsPerPage {
		totalPages := (len(rows) + tb.maxRowsPerPage - 1) / tb.maxRowsPerPage
		if tb.currentPage >= totalPages {
			tb.currentPage = totalPages - 1
		}
		imgui.Text(fmt.Sprintf("Page %d / %d (%d rows)", tb.currentPage+1, totalPages, len(rows)))
		imgui.SameLine()
		if imgui.Button("Prev") && tb.currentPage > 0 {
			tb.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && tb.currentPage < totalPages-1 {
			tb.currentPage++
		}
	} else {
		tb.currentPage = 0
		imgui.Text(fmt.Sprintf("Total: %d rows", len(rows)))
	}

	if tb.hasSelection && entry.table.Count() > 0 {
		imgui.Separator()
		tb.renderSelected(entry)
	}

	imgui.End()
}

type tableRow struct {
	slot   ecs.EntityIndex
	entity ecs.Entity
}

func (tb *TableBrowserComponent) visibleRows(entry *tableEntry) []tableRow {
	entities := entry.table.Entities()
	rows := make([]tableRow, 0, len(entities))
	filter := strings.ToLower(tb.filterText)

	for slot, entity := range entities {
		if entity == ecs.NullEntity {
			if !tb.showTombstones {
				continue
			}
		} else if filter != "" {
			id := fmt.Sprintf("%d", entity)
			if !strings.Contains(id, filter) &&
				!strings.Contains(strings.ToLower(tb.rowText(entry, entity)), filter) {
				continue
			}
		}
		rows = append(rows, tableRow{slot: ecs.EntityIndex(slot), entity: entity})
	}
	return rows
}

// rowText returns the formatted component of an entity, memoized until the
// table's live count changes.
func (tb *TableBrowserComponent) rowText(entry *tableEntry, entity ecs.Entity) string {
	if text, ok := tb.rowCache.Get(entity); ok {
		return text
	}
	text := formatComponent(entry.component(entity))
	tb.rowCache.Put(entity, text)
	return text
}

func (tb *TableBrowserComponent) renderSelected(entry *tableEntry) {
	imgui.Text(fmt.Sprintf("Entity %d", tb.selectedEntity))

	found := false
	for _, entity := range entry.table.Entities() {
		if entity == tb.selectedEntity {
			found = true
			break
		}
	}
	if !found {
		imgui.Text("(removed)")
		return
	}

	for _, field := range componentFields(entry.component(tb.selectedEntity)) {
		imgui.BulletText(fmt.Sprintf("%s: %s", field.Name, field.Value))
	}
}
