package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/entable/ecs"
)

func (av *AllocatorViewerComponent) Render(allocator *ecs.EntityAllocator) {
	if !imgui.BeginV("Entity Allocator", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := allocator.Stats()
	imgui.Text(fmt.Sprintf("Last issued id: %d", stats.Last))
	imgui.Text(fmt.Sprintf("Free ids: %d in %d ranges", stats.FreeIds, stats.FreeRanges))

	imgui.Checkbox("Show free ranges", &av.showRanges)
	if av.showRanges {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
		if imgui.BeginTableV("FreeRanges", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Begin")
			imgui.TableSetupColumn("End")
			imgui.TableSetupColumn("Size")
			imgui.TableHeadersRow()

			for _, r := range allocator.FreeRanges() {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", r.Begin))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", r.End))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", r.Size()))
			}

			imgui.EndTable()
		}
	}

	imgui.End()
}
