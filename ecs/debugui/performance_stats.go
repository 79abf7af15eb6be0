package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
)

func (ps *PerformanceStatsComponent) Render(tables []NamedTableStats, deltaTime float32) {
	if !imgui.BeginV("Table Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ps.frameHistory[ps.frameIndex] = deltaTime * 1000.0
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames

	var live, slots, tombstones uint64
	var bytes uintptr
	for _, entry := range tables {
		live += uint64(entry.Stats.Live)
		slots += uint64(entry.Stats.Slots)
		tombstones += uint64(entry.Stats.Tombstones)
		bytes += entry.Stats.ComponentBytes
	}

	imgui.Text(fmt.Sprintf("Tables: %d", len(tables)))
	imgui.Text(fmt.Sprintf("Live components: %d (%d slots, %d tombstones)", live, slots, tombstones))
	imgui.Text(fmt.Sprintf("Component memory: %d KiB", bytes/1024))

	var avgFrameTime float32
	for _, ft := range ps.frameHistory {
		avgFrameTime += ft
	}
	avgFrameTime /= float32(ps.historyFrames)
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	if imgui.TreeNodeStr("Table Details") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("TableStats", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Table")
			imgui.TableSetupColumn("Live")
			imgui.TableSetupColumn("Tombstones")
			imgui.TableSetupColumn("Pages")
			imgui.TableHeadersRow()

			for _, entry := range tables {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(entry.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", entry.Stats.Live))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", entry.Stats.Tombstones))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", entry.Stats.ComponentPages))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

// FrameTimer measures wall-clock delta between frames for Render.
type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{lastFrameTime: time.Now()}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
