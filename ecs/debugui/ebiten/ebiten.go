// Package ebiten provides Dear ImGui backend integration for the Ebiten
// game engine, so the table inspector can be drawn over a running game.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend. Call
// BeginFrame before Inspector.Render and EndFrame after; Draw composites
// the inspector windows onto the screen.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}
