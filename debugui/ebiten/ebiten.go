// Package ebiten provides Dear ImGui backend integration for the Ebiten game engine.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/debugui"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend and the overlay
// it draws.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
	Overlay *debugui.Overlay
}

// NewImguiBackend creates the backend window. ImGui settings are not
// persisted to disk.
func NewImguiBackend(title string, width, height int, overlay *debugui.Overlay) *ImguiBackend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")

	return &ImguiBackend{
		EbitenBackend: backend,
		Overlay:       overlay,
	}
}

// Frame renders the overlay inside one ImGui frame. Call it from the game's
// Update after the game state has advanced.
func (b *ImguiBackend) Frame() {
	b.BeginFrame()
	b.Overlay.Render()
	b.EndFrame()
}

// WantsKeyboard reports whether ImGui captured the keyboard last frame.
func (b *ImguiBackend) WantsKeyboard() bool {
	return b.Overlay.Visible() && b.Overlay.Input().WantCaptureKeyboard
}
