// Package debugui provides Dear ImGui windows for inspecting a running
// session and the scheduler that drives it.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
)

// Window renders one ImGui window. It is called between the backend's
// BeginFrame and EndFrame.
type Window interface {
	Render()
}

// WindowFunc adapts a plain function to Window.
type WindowFunc func()

// Render calls f.
func (f WindowFunc) Render() { f() }

// InputState tracks whether Dear ImGui is consuming mouse or keyboard input.
// Game input should be ignored while it is.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay is the set of debug windows drawn over the game.
type Overlay struct {
	windows []Window
	input   InputState
	visible bool
}

// NewOverlay creates a visible overlay with the given windows.
func NewOverlay(windows ...Window) *Overlay {
	return &Overlay{
		windows: windows,
		visible: true,
	}
}

// Add appends a window.
func (o *Overlay) Add(w Window) {
	o.windows = append(o.windows, w)
}

// Toggle flips visibility.
func (o *Overlay) Toggle() {
	o.visible = !o.visible
}

// Visible reports whether windows are drawn.
func (o *Overlay) Visible() bool {
	return o.visible
}

// Input returns the capture state recorded by the last Render.
func (o *Overlay) Input() InputState {
	return o.input
}

// Render updates the input state and draws every window.
func (o *Overlay) Render() {
	if !o.visible {
		o.input = InputState{}
		return
	}

	io := imgui.CurrentIO()
	o.input.WantCaptureMouse = io.WantCaptureMouse()
	o.input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, w := range o.windows {
		w.Render()
	}
}
