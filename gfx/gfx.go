// Copyright (c) 2026 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package gfx draws the demo scene with the SDL 2D rendering API.
package gfx

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/devblok/trisync/core"
)

// NewRenderer creates a renderer bound to the given window.
// Call Initialise before first use.
func NewRenderer(window *sdl.Window, cfg core.RendererConfiguration) *Renderer {
	return &Renderer{
		window: window,
		width:  cfg.ScreenWidth,
		height: cfg.ScreenHeight,
		vsync:  cfg.VSync,
	}
}

// Renderer implements core.Renderer on top of sdl.Renderer.
type Renderer struct {
	window   *sdl.Window
	renderer *sdl.Renderer

	width  int32
	height int32
	vsync  bool
}

// Initialise creates the accelerated SDL renderer.
func (r *Renderer) Initialise() error {
	return r.createRenderer(r.vsync)
}

func (r *Renderer) createRenderer(vsync bool) error {
	flags := uint32(sdl.RENDERER_ACCELERATED)
	if vsync {
		flags |= sdl.RENDERER_PRESENTVSYNC
	}
	renderer, err := sdl.CreateRenderer(r.window, -1, flags)
	if err != nil {
		return fmt.Errorf("gfx: create renderer: %w", err)
	}
	if err := renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND); err != nil {
		renderer.Destroy()
		return fmt.Errorf("gfx: set blend mode: %w", err)
	}
	r.renderer = renderer
	r.vsync = vsync
	return nil
}

// SetVSync switches vertical sync. SDL only honours the vsync flag at
// renderer creation, so a change re-creates the underlying renderer.
func (r *Renderer) SetVSync(enabled bool) error {
	if r.renderer != nil && r.vsync == enabled {
		return nil
	}
	if r.renderer != nil {
		r.renderer.Destroy()
		r.renderer = nil
	}
	return r.createRenderer(enabled)
}

// Render clears the frame and draws the rotating triangle.
func (r *Renderer) Render(fs core.FrameState) error {
	c := fs.Clear
	if err := r.renderer.SetDrawColor(toByte(c[0]), toByte(c[1]), toByte(c[2]), toByte(c[3])); err != nil {
		return err
	}
	if err := r.renderer.Clear(); err != nil {
		return err
	}
	verts := triangleVertices(fs, r.width, r.height)
	return r.renderer.RenderGeometry(nil, verts[:], nil)
}

// Present flips the back buffer.
func (r *Renderer) Present() {
	r.renderer.Present()
}

// Resize records the new drawable size.
func (r *Renderer) Resize(width, height int32) {
	r.width, r.height = width, height
}

// Destroy releases the SDL renderer.
func (r *Renderer) Destroy() {
	if r.renderer != nil {
		r.renderer.Destroy()
		r.renderer = nil
	}
}

// SDL exposes the live SDL renderer for overlay drawing. The handle is
// only valid for the current frame, SetVSync may replace it.
func (r *Renderer) SDL() *sdl.Renderer {
	return r.renderer
}
