// Copyright (c) 2026 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package ui is a small immediate mode widget toolkit drawn directly
// with the SDL 2D renderer. Widget state lives in the caller's
// variables; every value widget returns true when it changed its
// binding this frame.
package ui

import (
	"fmt"

	sdlgfx "github.com/veandco/go-sdl2/gfx"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	rowHeight = 22
	pad       = 8
	boxSize   = 14
	textOffY  = 7
)

var (
	colPanel   = sdl.Color{R: 28, G: 30, B: 34, A: 230}
	colTitle   = sdl.Color{R: 52, G: 60, B: 72, A: 255}
	colHeader  = sdl.Color{R: 44, G: 50, B: 60, A: 255}
	colWidget  = sdl.Color{R: 70, G: 76, B: 88, A: 255}
	colAccent  = sdl.Color{R: 120, G: 160, B: 230, A: 255}
	colBorder  = sdl.Color{R: 90, G: 96, B: 108, A: 255}
	colText    = sdl.Color{R: 235, G: 235, B: 235, A: 255}
	colTextDim = sdl.Color{R: 160, G: 160, B: 160, A: 255}
)

// New creates an empty UI context.
func New() *Context {
	return &Context{open: make(map[string]bool)}
}

// Context keeps the little state immediate mode widgets need between
// frames: mouse input, the widget currently being dragged and which
// headers are collapsed.
type Context struct {
	r *sdl.Renderer

	mouseX, mouseY int32
	mouseDown      bool
	mousePressed   bool
	wasDown        bool

	active string
	open   map[string]bool

	panelX, panelY, panelW int32
	cursorY                int32
}

// BeginFrame feeds this frame's input state. The renderer handle is
// taken per frame because the gfx layer may re-create it.
func (c *Context) BeginFrame(r *sdl.Renderer, mouseX, mouseY int32, mouseDown bool) {
	c.r = r
	c.mouseX, c.mouseY = mouseX, mouseY
	c.mousePressed = mouseDown && !c.wasDown
	c.mouseDown = mouseDown
	c.wasDown = mouseDown
	if !mouseDown {
		c.active = ""
	}
}

// Begin opens a panel at the given position and width. Widgets stack
// vertically until End.
func (c *Context) Begin(title string, x, y, w int32) {
	c.panelX, c.panelY, c.panelW = x, y, w
	c.cursorY = y

	c.fillRect(x, y, w, rowHeight, colTitle)
	c.text(x+pad, y+textOffY, title, colText)
	c.cursorY += rowHeight
}

// End closes the panel and draws its border.
func (c *Context) End() {
	c.setColor(colBorder)
	c.r.DrawRect(&sdl.Rect{X: c.panelX, Y: c.panelY, W: c.panelW, H: c.cursorY - c.panelY})
}

// Header draws a collapsing section header and reports whether the
// section body should be drawn. Sections start open.
func (c *Context) Header(label string) bool {
	r := c.row()
	open, seen := c.open[label]
	if !seen {
		open = true
	}
	if c.clicked(r) {
		open = !open
	}
	c.open[label] = open

	c.fillRect(r.X, r.Y, r.W, r.H, colHeader)
	marker := "-"
	if !open {
		marker = "+"
	}
	c.text(r.X+pad, r.Y+textOffY, marker+" "+label, colText)
	return open
}

// Checkbox draws a labelled checkbox bound to v.
func (c *Context) Checkbox(label string, v *bool) bool {
	r := c.row()
	changed := false
	if c.clicked(r) {
		*v = !*v
		changed = true
	}

	box := sdl.Rect{X: r.X + pad, Y: r.Y + (rowHeight-boxSize)/2, W: boxSize, H: boxSize}
	c.fillRect(box.X, box.Y, box.W, box.H, colWidget)
	if *v {
		c.fillRect(box.X+3, box.Y+3, box.W-6, box.H-6, colAccent)
	}
	c.text(box.X+box.W+pad, r.Y+textOffY, label, colText)
	return changed
}

// SliderFloat draws a horizontal slider for v in [lo,hi]. Dragging
// updates the value continuously.
func (c *Context) SliderFloat(label string, v *float32, lo, hi float32) bool {
	return c.slider("slider:"+label, fmt.Sprintf("%s %.2f", label, *v), v, lo, hi)
}

// SliderInt is SliderFloat for integer values.
func (c *Context) SliderInt(label string, v *int, lo, hi int) bool {
	f := float32(*v)
	if !c.slider("slider:"+label, fmt.Sprintf("%s %d", label, *v), &f, float32(lo), float32(hi)) {
		return false
	}
	next := int(f + 0.5)
	if next == *v {
		return false
	}
	*v = next
	return true
}

func (c *Context) slider(id, label string, v *float32, lo, hi float32) bool {
	r := c.row()
	track := sdl.Rect{
		X: r.X + pad,
		Y: r.Y + 4,
		W: c.panelW/2 - 2*pad,
		H: rowHeight - 8,
	}

	if c.mousePressed && pointIn(track, c.mouseX, c.mouseY) {
		c.active = id
	}
	changed := false
	if c.active == id && c.mouseDown {
		next := sliderValue(c.mouseX, track, lo, hi)
		if next != *v {
			*v = next
			changed = true
		}
	}

	c.fillRect(track.X, track.Y, track.W, track.H, colWidget)
	knob := sliderKnob(*v, track, lo, hi)
	c.fillRect(knob-3, track.Y, 6, track.H, colAccent)
	c.text(track.X+track.W+pad, r.Y+textOffY, label, colText)
	return changed
}

// ColorEdit3 edits an RGB triple, one slider per channel plus a
// preview swatch.
func (c *Context) ColorEdit3(label string, rgb *[3]float32) bool {
	changed := false
	for i, ch := range [3]string{"R", "G", "B"} {
		if c.SliderFloat(label+"."+ch, &rgb[i], 0, 1) {
			changed = true
		}
	}
	c.swatch(rgb[0], rgb[1], rgb[2])
	return changed
}

// ColorEdit4 edits an RGBA quad the same way.
func (c *Context) ColorEdit4(label string, rgba *[4]float32) bool {
	changed := false
	for i, ch := range [4]string{"R", "G", "B", "A"} {
		if c.SliderFloat(label+"."+ch, &rgba[i], 0, 1) {
			changed = true
		}
	}
	c.swatch(rgba[0], rgba[1], rgba[2])
	return changed
}

// Button draws a full-width button, true on click.
func (c *Context) Button(label string) bool {
	r := c.row()
	b := sdl.Rect{X: r.X + pad, Y: r.Y + 2, W: c.panelW - 2*pad, H: rowHeight - 4}
	hot := pointIn(b, c.mouseX, c.mouseY)

	col := colWidget
	if hot {
		col = colAccent
	}
	c.fillRect(b.X, b.Y, b.W, b.H, col)
	c.text(b.X+pad, r.Y+textOffY, label, colText)
	return hot && c.mousePressed
}

// Text draws a plain label row.
func (c *Context) Text(s string) {
	r := c.row()
	c.text(r.X+pad, r.Y+textOffY, s, colTextDim)
}

// row reserves the next widget row and paints its background.
func (c *Context) row() sdl.Rect {
	r := sdl.Rect{X: c.panelX, Y: c.cursorY, W: c.panelW, H: rowHeight}
	c.fillRect(r.X, r.Y, r.W, r.H, colPanel)
	c.cursorY += rowHeight
	return r
}

func (c *Context) swatch(r, g, b float32) {
	row := c.row()
	c.fillRect(row.X+pad, row.Y+2, row.W-2*pad, row.H-4, sdl.Color{
		R: channelByte(r), G: channelByte(g), B: channelByte(b), A: 255,
	})
}

func (c *Context) clicked(r sdl.Rect) bool {
	return c.mousePressed && pointIn(r, c.mouseX, c.mouseY)
}

func (c *Context) setColor(col sdl.Color) {
	c.r.SetDrawColor(col.R, col.G, col.B, col.A)
}

func (c *Context) fillRect(x, y, w, h int32, col sdl.Color) {
	c.setColor(col)
	c.r.FillRect(&sdl.Rect{X: x, Y: y, W: w, H: h})
}

func (c *Context) text(x, y int32, s string, col sdl.Color) {
	sdlgfx.StringRGBA(c.r, x, y, s, col.R, col.G, col.B, col.A)
}
