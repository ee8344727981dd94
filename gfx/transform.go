// Copyright (c) 2026 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx

import (
	glm "github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/devblok/trisync/core"
)

// Triangle geometry in normalized device coordinates, one corner per
// primary color.
var triangle = [3]struct {
	pos glm.Vec2
	col glm.Vec3
}{
	{glm.Vec2{0.0, 0.5}, glm.Vec3{1, 0, 0}},
	{glm.Vec2{0.5, -0.5}, glm.Vec3{0, 1, 0}},
	{glm.Vec2{-0.5, -0.5}, glm.Vec3{0, 0, 1}},
}

// modelMatrix combines a Z axis rotation with a uniform scale.
func modelMatrix(angle, scale float32) glm.Mat4 {
	return glm.HomogRotate3DZ(angle).Mul4(glm.Scale3D(scale, scale, 1))
}

// ndcToScreen maps normalized device coordinates onto pixels. The unit
// square is fitted to the shorter window edge so the triangle keeps its
// shape when the window is resized.
func ndcToScreen(p glm.Vec2, width, height int32) sdl.FPoint {
	half := float32(min(width, height)) * 0.5
	return sdl.FPoint{
		X: float32(width)*0.5 + p.X()*half,
		Y: float32(height)*0.5 - p.Y()*half,
	}
}

// triangleVertices produces the SDL vertex list for one frame.
func triangleVertices(fs core.FrameState, width, height int32) [3]sdl.Vertex {
	model := modelMatrix(fs.Angle, fs.Scale)

	var out [3]sdl.Vertex
	for i, v := range triangle {
		p := model.Mul4x1(glm.Vec4{v.pos.X(), v.pos.Y(), 0, 1})
		out[i] = sdl.Vertex{
			Position: ndcToScreen(glm.Vec2{p.X(), p.Y()}, width, height),
			Color: sdl.Color{
				R: toByte(v.col.X() * fs.Tint[0]),
				G: toByte(v.col.Y() * fs.Tint[1]),
				B: toByte(v.col.Z() * fs.Tint[2]),
				A: 255,
			},
		}
	}
	return out
}

// toByte clamps a 0..1 channel value to 8 bits.
func toByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
