// Copyright (c) 2026 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package ui

import "github.com/veandco/go-sdl2/sdl"

// pointIn reports whether the point lies inside the rectangle.
func pointIn(r sdl.Rect, x, y int32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// sliderValue maps a mouse position on the track to a value in [lo,hi].
func sliderValue(mouseX int32, track sdl.Rect, lo, hi float32) float32 {
	if track.W <= 1 {
		return lo
	}
	t := float32(mouseX-track.X) / float32(track.W-1)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return lo + t*(hi-lo)
}

// sliderKnob maps a value back to its knob position on the track.
func sliderKnob(v float32, track sdl.Rect, lo, hi float32) int32 {
	if hi == lo {
		return track.X
	}
	t := (v - lo) / (hi - lo)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return track.X + int32(t*float32(track.W-1)+0.5)
}

// channelByte converts a 0..1 channel value to 8 bits.
func channelByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
