package core

// FrameState carries everything the renderer needs for one frame.
type FrameState struct {
	// Clear is the RGBA background color, channels in 0..1
	Clear [4]float32

	// Angle is the triangle rotation in radians
	Angle float32

	// Scale is the uniform triangle scale factor
	Scale float32

	// Tint multiplies the triangle's vertex colors per channel
	Tint [3]float32
}

// Renderer describes the rendering machinery.
// It's created only with internal values set,
// it needs to be initialised with Initialise() before use.
type Renderer interface {
	// Initialise sets up the configured rendering pipeline
	Initialise() error

	// Render draws one frame described by the given state
	Render(FrameState) error

	// Present flips the finished frame onto the screen
	Present()

	// SetVSync switches vertical sync for subsequent frames
	SetVSync(enabled bool) error

	// Resize adjusts the drawable area
	Resize(width, height int32)

	// Destroy destroys internal members
	Destroy()
}
