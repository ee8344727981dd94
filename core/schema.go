package core

// Categories and keys recognized in settings.ini. The demo panel and
// the trisynced editor both write this schema.
const (
	CatRender   = "Render"
	CatClear    = "Clear"
	CatTriangle = "Triangle"

	KeyVSync               = "VSync"
	KeyHotReloadIntervalMs = "HotReloadIntervalMs"
	KeyClearR              = "R"
	KeyClearG              = "G"
	KeyClearB              = "B"
	KeyClearA              = "A"
	KeyScale               = "Scale"
	KeyRotationSpeed       = "RotationSpeed"
	KeyTintR               = "TintR"
	KeyTintG               = "TintG"
	KeyTintB               = "TintB"
)

// Compiled-in defaults, used whenever a key is missing or malformed.
const (
	DefaultVSync               = true
	DefaultHotReloadIntervalMs = 500
	DefaultScale               = 1.0
	DefaultRotationSpeed       = 1.0
	DefaultTint                = 1.0
)

// DefaultClear is the default RGBA background color.
var DefaultClear = [4]float64{0.05, 0.10, 0.20, 1.0}
