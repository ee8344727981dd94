package main

import (
	"time"

	"github.com/devblok/trisync/core"
	"github.com/devblok/trisync/ui"
)

// drawSettingsPanel renders the settings overlay and persists every
// edit straight back to settings.ini.
func drawSettingsPanel(panel *ui.Context, app *core.App) {
	p := app.Params()
	store := app.Store()
	changed := false

	panel.Begin("Settings (INI <-> GUI)", 16, 16, 360)

	if panel.Header("Render") {
		if panel.Checkbox("VSync", &p.VSync) {
			store.SetBool(core.CatRender, core.KeyVSync, p.VSync)
			changed = true
		}
		interval := int(p.HotReloadInterval / time.Millisecond)
		if panel.SliderInt("HotReloadIntervalMs", &interval, 100, 2000) {
			p.HotReloadInterval = time.Duration(interval) * time.Millisecond
			store.SetInt(core.CatRender, core.KeyHotReloadIntervalMs, interval)
			changed = true
		}
	}

	if panel.Header("Clear") {
		if panel.ColorEdit4("Clear", &p.Clear) {
			store.SetDouble(core.CatClear, core.KeyClearR, float64(p.Clear[0]))
			store.SetDouble(core.CatClear, core.KeyClearG, float64(p.Clear[1]))
			store.SetDouble(core.CatClear, core.KeyClearB, float64(p.Clear[2]))
			store.SetDouble(core.CatClear, core.KeyClearA, float64(p.Clear[3]))
			changed = true
		}
	}

	if panel.Header("Triangle") {
		if panel.SliderFloat("Scale", &p.Scale, 0.1, 5.0) {
			store.SetDouble(core.CatTriangle, core.KeyScale, float64(p.Scale))
			changed = true
		}
		if panel.SliderFloat("RotationSpeed", &p.Speed, -10.0, 10.0) {
			store.SetDouble(core.CatTriangle, core.KeyRotationSpeed, float64(p.Speed))
			changed = true
		}
		if panel.ColorEdit3("Tint", &p.Tint) {
			store.SetDouble(core.CatTriangle, core.KeyTintR, float64(p.Tint[0]))
			store.SetDouble(core.CatTriangle, core.KeyTintG, float64(p.Tint[1]))
			store.SetDouble(core.CatTriangle, core.KeyTintB, float64(p.Tint[2]))
			changed = true
		}
	}

	if panel.Button("Save to settings.ini") {
		changed = true
	}
	if panel.Button("Reload from settings.ini") {
		app.Reload()
	}
	panel.Text("Hint: R key or external edit reloads too")

	panel.End()

	if changed {
		app.SaveSettings()
	}
}
