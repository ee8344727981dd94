package core

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/devblok/trisync/settings"
)

// Params is the runtime parameter set backed by settings.ini.
type Params struct {
	VSync             bool
	HotReloadInterval time.Duration

	Clear [4]float32
	Scale float32
	Speed float32
	Tint  [3]float32
}

// NewApp creates the application state around a settings store. The
// store may be empty, parameters then start from compiled-in defaults.
func NewApp(store *settings.Store) *App {
	app := &App{
		store: store,
		start: time.Now(),
	}
	app.lastCheck = app.start
	app.UpdateFromSettings()
	return app
}

// App owns the settings store and the runtime parameters derived from
// it, along with the clocks that drive rotation and hot-reload pacing.
type App struct {
	store  *settings.Store
	params Params

	start     time.Time
	lastCheck time.Time
}

// Params returns the live runtime parameters. The panel mutates them
// through this pointer.
func (a *App) Params() *Params {
	return &a.params
}

// Store exposes the backing settings store.
func (a *App) Store() *settings.Store {
	return a.store
}

// UpdateFromSettings maps the settings document onto the runtime
// parameters, substituting defaults for missing or malformed values.
func (a *App) UpdateFromSettings() {
	s := a.store

	a.params.VSync = s.GetBool(CatRender, KeyVSync, DefaultVSync)
	interval := s.GetInt(CatRender, KeyHotReloadIntervalMs, DefaultHotReloadIntervalMs)
	a.params.HotReloadInterval = time.Duration(interval) * time.Millisecond

	for i, key := range [4]string{KeyClearR, KeyClearG, KeyClearB, KeyClearA} {
		a.params.Clear[i] = float32(s.GetDouble(CatClear, key, DefaultClear[i]))
	}

	a.params.Scale = float32(s.GetDouble(CatTriangle, KeyScale, DefaultScale))
	a.params.Speed = float32(s.GetDouble(CatTriangle, KeyRotationSpeed, DefaultRotationSpeed))
	for i, key := range [3]string{KeyTintR, KeyTintG, KeyTintB} {
		a.params.Tint[i] = float32(s.GetDouble(CatTriangle, key, DefaultTint))
	}
}

// MaybeReload polls the settings file for external changes. The check
// runs at most once per HotReloadInterval unless force is set. Returns
// true when the file was actually re-read.
func (a *App) MaybeReload(force bool) bool {
	now := time.Now()
	if !force && now.Sub(a.lastCheck) < a.params.HotReloadInterval {
		return false
	}
	a.lastCheck = now
	if !a.store.ReloadIfChanged() {
		return false
	}
	a.UpdateFromSettings()
	log.WithField("path", a.store.Path()).Debug("settings reloaded")
	return true
}

// Reload unconditionally re-reads the settings file, used by the
// panel's explicit reload button. Parameters are refreshed even when
// the read fails, so defaults apply for anything now missing.
func (a *App) Reload() {
	if !a.store.Load(a.store.Path()) {
		log.WithField("path", a.store.Path()).Warn("settings reload failed")
	}
	a.UpdateFromSettings()
}

// SaveSettings persists the document, logging when the write fails.
func (a *App) SaveSettings() {
	if !a.store.Save() {
		log.WithField("path", a.store.Path()).Warn("failed to save settings")
	}
}

// Elapsed returns seconds since the app was created.
func (a *App) Elapsed() float32 {
	return float32(time.Since(a.start).Seconds())
}

// FrameState assembles the draw parameters for the current moment.
func (a *App) FrameState() FrameState {
	return FrameState{
		Clear: a.params.Clear,
		Angle: a.Elapsed() * a.params.Speed,
		Scale: a.params.Scale,
		Tint:  a.params.Tint,
	}
}
