package main

import (
	"github.com/gotk3/gotk3/glib"
	"github.com/gotk3/gotk3/gtk"
	log "github.com/sirupsen/logrus"

	"github.com/devblok/trisync/core"
	"github.com/devblok/trisync/settings"
)

const settingsPath = "settings.ini"

// How often the editor polls the file for changes made by the demo or
// another editor, in milliseconds.
const pollIntervalMs = 500

// editor wires GTK widgets to the settings store. refreshing guards
// the change handlers while widget values are being set from the file.
type editor struct {
	store      *settings.Store
	refreshing bool

	vsync    *gtk.Switch
	interval *gtk.SpinButton
	clear    [4]*gtk.SpinButton
	scale    *gtk.SpinButton
	speed    *gtk.SpinButton
	tint     [3]*gtk.SpinButton
}

func buildInterface() (*gtk.Application, error) {
	app, err := gtk.ApplicationNew("org.trisync.trisynced", glib.APPLICATION_FLAGS_NONE)
	if err != nil {
		return nil, err
	}

	app.Connect("startup", func() {
		log.Info("Application starting")
	})

	app.Connect("activate", func() {
		log.Info("Application activating")

		ed := &editor{store: settings.New()}
		if !ed.store.Load(settingsPath) {
			log.WithField("path", settingsPath).Warn("settings.ini not found, starting from defaults")
		}

		win, err := ed.buildWindow()
		if err != nil {
			log.Fatal(err)
		}
		ed.refresh()

		glib.TimeoutAdd(pollIntervalMs, func() bool {
			if ed.store.ReloadIfChanged() {
				log.Debug("settings reloaded from disk")
				ed.refresh()
			}
			return true
		})

		win.SetDefaultSize(420, 520)
		win.ShowAll()
		app.AddWindow(win)
	})

	app.Connect("shutdown", func() {
		log.Info("Application shutting down")
	})
	return app, nil
}

func (ed *editor) buildWindow() (*gtk.Window, error) {
	win, err := gtk.WindowNew(gtk.WINDOW_TOPLEVEL)
	if err != nil {
		return nil, err
	}
	win.SetTitle("trisynced")

	grid, err := gtk.GridNew()
	if err != nil {
		return nil, err
	}
	grid.SetRowSpacing(4)
	grid.SetColumnSpacing(12)
	grid.SetMarginTop(12)
	grid.SetMarginBottom(12)
	grid.SetMarginStart(12)
	grid.SetMarginEnd(12)

	row := 0
	s := ed.store

	addSection(grid, &row, core.CatRender)
	ed.vsync = ed.addSwitch(grid, &row, core.KeyVSync, func(active bool) {
		s.SetBool(core.CatRender, core.KeyVSync, active)
	})
	ed.interval = ed.addSpin(grid, &row, core.KeyHotReloadIntervalMs, 100, 2000, 50, 0, func(v float64) {
		s.SetInt(core.CatRender, core.KeyHotReloadIntervalMs, int(v))
	})

	addSection(grid, &row, core.CatClear)
	for i, key := range [4]string{core.KeyClearR, core.KeyClearG, core.KeyClearB, core.KeyClearA} {
		key := key
		ed.clear[i] = ed.addSpin(grid, &row, key, 0, 1, 0.01, 2, func(v float64) {
			s.SetDouble(core.CatClear, key, v)
		})
	}

	addSection(grid, &row, core.CatTriangle)
	ed.scale = ed.addSpin(grid, &row, core.KeyScale, 0.1, 5, 0.1, 2, func(v float64) {
		s.SetDouble(core.CatTriangle, core.KeyScale, v)
	})
	ed.speed = ed.addSpin(grid, &row, core.KeyRotationSpeed, -10, 10, 0.1, 2, func(v float64) {
		s.SetDouble(core.CatTriangle, core.KeyRotationSpeed, v)
	})
	for i, key := range [3]string{core.KeyTintR, core.KeyTintG, core.KeyTintB} {
		key := key
		ed.tint[i] = ed.addSpin(grid, &row, key, 0, 1, 0.01, 2, func(v float64) {
			s.SetDouble(core.CatTriangle, key, v)
		})
	}

	win.Add(grid)
	return win, nil
}

// refresh pushes the store's current values into the widgets without
// triggering their change handlers.
func (ed *editor) refresh() {
	ed.refreshing = true
	defer func() { ed.refreshing = false }()

	s := ed.store
	ed.vsync.SetActive(s.GetBool(core.CatRender, core.KeyVSync, core.DefaultVSync))
	ed.interval.SetValue(float64(s.GetInt(core.CatRender, core.KeyHotReloadIntervalMs, core.DefaultHotReloadIntervalMs)))

	for i, key := range [4]string{core.KeyClearR, core.KeyClearG, core.KeyClearB, core.KeyClearA} {
		ed.clear[i].SetValue(s.GetDouble(core.CatClear, key, core.DefaultClear[i]))
	}

	ed.scale.SetValue(s.GetDouble(core.CatTriangle, core.KeyScale, core.DefaultScale))
	ed.speed.SetValue(s.GetDouble(core.CatTriangle, core.KeyRotationSpeed, core.DefaultRotationSpeed))
	for i, key := range [3]string{core.KeyTintR, core.KeyTintG, core.KeyTintB} {
		ed.tint[i].SetValue(s.GetDouble(core.CatTriangle, key, core.DefaultTint))
	}
}

func (ed *editor) save() {
	if !ed.store.Save() {
		log.WithField("path", ed.store.Path()).Warn("failed to save settings")
	}
}

func addSection(grid *gtk.Grid, row *int, title string) {
	lbl, err := gtk.LabelNew("")
	if err != nil {
		log.Fatal(err)
	}
	lbl.SetMarkup("<b>" + title + "</b>")
	lbl.SetHAlign(gtk.ALIGN_START)
	lbl.SetMarginTop(8)
	grid.Attach(lbl, 0, *row, 2, 1)
	*row++
}

func addLabel(grid *gtk.Grid, row int, text string) {
	lbl, err := gtk.LabelNew(text)
	if err != nil {
		log.Fatal(err)
	}
	lbl.SetHAlign(gtk.ALIGN_START)
	grid.Attach(lbl, 0, row, 1, 1)
}

func (ed *editor) addSwitch(grid *gtk.Grid, row *int, label string, onChange func(bool)) *gtk.Switch {
	addLabel(grid, *row, label)
	sw, err := gtk.SwitchNew()
	if err != nil {
		log.Fatal(err)
	}
	sw.SetHAlign(gtk.ALIGN_START)
	sw.Connect("notify::active", func() {
		if ed.refreshing {
			return
		}
		onChange(sw.GetActive())
		ed.save()
	})
	grid.Attach(sw, 1, *row, 1, 1)
	*row++
	return sw
}

func (ed *editor) addSpin(grid *gtk.Grid, row *int, label string, lo, hi, step float64, digits uint, onChange func(float64)) *gtk.SpinButton {
	addLabel(grid, *row, label)
	adj, err := gtk.AdjustmentNew(lo, lo, hi, step, step*10, 0)
	if err != nil {
		log.Fatal(err)
	}
	spin, err := gtk.SpinButtonNew(adj, step, digits)
	if err != nil {
		log.Fatal(err)
	}
	spin.Connect("value-changed", func() {
		if ed.refreshing {
			return
		}
		onChange(spin.GetValue())
		ed.save()
	})
	grid.Attach(spin, 1, *row, 1, 1)
	*row++
	return spin
}
