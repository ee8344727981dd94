package main

import (
	"flag"
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"

	"github.com/gobuffalo/envy"
	"github.com/gobuffalo/packr"
	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/devblok/trisync/core"
	"github.com/devblok/trisync/gfx"
	"github.com/devblok/trisync/settings"
	"github.com/devblok/trisync/ui"
)

func init() {
	runtime.LockOSThread()
}

// The settings file lives next to the process, the panel and the
// trisynced editor both write the same file.
const settingsPath = "settings.ini"

// Profiling
var (
	cpuProfile   = flag.String("cpuprof", "", "Profile CPU usage to file")
	memProfile   = flag.String("memprof", "", "Profile memory usage into a file")
	traceProfile = flag.String("trace", "", "Trace output for profiling")
)

var configuration = core.Configuration{
	Time: core.TimeConfiguration{
		FramesPerSecond: 240,
	},
	Renderer: core.RendererConfiguration{
		ScreenWidth:  1280,
		ScreenHeight: 720,
		WindowTitle:  "trisync - triangle + INI sync",
	},
}

var assets = packr.NewBox("./assets")

func newWindow() *sdl.Window {
	window, err := sdl.CreateWindow(configuration.Renderer.WindowTitle,
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		configuration.Renderer.ScreenWidth,
		configuration.Renderer.ScreenHeight,
		sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE)
	if err != nil {
		panic(err)
	}
	return window
}

// loadSettings opens settings.ini, seeding it from the embedded
// template on first run.
func loadSettings() *settings.Store {
	store := settings.New()
	if store.Load(settingsPath) {
		return store
	}

	template, err := assets.FindString("settings.ini")
	if err != nil {
		log.WithError(err).Warn("default settings template missing")
		return store
	}
	if err := os.WriteFile(settingsPath, []byte(template), 0644); err != nil {
		log.WithError(err).Warn("could not seed settings.ini")
		return store
	}
	if !store.Load(settingsPath) {
		log.Warn("could not load the seeded settings.ini")
	} else {
		log.WithField("path", settingsPath).Info("seeded default settings")
	}
	return store
}

func main() {
	flag.Parse()

	if level, err := log.ParseLevel(envy.Get("TRISYNC_LOG_LEVEL", "info")); err == nil {
		log.SetLevel(level)
	}

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			panic(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer pprof.StopCPUProfile()
	}

	if *traceProfile != "" {
		f, err := os.Create(*traceProfile)
		if err != nil {
			panic(err)
		}
		if err := trace.Start(f); err != nil {
			panic(err)
		}
		defer trace.Stop()
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		panic(err)
	}
	defer sdl.Quit()

	sdlWindow := newWindow()
	defer sdlWindow.Destroy()

	app := core.NewApp(loadSettings())
	configuration.Renderer.VSync = app.Params().VSync

	renderer := gfx.NewRenderer(sdlWindow, configuration.Renderer)
	if err := renderer.Initialise(); err != nil {
		panic(err)
	}
	defer renderer.Destroy()

	panel := ui.New()

	time := core.NewTime(configuration.Time)
	exitC := make(chan struct{}, 2)

EventLoop:
	for {
		select {
		case <-exitC:
			log.Info("Event loop exited")
			break EventLoop
		case <-time.FpsTicker().C:
			forceReload := false

			var event sdl.Event
			for event = sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
				switch et := event.(type) {
				case *sdl.KeyboardEvent:
					if et.Type != sdl.KEYDOWN || et.Repeat != 0 {
						continue
					}
					switch et.Keysym.Sym {
					case sdl.K_ESCAPE:
						exitC <- struct{}{}
						continue EventLoop
					case sdl.K_r:
						forceReload = true
					}
				case *sdl.WindowEvent:
					if et.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
						renderer.Resize(et.Data1, et.Data2)
					}
				case *sdl.QuitEvent:
					exitC <- struct{}{}
					continue EventLoop
				}
			}

			app.MaybeReload(forceReload)

			if err := renderer.SetVSync(app.Params().VSync); err != nil {
				log.WithError(err).Error("vsync switch failed")
			}
			if err := renderer.Render(app.FrameState()); err != nil {
				log.WithError(err).Error("render failed")
			}

			mouseX, mouseY, buttons := sdl.GetMouseState()
			panel.BeginFrame(renderer.SDL(), mouseX, mouseY, buttons&sdl.ButtonLMask() != 0)
			drawSettingsPanel(panel, app)

			renderer.Present()
		}
	}

	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err != nil {
			panic(err)
		}
		if err := pprof.WriteHeapProfile(f); err != nil {
			panic(err)
		}
	}
}
