package main

import (
	"os"

	"github.com/gobuffalo/envy"
	"github.com/gotk3/gotk3/gtk"
	log "github.com/sirupsen/logrus"
)

func init() {
	gtk.Init(&os.Args)
}

func main() {
	if level, err := log.ParseLevel(envy.Get("TRISYNC_LOG_LEVEL", "info")); err == nil {
		log.SetLevel(level)
	}

	app, err := buildInterface()
	if err != nil {
		log.Fatal(err)
	}
	os.Exit(app.Run(os.Args))
}
