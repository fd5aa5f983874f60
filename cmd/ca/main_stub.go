//go:build !ebiten

// Headless build: prints the visible window as ASCII after each step. Build
// with -tags ebiten for the GUI.
package main

import (
	"flag"
	"log"
	"os"

	"infigrid/internal/app"
	"infigrid/internal/core"
	_ "infigrid/internal/sims/briansbrain"
	_ "infigrid/internal/sims/elementary"
	_ "infigrid/pkg/sims/life"
)

func main() {
	cfg := app.NewConfig()
	cfg.TPS = 4
	cfg.Width, cfg.Height = 64, 24
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sim, err := app.NewSim(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if err := app.RunHeadless(os.Stdout, sim, cfg.Frames, core.NewFixedStep(cfg.TPS)); err != nil {
		log.Fatal(err)
	}
}
