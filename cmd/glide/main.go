//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"glide/internal/app"
	"glide/internal/core"
	"glide/internal/noise"
	"glide/internal/stack"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := noise.Sources()[cfg.Noise]
	if !ok {
		log.Fatalf("unknown noise source %q", cfg.Noise)
	}

	sample, err := noise.Bind(factory(cfg.Seed))
	if err != nil {
		log.Fatalf("bind noise source %q: %v", cfg.Noise, err)
	}

	sc := stack.DefaultConfig()
	sc.LayerCount = cfg.Layers
	sc.VerticalSpacing = cfg.Spacing
	sc.Animate = cfg.Animate

	st, err := stack.Build(sc, sample)
	if err != nil {
		log.Fatalf("build layer stack: %v", err)
	}

	page := app.NewPage(sc.LayerCount)
	driver := app.NewDriver(sc, st, sample, page, core.NewMonotonicClock())

	game := app.New(driver, page, cfg.Width, cfg.Height)
	game.OnReseed(func(seed int64) error {
		s, err := noise.Bind(factory(seed))
		if err != nil {
			return err
		}
		return driver.Reseed(s)
	})

	ebiten.SetWindowTitle("glide — " + cfg.Noise)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
