//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"shipgen/internal/app"
	"shipgen/internal/ship"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	params, err := cfg.Params()
	if err != nil {
		log.Fatal(err)
	}
	gen, err := ship.New(ship.FromMap(params), ship.WithLogger(log.Printf))
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	game := app.New(gen, cfg.Scale, cfg.Rate, gen.Seed())
	size := gen.Size()

	ebiten.SetWindowTitle("shipgen: " + gen.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+app.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
