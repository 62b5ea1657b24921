package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"shipgen/internal/app"
	"shipgen/internal/level"
	"shipgen/internal/ship"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	quiet := flag.Bool("quiet", false, "skip the text preview")
	trace := flag.Bool("trace", false, "log every phase as it runs")
	flag.Parse()

	params, err := cfg.Params()
	if err != nil {
		log.Fatal(err)
	}
	shipCfg := ship.FromMap(params)

	logger := log.New(os.Stderr, "shipgen: ", 0)
	gen, err := ship.New(shipCfg, ship.WithLogger(logger.Printf))
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	for !gen.Done() {
		phase := gen.Phase()
		if err := gen.Step(); err != nil {
			log.Fatalf("generate: %v", err)
		}
		if *trace {
			logger.Printf("%-26s floor=%d", phase, ship.CountCells(gen.Grid())[ship.Floor])
		}
	}
	if err := ship.CheckInvariants(gen.Grid()); err != nil {
		log.Fatalf("generated ship is invalid: %v", err)
	}

	lvl := level.New()
	if err := gen.Emit(lvl, ship.DefaultPrototypes()); err != nil {
		log.Fatal(err)
	}

	if !*quiet {
		fmt.Print(ship.Format(gen.Grid()))
	}
	census := ship.CountCells(gen.Grid())
	spawn, _ := lvl.PlayerPosition()
	fmt.Printf("seed %d  %dx%d  floor %d  wall %d  window %d  void %d  entities %d  player %d,%d\n",
		gen.Seed(), shipCfg.Width, shipCfg.Height,
		census[ship.Floor], census[ship.Wall], census[ship.Window], census[ship.Void],
		lvl.Len(), spawn.X, spawn.Y)
}
