package main

import (
	"flag"
	"log"

	"shipgen/internal/app"
	"shipgen/internal/ship"
	"shipgen/internal/tty"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	params, err := cfg.Params()
	if err != nil {
		log.Fatal(err)
	}
	gen, err := ship.New(ship.FromMap(params))
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := tty.Run(gen); err != nil {
		log.Fatal(err)
	}
}
