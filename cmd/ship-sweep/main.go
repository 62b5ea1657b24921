package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"time"

	"shipgen/internal/app"
	"shipgen/internal/ship"
)

func main() {
	first := flag.Int64("from", 1, "first seed")
	count := flag.Int("count", 200, "number of consecutive seeds")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	var overrides app.KVList
	flag.Var(&overrides, "set", "generator setting in key=value form (repeatable)")
	flag.Parse()

	params, err := overrides.Map()
	if err != nil {
		log.Fatal(err)
	}
	cfg := ship.FromMap(params)
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	seeds := make([]int64, *count)
	for i := range seeds {
		seeds[i] = *first + int64(i)
	}

	fmt.Printf("Sweeping %d seeds on %dx%d (%d workers)\n", len(seeds), cfg.Width, cfg.Height, *workers)
	start := time.Now()
	results := ship.Sweep(cfg, seeds, *workers)
	elapsed := time.Since(start)

	var floors []int
	degenerate, broken := 0, 0
	for _, res := range results {
		switch {
		case errors.Is(res.Err, ship.ErrDegenerateLayout):
			degenerate++
		case res.Err != nil:
			broken++
			fmt.Printf("seed %d: %v\n", res.Seed, res.Err)
		default:
			floors = append(floors, res.Census[ship.Floor])
		}
	}

	fmt.Printf("Done in %s: %d ok, %d degenerate, %d invalid\n", elapsed.Round(time.Millisecond), len(floors), degenerate, broken)
	if len(floors) == 0 {
		return
	}
	sort.Ints(floors)
	total := 0
	for _, f := range floors {
		total += f
	}
	fmt.Printf("Floor cells: min %d  median %d  mean %.1f  max %d\n",
		floors[0], floors[len(floors)/2], float64(total)/float64(len(floors)), floors[len(floors)-1])
}
