// cmd/advisory/main.go
// Copyright(c) 2025 advisory contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Command advisory generates two-aircraft traffic advisory exercises and
// prints either the advisory phraseology or the full scenario as JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/atcbasics/advisory/exercise"
	"github.com/atcbasics/advisory/log"
	"github.com/atcbasics/advisory/rand"
)

var (
	count     = flag.Int("n", 1, "number of exercises to generate")
	seed      = flag.Int64("seed", 0, "random seed (0 seeds from the clock)")
	jsonOut   = flag.Bool("json", false, "emit full exercises as JSON rather than just the advisory")
	showScene = flag.Bool("scene", false, "print the aircraft states above each advisory")
	logLevel  = flag.String("loglevel", "info", "logging level: debug, info, warn, error")
	logDir    = flag.String("logdir", "", "log file directory (defaults to the user config dir)")
)

func main() {
	flag.Parse()

	lg := log.New(*logLevel, *logDir)

	g := exercise.NewGenerator(exercise.DefaultConfig(), lg)
	if *seed != 0 {
		g.Rand = rand.MakeSeeded(*seed)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "    ")

	for i := 0; i < *count; i++ {
		ex, err := g.GenerateExercise()
		if err != nil {
			lg.Errorf("exercise generation failed: %v", err)
			fmt.Fprintf(os.Stderr, "advisory: %v\n", err)
			os.Exit(1)
		}

		if *jsonOut {
			if err := enc.Encode(ex); err != nil {
				fmt.Fprintf(os.Stderr, "advisory: %v\n", err)
				os.Exit(1)
			}
			continue
		}

		if *showScene {
			for _, ac := range []*exercise.Aircraft{&ex.Target, &ex.Intruder} {
				fmt.Printf("%-8s %-4s %s hdg %03.0f at %.0f kts, %.0f ft",
					ac.Callsign, ac.Type.ICAO, ac.Rules, ac.Heading, ac.Speed, ac.Level)
				if lc := ac.LevelChange; lc != nil {
					fmt.Printf(", %s to %.0f ft", lc.Direction, lc.TargetLevel)
				}
				fmt.Printf("\n")
			}
		}
		fmt.Println(ex.Solution)
	}
}
