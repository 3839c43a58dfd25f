// Copyright 2021 - 2024 The PeriDEM-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/prashjha/PeriDEM-sub001/parallelfor"
	"github.com/prashjha/PeriDEM-sub001/peridem"
)

func main() {
	inputPath := flag.String("i", "", "input JSON file (required)")
	nThreads := flag.Int("nThreads", 0, "number of worker goroutines (0 = runtime default)")
	verbose := flag.Bool("v", true, "print progress messages")
	flag.Parse()

	defer func() {
		if r := recover(); r != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", r)
			os.Exit(1)
		}
	}()

	if *inputPath == "" {
		io.PfRed("ERROR: -i <input.json> is required\n")
		os.Exit(1)
	}
	if *nThreads > 0 {
		parallelfor.SetNThreads(*nThreads)
	}

	io.Pf("PeriDEM-go -- coupled peridynamics/DEM granular-media simulator\n")

	model, err := peridem.NewModel(*inputPath, *verbose)
	if err != nil {
		io.PfRed("ERROR: %v\n", err)
		os.Exit(1)
	}
	if err := model.Run(); err != nil {
		io.PfRed("ERROR: %v\n", err)
		os.Exit(1)
	}
}
