// Copyright 2021 - 2024 The PeriDEM-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parallelfor implements the one concurrency primitive the
// simulation core needs: a parallel-for over a contiguous integer range.
// There is no task graph and no futures — each call blocks until every
// worker has finished its chunk, matching spec.md §5's "no implicit global
// state survives a parallel-for" guidance. The worker-count knob matches
// parallelUtil.h's NThreads; taskflow's for_each_index call sites (e.g. in
// particleFLoading.cpp) become plain goroutines over contiguous chunks.
package parallelfor

import (
	"runtime"
	"sync"
)

// nThreads is the worker count Range splits its range across (capped at
// n); it starts at GOMAXPROCS and is overridden by SetNThreads (e.g. from
// the -nThreads CLI flag).
var nThreads = runtime.GOMAXPROCS(0)

// SetNThreads sets the default worker count for subsequent Range calls.
func SetNThreads(n int) {
	if n > 0 {
		nThreads = n
	}
}

// NThreads returns the worker count Range uses by default.
func NThreads() int { return nThreads }

// Range calls worker(i) for every i in [0,n), splitting the range into
// NThreads() contiguous chunks run on separate goroutines, and blocks until
// all of them finish. Each worker touches only indices in its own chunk, so
// results are independent of the worker count as long as worker itself only
// writes to index-owned state (spec.md §5).
func Range(n int, worker func(i int)) {
	if n <= 0 {
		return
	}
	workers := nThreads
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		for i := 0; i < n; i++ {
			worker(i)
		}
		return
	}

	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		if lo >= hi {
			continue
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				worker(i)
			}
		}(lo, hi)
	}
	wg.Wait()
}
