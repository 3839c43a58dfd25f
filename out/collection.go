// Copyright 2021 - 2024 The PeriDEM-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"
	"fmt"
	"os"

	"github.com/cpmech/gosl/chk"
)

// Collection accumulates (time, file) entries and flushes a ParaView
// .pvd index tying each per-step .vtu file to its simulation time.
type Collection struct {
	entries []collectionEntry
}

type collectionEntry struct {
	time float64
	file string
}

// Add records one timestep's output file. file should be a path relative
// to the .pvd file's own directory, matching how ParaView resolves it.
func (c *Collection) Add(time float64, file string) {
	c.entries = append(c.entries, collectionEntry{time: time, file: file})
}

// WritePVD flushes the accumulated entries to path as a ParaView
// Collection XML file.
func (c *Collection) WritePVD(path string) error {
	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0"?>` + "\n")
	buf.WriteString(`<VTKFile type="Collection" version="0.1">` + "\n")
	buf.WriteString("  <Collection>\n")
	for _, e := range c.entries {
		fmt.Fprintf(&buf, "    <DataSet timestep=\"%.10g\" file=\"%s\"/>\n", e.time, e.file)
	}
	buf.WriteString("  </Collection>\n</VTKFile>\n")

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return chk.Err("out: cannot write pvd collection %q: %v", path, err)
	}
	return nil
}
