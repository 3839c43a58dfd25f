// Copyright 2021 - 2024 The PeriDEM-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/prashjha/PeriDEM-sub001/state"
)

// RestartBlob is the on-disk restart payload: every per-node field of a
// state.Store plus the step/time it was taken at, echoed in full so a run
// can resume exactly, per spec.md §6's restart requirement.
type RestartBlob struct {
	StepCount int
	Time      float64
	Store     state.Store
}

// WriteRestart encodes store/step/time to path using EncType ("gob", the
// default, or "json"), mirroring gofem's Summary.Save(dirOut, key,
// encType) encoder selection.
func WriteRestart(path, encType string, stepCount int, time float64, s *state.Store) error {
	blob := RestartBlob{StepCount: stepCount, Time: time, Store: *s}
	var buf bytes.Buffer
	switch encType {
	case "json":
		if err := json.NewEncoder(&buf).Encode(&blob); err != nil {
			return chk.Err("out: cannot encode restart blob as json: %v", err)
		}
	case "", "gob":
		if err := gob.NewEncoder(&buf).Encode(&blob); err != nil {
			return chk.Err("out: cannot encode restart blob as gob: %v", err)
		}
	default:
		return chk.Err("out: unknown restart EncType %q", encType)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return chk.Err("out: cannot write restart file %q: %v", path, err)
	}
	return nil
}

// ReadRestart decodes a restart blob previously written by WriteRestart.
func ReadRestart(path, encType string) (stepCount int, time float64, s *state.Store, err error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return 0, 0, nil, chk.Err("out: cannot read restart file %q: %v", path, err)
	}
	var blob RestartBlob
	switch encType {
	case "json":
		if e := json.Unmarshal(b, &blob); e != nil {
			return 0, 0, nil, chk.Err("out: cannot decode restart blob as json: %v", e)
		}
	case "", "gob":
		if e := gob.NewDecoder(bytes.NewReader(b)).Decode(&blob); e != nil {
			return 0, 0, nil, chk.Err("out: cannot decode restart blob as gob: %v", e)
		}
	default:
		return 0, 0, nil, chk.Err("out: unknown restart EncType %q", encType)
	}
	return blob.StepCount, blob.Time, &blob.Store, nil
}
