// Copyright 2021 - 2024 The PeriDEM-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
)

const sampleJSON = `{
  "Model": {"Dimension": 2, "Final_Time": 1e-4, "Num_Steps": 1000, "Time_Scheme": "central_difference"},
  "Material": [{"Zone_Id": 0, "Kind": "PMBBond", "Density": 1200, "Horizon": 0.001, "Bulk_Modulus": 2e6, "Critical_Strain": 0.01}],
  "Neighbor": {"Update_Criterion": "simple_all", "Update_Interval": 10}
}`

func TestReadInputValid(tst *testing.T) {
	chk.PrintTitle("inp.ReadInput valid file")
	dir := tst.TempDir()
	path := filepath.Join(dir, "input.json")
	if err := os.WriteFile(path, []byte(sampleJSON), 0644); err != nil {
		tst.Fatalf("WriteFile: %v", err)
	}
	in, err := ReadInput(path)
	if err != nil {
		tst.Fatalf("ReadInput: %v", err)
	}
	if in.Model.Dimension != 2 {
		tst.Fatalf("expected dimension 2, got %d", in.Model.Dimension)
	}
	if len(in.Material) != 1 || in.Material[0].Kind != "PMBBond" {
		tst.Fatalf("unexpected material zones: %+v", in.Material)
	}
}

func TestReadInputRejectsUnknownMaterialKind(tst *testing.T) {
	chk.PrintTitle("inp.ReadInput rejects unknown material kind")
	dir := tst.TempDir()
	path := filepath.Join(dir, "input.json")
	bad := `{"Model": {"Dimension": 2, "Num_Steps": 10}, "Material": [{"Zone_Id": 0, "Kind": "NotAThing"}]}`
	if err := os.WriteFile(path, []byte(bad), 0644); err != nil {
		tst.Fatalf("WriteFile: %v", err)
	}
	if _, err := ReadInput(path); err == nil {
		tst.Fatal("expected an error for unknown material kind")
	}
}

func TestReadInputMissingFile(tst *testing.T) {
	chk.PrintTitle("inp.ReadInput missing file")
	if _, err := ReadInput("/nonexistent/path/input.json"); err == nil {
		tst.Fatal("expected an error for a missing file")
	}
}
