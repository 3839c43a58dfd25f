//go:build !peridem_debug

// Copyright 2021 - 2024 The PeriDEM-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package state

// debugChecksEnabled gates the index-checked accessors; off by default so
// the hot force-evaluation loops pay no bounds-check-twice cost in
// release builds.
const debugChecksEnabled = false
