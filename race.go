// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package ringlog

// RaceEnabled is true when the race detector is active.
// Used by tests to skip concurrent scenarios: slot contents are protected
// by acquire/release ordering on the slot state, which the detector
// cannot observe through atomix operations.
const RaceEnabled = true
