// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package benchmark compares the ringlog producer path against
// general-purpose structured loggers writing to a discarding sink.
//
// The comparison is deliberately unfair in both directions: ringlog
// renders into a fixed slot and defers delivery to an explicit Flush,
// while the competitors format, encode, and write synchronously. The
// numbers bound what the bounded-pool design buys on the hot path, not
// which library is "faster" in general.
//
// This module is separate from the parent so the core stays free of
// benchmark-only dependencies.
package benchmark
