// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ringlog provides a bounded, non-blocking, in-process logging
// core: a fixed pool of fixed-size message slots written concurrently by
// any number of producer goroutines and drained, in order, by a single
// flushing goroutine that hands each completed message to a pluggable
// reporting callback.
//
// # Quick Start
//
// Process-wide instance with explicit lifecycle:
//
//	if err := ringlog.Init(1024, 256); err != nil {
//	    // handle err
//	}
//	ringlog.SetReportingCallback(func(msg string) { fmt.Print(msg) })
//
//	ringlog.Logf(ringlog.LevelInfo, "started worker %d\n", id)
//
//	ringlog.Flush()   // deliver pending messages on this goroutine
//	ringlog.CleanUp() // discard the rest, release the pool
//
// Independent handles via New:
//
//	l, err := ringlog.New(256, 4096, ringlog.WithLevel(ringlog.LevelDebug))
//	if err != nil {
//	    // handle err
//	}
//	defer l.Close()
//
//	l.Debugf("cache miss key=%q", key)
//	l.Flush()
//
// # Design
//
// Producers claim logical slot indices with a fetch-and-add on a
// monotonically increasing write cursor; the physical slot is the logical
// index modulo the pool size. The message is rendered directly into the
// slot's byte region and published by a release store of the slot state,
// which pairs with the flusher's acquire load: the consumer never observes
// partially written content. The flusher walks logical indices in
// ascending order and stops at the first slot that is not Ready, so a
// writer still in flight never stalls anything but its own message.
//
// Because each producer's claims happen in its own program order, messages
// from one goroutine are always delivered in the order they were logged.
// Messages from different goroutines interleave in whatever global order
// their claims produced.
//
// # Overflow
//
// Logf never blocks and never fails from pool pressure. When producers lap
// the flusher, the claim overwrites the stale slot in place: under
// sustained overflow at most Cap() of the most recent undrained messages
// survive. This trades completeness for producer availability; size the
// pool for the expected burst when every message matters.
//
// # Truncation
//
// A slot of s bytes holds at most s-1 bytes of content; longer renders are
// cut at s-1 bytes. Truncation is silent and is not an error — Logf
// succeeds either way.
//
// # Concurrency Contract
//
//   - Logf / Errorf..Tracef: any number of concurrent goroutines.
//   - Flush and Close: at most one goroutine at a time. A Flush that finds
//     another drain in progress fails fast with ErrWouldBlock.
//   - The reporting callback runs synchronously on the flushing goroutine;
//     a slow callback slows Flush but never producers.
//
// Close discards pending messages without invoking the callback and waits
// out an in-flight Flush, so no delivery happens after Close returns.
//
// # Race Detection
//
// The hot path synchronizes through atomix atomic operations with explicit
// memory ordering, which Go's race detector cannot observe. Concurrent
// tests are skipped under the race detector (see RaceEnabled), matching
// the convention of the other code.hybscloud.com lock-free packages.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/atomix] for atomic primitives with
// explicit memory ordering, [code.hybscloud.com/spin] for the CPU pause
// while Close waits out a drain, and [code.hybscloud.com/iox] for semantic
// errors.
package ringlog
