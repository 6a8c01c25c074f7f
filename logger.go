// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringlog

import (
	"sync/atomic"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// ReportingCallback receives one fully rendered message per drained slot,
// invoked synchronously on the flushing goroutine. The string is a copy;
// the callback may retain it.
type ReportingCallback func(message string)

// Per-slot states. A slot cycles Empty → Writing → Ready → Empty. The
// producer that claims a logical index moves the slot to Writing, fills
// it, and publishes Ready; the draining goroutine moves Ready slots back
// to Empty after delivery.
const (
	slotEmpty uint64 = iota
	slotWriting
	slotReady
)

// pad is cache line padding to prevent false sharing.
type pad [64]byte

// slotMeta is the control word of one slot plus the fields it protects.
// length and level are plain fields: the producer writes them before the
// release store of slotReady, and the consumer reads them only after an
// acquire load observes slotReady. Padded to a cache line so neighboring
// slots don't share.
type slotMeta struct {
	state  atomix.Uint64
	length uint32
	level  Level
	_      [64 - 16]byte
}

// Logger is a bounded pool of fixed-size message slots written concurrently
// by any number of producer goroutines and drained, in logical order, by a
// single flushing goroutine.
//
// Producers claim logical indices with FAA on the write cursor; the
// physical slot is the logical index modulo the slot count. A claim always
// succeeds: when producers lap the flusher, the stale slot is overwritten
// in place, so under sustained overflow at most Cap() of the most recent
// undrained messages survive. Producers never block and Logf never fails
// once the logger is live.
//
// Messages from the same producer goroutine are delivered in the order
// they were logged; messages from different producers interleave in
// whatever global order their claims produced.
type Logger struct {
	_        pad
	writeCur atomix.Uint64 // Next logical index to claim (FAA, all producers)
	_        pad
	readCur  atomix.Uint64 // Next logical index to drain (flusher only)
	_        pad
	draining atomix.Uint64 // 1 while a Flush walks the pool
	_        pad
	live     atomix.Uint64 // 1 between New and Close
	_        pad
	meta     []slotMeta
	buf      []byte // slotCount*slotSize bytes; slot i at [i*slotSize, (i+1)*slotSize)
	slotSize uint64
	slotCnt  uint64
	level    atomix.Int32
	callback atomic.Pointer[ReportingCallback]
}

// New creates a logger with slotCount message slots of slotSize bytes
// each. Message content is capped at slotSize-1 bytes; longer renders are
// truncated. Returns ErrInvalidArgument if either dimension is zero.
func New(slotSize, slotCount uint32, opts ...Option) (*Logger, error) {
	if slotSize < 1 || slotCount < 1 {
		return nil, ErrInvalidArgument
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	l := &Logger{
		meta:     make([]slotMeta, slotCount),
		buf:      make([]byte, uint64(slotCount)*uint64(slotSize)),
		slotSize: uint64(slotSize),
		slotCnt:  uint64(slotCount),
	}
	l.level.Store(int32(o.level))
	if o.callback != nil {
		cb := o.callback
		l.callback.Store(&cb)
	}
	l.live.StoreRelease(1)
	return l, nil
}

// Logf renders the message into a claimed slot and publishes it for the
// next Flush. Safe for any number of concurrent callers. O(1) beyond
// rendering cost: no blocking wait, no lock, no per-message heap growth on
// the producer path.
//
// Returns ErrNotInitialized after Close. Truncation and pool overflow are
// not errors; a live logger always accepts the message.
func (l *Logger) Logf(level Level, format string, args ...any) error {
	if l.live.LoadAcquire() != 1 {
		return ErrNotInitialized
	}
	if int32(level) > l.level.Load() {
		return nil // Below threshold: dropped before claiming a slot.
	}

	idx := l.writeCur.AddAcqRel(1) - 1
	phys := idx % l.slotCnt
	m := &l.meta[phys]

	// Claim. A slot still Ready or Writing from an earlier cycle is
	// overwritten: pool pressure never blocks or fails a producer, at
	// the cost of the oldest undrained messages.
	m.state.StoreRelaxed(slotWriting)

	start := phys * l.slotSize
	end := start + l.slotSize
	n := appendBounded(l.buf[start:end:end], format, args...)
	m.length = uint32(n)
	m.level = level

	// Publish. Pairs with the acquire load in drain so the consumer
	// never observes partially written content.
	m.state.StoreRelease(slotReady)
	return nil
}

// Errorf logs at LevelError.
func (l *Logger) Errorf(format string, args ...any) error {
	return l.Logf(LevelError, format, args...)
}

// Warnf logs at LevelWarn.
func (l *Logger) Warnf(format string, args ...any) error {
	return l.Logf(LevelWarn, format, args...)
}

// Infof logs at LevelInfo.
func (l *Logger) Infof(format string, args ...any) error {
	return l.Logf(LevelInfo, format, args...)
}

// Debugf logs at LevelDebug.
func (l *Logger) Debugf(format string, args ...any) error {
	return l.Logf(LevelDebug, format, args...)
}

// Tracef logs at LevelTrace.
func (l *Logger) Tracef(format string, args ...any) error {
	return l.Logf(LevelTrace, format, args...)
}

// Flush drains every slot that is Ready, in logical order, delivering each
// message to the reporting callback and reclaiming the slot. It stops at
// the first slot that is not Ready — either nothing is pending or a writer
// is in flight; a message published while the walk is in progress may be
// picked up by the next call. Calling Flush with nothing Ready is a no-op.
//
// Flush is a single-consumer operation. A Flush that finds another drain
// in progress returns ErrWouldBlock instead of waiting. Returns
// ErrNotInitialized after Close.
func (l *Logger) Flush() error {
	if l.live.LoadAcquire() != 1 {
		return ErrNotInitialized
	}
	if !l.draining.CompareAndSwapAcqRel(0, 1) {
		return ErrWouldBlock
	}
	defer l.draining.StoreRelease(0)

	// Close may have won the liveness race while the flag was taken;
	// it spins on the flag, so re-check before touching the pool.
	if l.live.LoadAcquire() != 1 {
		return ErrNotInitialized
	}

	l.drain()
	return nil
}

// drain walks the pool from the read cursor and returns the number of
// slots delivered. Caller holds the draining flag.
func (l *Logger) drain() int {
	cb := l.callback.Load()
	rc := l.readCur.LoadRelaxed()
	drained := 0
	for {
		phys := rc % l.slotCnt
		m := &l.meta[phys]
		if m.state.LoadAcquire() != slotReady {
			break
		}
		if cb != nil {
			start := phys * l.slotSize
			(*cb)(string(l.buf[start : start+uint64(m.length)]))
		}
		m.state.StoreRelease(slotEmpty)
		rc++
		l.readCur.StoreRelaxed(rc)
		drained++
	}
	return drained
}

// SetReportingCallback replaces the reporting sink. A nil callback means
// drained messages are discarded: Flush still reclaims Ready slots, it
// just performs no external call.
func (l *Logger) SetReportingCallback(fn ReportingCallback) {
	if fn == nil {
		l.callback.Store(nil)
		return
	}
	l.callback.Store(&fn)
}

// SetLevel sets the verbosity threshold. Messages tagged with a level
// above the threshold are dropped before a slot is claimed; the Logf call
// still succeeds.
func (l *Logger) SetLevel(level Level) {
	l.level.Store(int32(level))
}

// Level returns the current verbosity threshold.
func (l *Logger) Level() Level {
	return Level(l.level.Load())
}

// Cap returns the number of message slots in the pool.
func (l *Logger) Cap() int {
	return int(l.slotCnt)
}

// SlotSize returns the slot size in bytes. Message content is capped at
// SlotSize()-1 bytes.
func (l *Logger) SlotSize() int {
	return int(l.slotSize)
}

// Close marks the logger dead and discards pending messages without
// invoking the callback. It waits out an in-flight Flush so no delivery
// happens after Close returns. Subsequent operations on the handle return
// ErrNotInitialized; the pool becomes collectible once every in-flight
// Logf has returned and the handle is unreachable.
//
// Close is a single-consumer operation like Flush. Returns
// ErrNotInitialized if the logger is already closed.
func (l *Logger) Close() error {
	if !l.live.CompareAndSwapAcqRel(1, 0) {
		return ErrNotInitialized
	}
	sw := spin.Wait{}
	for l.draining.LoadAcquire() != 0 {
		sw.Once()
	}
	return nil
}
