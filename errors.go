// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringlog

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrInvalidArgument indicates that New or Init was called with a slot size
// or slot count of zero. The pool needs at least one slot of at least one
// byte to hold a message.
var ErrInvalidArgument = errors.New("ringlog: invalid argument")

// ErrAlreadyInitialized indicates that Init was called while the
// process-wide default logger is already live. Call CleanUp first, or use
// New for an independent handle.
var ErrAlreadyInitialized = errors.New("ringlog: already initialized")

// ErrNotInitialized indicates an operation on a logger that is not live:
// the default instance before Init or after CleanUp, or a handle after
// Close.
var ErrNotInitialized = errors.New("ringlog: not initialized")

// ErrWouldBlock indicates that Flush found another drain in progress and
// returned instead of waiting.
//
// Flush and Close are single-consumer operations: the contract is that at
// most one goroutine drains at a time. Rather than corrupt the read cursor
// when the contract is violated, the losing Flush fails fast with this
// error. It is a control flow signal, not a failure.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
var ErrWouldBlock = iox.ErrWouldBlock

// IsWouldBlock reports whether err indicates a drain already in progress.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Returns true for nil or ErrWouldBlock.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
