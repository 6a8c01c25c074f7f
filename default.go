// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringlog

import "sync/atomic"

// defaultLogger is the process-wide instance managed by Init and CleanUp.
// Exactly one default instance is live at a time; its lifecycle is
// explicit, nothing is created at package load.
var defaultLogger atomic.Pointer[Logger]

// Init creates the process-wide default logger. Returns
// ErrInvalidArgument for zero dimensions and ErrAlreadyInitialized if a
// default instance is already live.
func Init(slotSize, slotCount uint32, opts ...Option) error {
	l, err := New(slotSize, slotCount, opts...)
	if err != nil {
		return err
	}
	if !defaultLogger.CompareAndSwap(nil, l) {
		l.Close()
		return ErrAlreadyInitialized
	}
	return nil
}

// Default returns the live default logger, or nil before Init and after
// CleanUp.
func Default() *Logger {
	return defaultLogger.Load()
}

// Logf logs through the default instance. Returns ErrNotInitialized when
// no default instance is live.
func Logf(level Level, format string, args ...any) error {
	l := defaultLogger.Load()
	if l == nil {
		return ErrNotInitialized
	}
	return l.Logf(level, format, args...)
}

// Errorf logs at LevelError through the default instance.
func Errorf(format string, args ...any) error {
	return Logf(LevelError, format, args...)
}

// Warnf logs at LevelWarn through the default instance.
func Warnf(format string, args ...any) error {
	return Logf(LevelWarn, format, args...)
}

// Infof logs at LevelInfo through the default instance.
func Infof(format string, args ...any) error {
	return Logf(LevelInfo, format, args...)
}

// Debugf logs at LevelDebug through the default instance.
func Debugf(format string, args ...any) error {
	return Logf(LevelDebug, format, args...)
}

// Tracef logs at LevelTrace through the default instance.
func Tracef(format string, args ...any) error {
	return Logf(LevelTrace, format, args...)
}

// Flush drains the default instance. Returns ErrNotInitialized when no
// default instance is live.
func Flush() error {
	l := defaultLogger.Load()
	if l == nil {
		return ErrNotInitialized
	}
	return l.Flush()
}

// SetReportingCallback replaces the default instance's reporting sink.
// No-op when no default instance is live.
func SetReportingCallback(fn ReportingCallback) {
	if l := defaultLogger.Load(); l != nil {
		l.SetReportingCallback(fn)
	}
}

// SetLevel sets the default instance's verbosity threshold. No-op when no
// default instance is live.
func SetLevel(level Level) {
	if l := defaultLogger.Load(); l != nil {
		l.SetLevel(level)
	}
}

// CleanUp closes the process-wide default logger and makes a later Init
// valid again. Pending undrained messages are discarded without invoking
// the callback. Returns ErrNotInitialized when no default instance is
// live.
func CleanUp() error {
	l := defaultLogger.Swap(nil)
	if l == nil {
		return ErrNotInitialized
	}
	return l.Close()
}
