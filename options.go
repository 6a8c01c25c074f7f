// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringlog

// options holds the construction-time configuration of a Logger.
type options struct {
	level    Level
	callback ReportingCallback
}

func defaultOptions() options {
	return options{level: LevelTrace}
}

// Option configures a Logger at construction.
type Option func(*options)

// WithLevel sets the initial verbosity threshold. Messages tagged with a
// level above the threshold are dropped before a slot is claimed. The
// default is LevelTrace: nothing is filtered.
//
// Example:
//
//	l, err := ringlog.New(256, 1024, ringlog.WithLevel(ringlog.LevelWarn))
func WithLevel(level Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithReportingCallback registers the reporting sink at construction,
// equivalent to calling SetReportingCallback on the new handle before its
// first use.
func WithReportingCallback(fn ReportingCallback) Option {
	return func(o *options) {
		o.callback = fn
	}
}
