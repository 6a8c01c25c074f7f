// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringlog_test

import (
	"testing"

	"code.hybscloud.com/ringlog"
)

func TestLevelString(t *testing.T) {
	tests := []struct {
		level ringlog.Level
		want  string
	}{
		{ringlog.LevelError, "ERROR"},
		{ringlog.LevelWarn, "WARN"},
		{ringlog.LevelInfo, "INFO"},
		{ringlog.LevelDebug, "DEBUG"},
		{ringlog.LevelTrace, "TRACE"},
		{ringlog.Level(99), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Fatalf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want ringlog.Level
	}{
		{"error", ringlog.LevelError},
		{"WARN", ringlog.LevelWarn},
		{"Warning", ringlog.LevelWarn},
		{"info", ringlog.LevelInfo},
		{"DEBUG", ringlog.LevelDebug},
		{"trace", ringlog.LevelTrace},
		{"nonsense", ringlog.LevelTrace},
	}
	for _, tt := range tests {
		if got := ringlog.ParseLevel(tt.in); got != tt.want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// TestLevelOrdering pins the verbosity ordering the threshold relies on.
func TestLevelOrdering(t *testing.T) {
	if !(ringlog.LevelError < ringlog.LevelWarn &&
		ringlog.LevelWarn < ringlog.LevelInfo &&
		ringlog.LevelInfo < ringlog.LevelDebug &&
		ringlog.LevelDebug < ringlog.LevelTrace) {
		t.Fatal("levels are not ordered from least to most verbose")
	}
}
