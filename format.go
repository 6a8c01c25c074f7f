// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringlog

import "fmt"

// appendBounded renders format+args into dst and returns the content
// length. The result is truncated to len(dst)-1 bytes and the byte after
// the content is set to zero, so the rendered text always leaves the final
// slot byte as a terminator. Rendering cannot fail; truncation is a
// defined, silent outcome.
//
// dst must be a full slice expression (len == cap) over the slot's byte
// region. fmt appends in place while the output fits; when it spills past
// the slot capacity it reallocates instead of scribbling into the
// neighboring slot, and the in-bounds prefix is copied back.
func appendBounded(dst []byte, format string, args ...any) int {
	limit := len(dst) - 1
	var out []byte
	if len(args) == 0 {
		// No arguments: skip the fmt state machine entirely.
		out = append(dst[:0], format...)
	} else {
		out = fmt.Appendf(dst[:0], format, args...)
	}
	n := min(len(out), limit)
	if n > 0 && &out[0] != &dst[0] {
		copy(dst, out[:n])
	}
	dst[n] = 0
	return n
}
