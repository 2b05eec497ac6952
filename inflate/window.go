// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package inflate

// window is the sliding history buffer DEFLATE back-references read from: a
// ring of capacity 1<<bits bytes. Grounded on brotli/dict_decoder.go's lazy
// allocation discipline and original_source's window.hpp ring-buffer
// read/write semantics (spec §4.2).
type window struct {
	buf  []byte // lazily allocated, len == capacity once allocated
	i    int    // next write index, 0 <= i < capacity
	size int    // bytes ever written, saturating at capacity
	bits uint   // window_bits this window was reset with
}

// reset (re)initializes the window for the given window_bits. If bits is
// unchanged from a prior reset, the backing allocation (if any) is kept.
func (w *window) reset(bits uint) {
	if w.bits != bits || w.buf == nil {
		w.buf = nil // dropped; reallocated lazily on first write
	}
	w.bits = bits
	w.i = 0
	w.size = 0
}

func (w *window) capacity() int { return 1 << w.bits }

// write appends buf[:n] to the window, retaining only the most recent
// capacity() bytes.
func (w *window) write(buf []byte) {
	n := len(buf)
	if n == 0 {
		return
	}
	capn := w.capacity()
	if w.buf == nil {
		w.buf = make([]byte, capn)
	}
	if n >= capn {
		copy(w.buf, buf[n-capn:])
		w.i = 0
		w.size = capn
		return
	}

	// Wrap-split into one or two pieces.
	first := copy(w.buf[w.i:], buf)
	if first < n {
		copy(w.buf, buf[first:])
	}
	w.i = (w.i + n) % capn
	if w.size += n; w.size > capn {
		w.size = capn
	}
}

// read copies into out the k bytes that start pos bytes before the logical
// write head. The caller must ensure 1 <= pos <= w.size and k <= pos.
func (w *window) read(out []byte, pos, k int) {
	capn := w.capacity()
	start := (w.i - pos + capn) % capn
	first := copy(out[:k], w.buf[start:])
	if first < k {
		copy(out[first:k], w.buf)
	}
}
