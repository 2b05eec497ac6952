// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package inflate

import "io"

// Reader adapts a Stream to io.Reader, pulling compressed bytes from an
// underlying source as needed. Grounded on flate/reader.go's Reader: same
// read-ahead buffer and InputOffset/OutputOffset accounting, generalized from
// the teacher's single always-blocking-till-EOF decode loop to one that
// drives Stream.Write until either buf fills or decoding finishes.
type Reader struct {
	s   *Stream
	r   io.Reader
	err error

	in []byte // read-ahead buffer for r
	st State
}

// NewReader returns a Reader that decodes r as a raw DEFLATE stream using the
// maximum 32 KiB window.
func NewReader(r io.Reader) (*Reader, error) {
	return NewReaderWindowBits(r, 15)
}

// NewReaderWindowBits is like NewReader but lets the caller configure a
// smaller history window, trading memory for an ErrExhausted risk if the
// stream in fact used a larger one (spec §4.2, §6).
func NewReaderWindowBits(r io.Reader, windowBits uint) (*Reader, error) {
	s, err := NewStream(windowBits)
	if err != nil {
		return nil, err
	}
	return &Reader{s: s, r: r, in: make([]byte, 32*1024)}, nil
}

// Reset reconfigures zr to decode a fresh stream read from r, reusing zr's
// internal buffers.
func (zr *Reader) Reset(r io.Reader) error {
	if err := zr.s.Reset(zr.s.win.bits); err != nil {
		return err
	}
	zr.r = r
	zr.err = nil
	zr.st = State{}
	return nil
}

func (zr *Reader) Read(buf []byte) (int, error) {
	if zr.err != nil {
		return 0, zr.err
	}
	defer errRecover(&zr.err)

	zr.st.Out = buf
	for len(zr.st.Out) > 0 && zr.s.state != stateDone {
		if len(zr.st.In) == 0 {
			nr, rerr := zr.r.Read(zr.in)
			zr.st.In = zr.in[:nr]
			if nr == 0 {
				if rerr == nil {
					rerr = io.ErrNoProgress
				} else if rerr == io.EOF {
					rerr = io.ErrUnexpectedEOF
				}
				if werr := zr.s.Write(&zr.st); werr != nil {
					zr.err = werr
					break
				}
				if zr.s.state != stateDone {
					zr.err = rerr
				}
				break
			}
		}
		if werr := zr.s.Write(&zr.st); werr != nil {
			zr.err = werr
			break
		}
	}

	n := len(buf) - len(zr.st.Out)
	if zr.s.state == stateDone && zr.err == nil {
		zr.err = io.EOF
	}
	if n > 0 && zr.err == io.EOF {
		return n, nil // surface EOF on the next call, per io.Reader
	}
	return n, zr.err
}

// InputOffset returns the number of compressed bytes consumed from r so far.
func (zr *Reader) InputOffset() int64 { return zr.st.TotalIn }

// OutputOffset returns the number of decompressed bytes produced so far.
func (zr *Reader) OutputOffset() int64 { return zr.st.TotalOut }
