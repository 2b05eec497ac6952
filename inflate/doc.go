// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package inflate implements RFC 1951 DEFLATE decompression.
//
// Stream is the core, re-entrant decoder: it operates on caller-provided
// input and output slices and never blocks, making it suitable for framing
// protocols that deliver compressed bytes in arbitrary chunks (see State).
// Reader wraps a Stream as a conventional io.Reader for the common case of
// decoding an entire stream from an io.Reader source.
package inflate
