// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package inflate

import "github.com/klauspost/cpuid"

// fastCopyEnabled gates the bulk, non-overlapping match-copy path in
// stateMatch. On platforms without fast unaligned loads/stores, bulk copies
// of small, oddly-sized runs cost more than they save over the byte-at-a-time
// path, which is always correct regardless of overlap.
var fastCopyEnabled = cpuid.CPU.SSE2
