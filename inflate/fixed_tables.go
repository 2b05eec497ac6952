// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package inflate

// endBlockSym is the literal/length alphabet's end-of-block symbol (RFC 1951
// §3.2.6).
const endBlockSym = 256

const (
	numLitSyms  = 288
	numDistSyms = 30
	numCLenSyms = 19
)

// clenOrder is the permutation RFC 1951 §3.2.7 specifies for reading the
// 3-bit code-length-alphabet lengths out of a dynamic block header.
var clenOrder = [numCLenSyms]int{
	16, 17, 18, 0, 8, 7, 9, 6, 10, 5, 11, 4, 12, 3, 13, 2, 14, 1, 15,
}

// fixedLitTable and fixedDistTable are the RFC 1951 §3.2.6 fixed Huffman
// tables, built once at init time (spec §4.4): the literal/length table via
// the same buildTable used for dynamic blocks, the 32-entry distance table
// filled in directly. Grounded on flate/prefix.go's initPrefixLUTs, which
// builds the identical length bands; only the destination table format
// differs (op/bits/val instead of the teacher's prefixDecoder chunks).
var (
	fixedLitTable  [enoughLens]codeEntry
	fixedLitUsed   int
	fixedLitRoot   uint
	fixedDistTable [enoughDists]codeEntry
	fixedDistUsed  int
	fixedDistRoot  uint
)

func init() {
	var lens [numLitSyms]int
	for i := 0; i < 144; i++ {
		lens[i] = 8
	}
	for i := 144; i < 256; i++ {
		lens[i] = 9
	}
	for i := 256; i < 280; i++ {
		lens[i] = 7
	}
	for i := 280; i < 288; i++ {
		lens[i] = 8
	}
	var work [numLitSyms]uint16
	used, root, err := buildTable(litLens, lens[:], fixedLitTable[:], 0, 9, work[:])
	if err != nil {
		panic(err) // fixed tables are a compile-time constant of the format
	}
	fixedLitUsed, fixedLitRoot = used, root

	// The fixed distance code is all 32 five-bit codes. Symbols 30 and 31
	// never occur in valid data, so their entries are invalid markers.
	for sym := uint32(0); sym < 32; sym++ {
		e := codeEntry{op: opInvalid, bits: 5}
		if sym < numDistSyms {
			e = codeEntry{op: opLengthBase | distExtra[sym], bits: 5, val: distBase[sym]}
		}
		fixedDistTable[reverseBits(sym, 5)] = e
	}
	fixedDistUsed, fixedDistRoot = 32, 5
}
