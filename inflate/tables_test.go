// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package inflate

import "testing"

func TestFixedTablesBuiltAtInit(t *testing.T) {
	if fixedLitRoot != 9 {
		t.Fatalf("fixedLitRoot = %d, want 9", fixedLitRoot)
	}
	if fixedDistRoot != 5 {
		t.Fatalf("fixedDistRoot = %d, want 5", fixedDistRoot)
	}
	if fixedLitUsed == 0 || fixedDistUsed == 0 {
		t.Fatalf("fixed tables were not populated")
	}

	// Symbol 0 (an 8-bit literal, code 0b00110000) must decode as a literal.
	e := fixedLitTable[reverseBits(0x30, 8)]
	if e.op != 0 || e.val != 0 {
		t.Fatalf("literal 0 entry = %+v, want a plain literal for symbol 0", e)
	}

	// Symbol 256 (end-of-block, 7-bit code 0b0000000) must decode as EOB.
	idx := reverseBits(0, 7)
	e = fixedLitTable[idx]
	if e.op&opEndOfBlock == 0 {
		t.Fatalf("end-of-block entry = %+v, want opEndOfBlock set", e)
	}
}

func TestBuildTableOversubscribed(t *testing.T) {
	lens := []int{1, 1, 1} // 3 symbols all of length 1: Kraft sum = 1.5 > 1
	var storage [enoughDists]codeEntry
	var work [3]uint16
	_, _, err := buildTable(distLens, lens, storage[:], 0, 5, work[:])
	if err == nil {
		t.Fatalf("buildTable: expected an oversubscribed-code error, got nil")
	}
}

func TestBuildTableSingleSymbolIncomplete(t *testing.T) {
	// A single used distance symbol (length 1) is the classic incomplete-but-
	// valid case for LENS/DISTS-kind tables; the identical shape is rejected
	// for the code-length alphabet, which never tolerates incompleteness.
	lens := make([]int, numDistSyms)
	lens[0] = 1
	var storage [enoughDists]codeEntry
	var work [numDistSyms]uint16
	used, root, err := buildTable(distLens, lens, storage[:], 0, 6, work[:])
	if err != nil {
		t.Fatalf("buildTable(distLens): unexpected error: %v", err)
	}
	if used == 0 || root == 0 {
		t.Fatalf("buildTable(distLens): used=%d root=%d, want nonzero", used, root)
	}

	clens := make([]int, numCLenSyms)
	clens[0] = 1
	var cstorage [enoughCLens]codeEntry
	var cwork [numCLenSyms]uint16
	if _, _, err := buildTable(codeLens, clens, cstorage[:], 0, 7, cwork[:]); err == nil {
		t.Fatalf("buildTable(codeLens): expected an incomplete-code error, got nil")
	}
}

func TestBuildTableRoundTrip(t *testing.T) {
	// A balanced 4-symbol code: lengths 2,2,2,2.
	lens := []int{2, 2, 2, 2}
	var storage [enoughDists]codeEntry
	var work [4]uint16
	used, root, err := buildTable(distLens, lens, storage[:], 0, 5, work[:])
	if err != nil {
		t.Fatalf("buildTable: unexpected error: %v", err)
	}
	if root != 2 {
		t.Fatalf("root = %d, want 2 (clamped down to max code length)", root)
	}
	// Every one of the 4 canonical codes (00,01,10,11) must resolve to a
	// distinct, valid entry somewhere in the 2^root root table.
	seen := make(map[uint16]bool)
	for i := 0; i < used; i++ {
		e := storage[i]
		if e.op&opInvalid != 0 {
			t.Fatalf("entry %d is invalid in a complete 4-symbol code", i)
		}
		seen[e.val] = true
	}
	if len(seen) != 4 {
		t.Fatalf("saw %d distinct symbols, want 4", len(seen))
	}
}
