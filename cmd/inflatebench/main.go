// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command inflatebench compares decompression throughput between this
// package's Reader and klauspost/compress/flate on synthetically generated
// text of configurable size, compressed at a configurable level.
//
// Example usage:
//	$ go run ./cmd/inflatebench -sizes 1e4,1e5,1e6 -level 6
//
// Grounded on internal/tool/bench/main.go's flag handling and result table,
// narrowed from that tool's 4-format N-codec matrix (flate/bzip2/xz/brotli,
// std/ds/cgo) down to the one comparison this repository can make honestly:
// this package against the reference encoder/decoder it was tested against.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"math/rand"
	"regexp"
	"runtime"
	"strings"
	"testing"

	kflate "github.com/klauspost/compress/flate"

	"github.com/dsnet/golib/strconv"

	"github.com/dsnet/inflate"
)

func main() {
	sizesFlag := flag.String("sizes", "1e4,1e5,1e6", "comma-separated list of input sizes")
	levelFlag := flag.Int("level", 6, "klauspost/compress/flate compression level used to generate input")
	flag.Parse()

	var sizes []int
	sep := regexp.MustCompile("[,:]")
	for _, s := range sep.Split(*sizesFlag, -1) {
		n, err := strconv.ParsePrefix(s, strconv.AutoParse)
		if err != nil {
			panic("invalid size: " + s)
		}
		sizes = append(sizes, int(n))
	}

	type row struct {
		name    string
		stdMBs  float64
		inflMBs float64
	}
	var rows []row
	for _, n := range sizes {
		raw := syntheticText(n)
		compressed := compressWith(raw, *levelFlag)

		stdResult := benchmarkDecoder(compressed, func(r io.Reader) io.Reader {
			return kflate.NewReader(r)
		})
		inflResult := benchmarkDecoder(compressed, func(r io.Reader) io.Reader {
			zr, err := inflate.NewReader(r)
			if err != nil {
				panic(err)
			}
			return zr
		})

		rows = append(rows, row{
			name:    fmt.Sprintf("synthetic:%d", n),
			stdMBs:  rate(stdResult),
			inflMBs: rate(inflResult),
		})
	}

	fmt.Printf("%-20s %12s %12s %8s\n", "benchmark", "std MB/s", "inflate MB/s", "delta")
	for _, r := range rows {
		delta := r.inflMBs / r.stdMBs
		fmt.Printf("%-20s %12.2f %12.2f %7.2fx\n", r.name, r.stdMBs, r.inflMBs, delta)
	}
}

func rate(res testing.BenchmarkResult) float64 {
	if res.N == 0 {
		return 0
	}
	us := (float64(res.T.Nanoseconds()) / 1e3) / float64(res.N)
	return float64(res.Bytes) / us
}

func benchmarkDecoder(compressed []byte, newReader func(io.Reader) io.Reader) testing.BenchmarkResult {
	return testing.Benchmark(func(b *testing.B) {
		b.StopTimer()
		runtime.GC()
		b.StartTimer()
		for i := 0; i < b.N; i++ {
			rd := newReader(bytes.NewReader(compressed))
			n, err := io.Copy(ioutil.Discard, rd)
			if err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
			b.SetBytes(n)
		}
	})
}

func compressWith(raw []byte, level int) []byte {
	var buf bytes.Buffer
	wr, err := kflate.NewWriter(&buf, level)
	if err != nil {
		panic(err)
	}
	if _, err := wr.Write(raw); err != nil {
		panic(err)
	}
	if err := wr.Close(); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// syntheticText builds n bytes of text with the kind of short-range
// repetition LZ77 exploits, rather than pure random noise.
func syntheticText(n int) []byte {
	const corpus = "the quick brown fox jumps over the lazy dog. "
	var sb strings.Builder
	r := rand.New(rand.NewSource(1))
	for sb.Len() < n {
		i := r.Intn(len(corpus))
		sb.WriteString(corpus[i:])
	}
	return []byte(sb.String()[:n])
}
