// The MIT License (MIT)
//
// # Copyright (c) 2016 xtaci
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package main

import "io"

// blockSplitter is an io.Writer that slices whatever is written to it
// into fixed-size blocks, zero-padding the final, short block. Block
// allocation and buffer management are the caller's job, not the
// engine's; this demo plays that role minimally so it has data to hand
// to cauchy.Encode.
type blockSplitter struct {
	blockBytes int
	blocks     [][]byte
	cur        []byte
}

func newBlockSplitter(blockBytes int) *blockSplitter {
	return &blockSplitter{blockBytes: blockBytes, cur: make([]byte, 0, blockBytes)}
}

func (s *blockSplitter) Write(p []byte) (int, error) {
	n := len(p)
	for len(p) > 0 {
		room := s.blockBytes - len(s.cur)
		take := room
		if take > len(p) {
			take = len(p)
		}
		s.cur = append(s.cur, p[:take]...)
		p = p[take:]
		if len(s.cur) == s.blockBytes {
			s.blocks = append(s.blocks, s.cur)
			s.cur = make([]byte, 0, s.blockBytes)
		}
	}
	return n, nil
}

// Finish flushes a trailing short block, zero-padded to blockBytes,
// and returns every block collected so far.
func (s *blockSplitter) Finish() [][]byte {
	if len(s.cur) > 0 {
		padded := make([]byte, s.blockBytes)
		copy(padded, s.cur)
		s.blocks = append(s.blocks, padded)
		s.cur = nil
	}
	return s.blocks
}

// readBlocks reads all of r into fixed-size, zero-padded blocks. It
// uses io.Copy, which hands the data to blockSplitter.Write in pieces
// (through r's WriterTo when r has one, otherwise through io.Copy's
// own buffer); blockSplitter doesn't implement ReaderFrom.
func readBlocks(r io.Reader, blockBytes int) ([][]byte, error) {
	s := newBlockSplitter(blockBytes)
	if _, err := io.Copy(s, r); err != nil {
		return nil, err
	}
	return s.Finish(), nil
}
