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

// Package cauchy implements a Cauchy Reed-Solomon MDS erasure code
// over GF(256): given OriginalCount data blocks it produces
// RecoveryCount parity blocks such that any OriginalCount of the
// OriginalCount+RecoveryCount blocks suffice to reconstruct the
// originals. It builds on the bulk arithmetic kernels in the gf256
// package for the field operations and adds the generator matrix
// construction and the encode/decode drivers on top.
package cauchy

// Params is the encoder/decoder parameter triple: OriginalCount data
// blocks, RecoveryCount parity blocks, BlockBytes bytes per block.
// Passed by value; it carries no state of its own.
type Params struct {
	OriginalCount int // N
	RecoveryCount int // M
	BlockBytes    int // B
}

// Total returns OriginalCount + RecoveryCount, the size of the unified
// index space [0, N+M).
func (p Params) Total() int { return p.OriginalCount + p.RecoveryCount }

// Validate checks the parameter invariants: N>=1, M>=0, N+M<=256, B>0.
func (p Params) Validate() error {
	if p.OriginalCount < 1 || p.RecoveryCount < 0 || p.BlockBytes <= 0 {
		return ErrInvalidParams
	}
	if p.Total() > 256 {
		return ErrInvalidParams
	}
	return nil
}

// RecoveryBlockIndex maps a recovery-row number in [0, RecoveryCount)
// to its position in the unified index space [N, N+M).
func (p Params) RecoveryBlockIndex(row int) int {
	return p.OriginalCount + row
}

// OriginalBlockIndex maps an original block position in [0, N) to its
// position in the unified index space, which for originals is the
// identity.
func (p Params) OriginalBlockIndex(pos int) int {
	return pos
}

// Block is one codeword element: a fixed-size byte buffer together
// with its index in the unified space [0, N+M). Original blocks carry
// an index in [0,N); recovery blocks carry an index in [N,N+M), where
// recovery row r has index N+r. The engine never allocates Data; it
// reads, writes, and (on decode) repurposes the buffer the caller
// supplies.
type Block struct {
	Index int
	Data  []byte
}
