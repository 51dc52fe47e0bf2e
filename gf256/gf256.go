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

// Package gf256 implements bulk arithmetic over GF(2^8), the finite
// field used by the Cauchy Reed-Solomon codec in the sibling cauchy
// package. It builds the log/exp/mul/div/inv/sqr tables once for a
// chosen irreducible polynomial and exposes byte-buffer kernels
// (xor, scalar multiply, scalar divide, buffer swap). The scalar
// multiply and divide kernels are chunked at the widest lane width the
// CPU supports, chosen at runtime; the xor and swap kernels are plain
// byte loops with no tier dispatch.
package gf256

import "sync"

// DefaultPolynomial is the common degree-8 irreducible polynomial used
// to build GF(256) (0x11D, i.e. x^8+x^4+x^3+x^2+1).
const DefaultPolynomial = 0x11D

// Context holds the read-only tables for one choice of irreducible
// polynomial. It is built once by New and never mutated afterward, so
// a *Context may be shared and read concurrently by any number of
// goroutines without synchronization.
type Context struct {
	// Polynomial is the generator polynomial the tables were built
	// from. Kept for introspection and diagnostics.
	Polynomial uint32

	log [256]uint8
	exp [511]uint8

	mul [256][256]uint8
	div [256][256]uint8
	inv [256]uint8
	sqr [256]uint8

	lo16 [256][16]uint8
	hi16 [256][16]uint8
	lo32 [256][32]uint8
	hi32 [256][32]uint8

	tier tier
}

var (
	defaultCtx     *Context
	defaultCtxOnce sync.Once
	defaultCtxErr  error
)

// Init builds the process-wide default context under DefaultPolynomial.
// It is idempotent and safe to call from multiple goroutines: only the
// first call does any work, later calls and concurrent racers block
// until that work finishes and then observe the same result. Most
// callers should prefer New, which returns an explicit handle; Init
// exists for callers that want a single global context guarded behind
// a one-time initialization primitive rather than threading a handle
// through every call site.
func Init() error {
	defaultCtxOnce.Do(func() {
		defaultCtx, defaultCtxErr = New(DefaultPolynomial)
	})
	return defaultCtxErr
}

// Default returns the process-wide context built by Init, calling Init
// first if it has not run yet.
func Default() (*Context, error) {
	if err := Init(); err != nil {
		return nil, err
	}
	return defaultCtx, nil
}

// New builds an immutable field context from the given irreducible
// polynomial. It returns ErrInitFailed if x does not generate the full
// multiplicative group modulo the polynomial (the polynomial is not
// irreducible over GF(2) at degree 8, or x is not a primitive element
// modulo it), since in that case every non-zero element
// would not have a unique inverse and the table-consistency
// invariants below would not hold.
func New(polynomial uint32) (*Context, error) {
	c := &Context{Polynomial: polynomial}
	if err := c.buildLogExp(polynomial); err != nil {
		return nil, err
	}
	c.buildMulDivInvSqr()
	c.buildSplitTables()
	c.tier = detectTier()
	return c, nil
}
