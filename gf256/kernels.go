package gf256

// Xor computes dst[i] ^= src[i] for i in [0, len(dst)). dst and src
// must be the same length.
func Xor(dst, src []byte) {
	n := len(dst)
	for i := 0; i < n; i++ {
		dst[i] ^= src[i]
	}
}

// Xor2 computes dst[i] ^= a[i] ^ b[i] for i in [0, len(dst)).
func Xor2(dst, a, b []byte) {
	n := len(dst)
	for i := 0; i < n; i++ {
		dst[i] ^= a[i] ^ b[i]
	}
}

// XorSet computes dst[i] = a[i] ^ b[i] for i in [0, len(dst)).
// dst must not alias a or b.
func XorSet(dst, a, b []byte) {
	n := len(dst)
	for i := 0; i < n; i++ {
		dst[i] = a[i] ^ b[i]
	}
}

// Swap exchanges the contents of a and b in place. a and b must be
// the same length.
func Swap(a, b []byte) {
	n := len(a)
	for i := 0; i < n; i++ {
		a[i], b[i] = b[i], a[i]
	}
}

// MulScalar computes dst[i] = y*src[i] in GF(256) for i in [0, len(dst)).
// dst must not alias src unless y == 1, in which case this degrades to
// a plain copy exactly as the split-table kernels would (MUL[1,x] == x
// for every x).
func (c *Context) MulScalar(dst, src []byte, y uint8) {
	if y == 1 {
		copy(dst, src)
		return
	}
	if y == 0 {
		n := len(src)
		for i := 0; i < n; i++ {
			dst[i] = 0
		}
		return
	}
	c.mulTable(y, src, dst, mulStore)
}

// MulAddScalar computes dst[i] ^= y*src[i] in GF(256) for i in
// [0, len(dst)).
func (c *Context) MulAddScalar(dst []byte, y uint8, src []byte) {
	if y == 0 {
		return
	}
	if y == 1 {
		Xor(dst, src)
		return
	}
	c.mulTable(y, src, dst, mulXor)
}

// DivScalar computes dst[i] = src[i]/y in GF(256) for i in [0, len(dst)).
// y must be non-zero. When y == 1 this is a plain copy.
func (c *Context) DivScalar(dst, src []byte, y uint8) {
	if y == 0 {
		panic("gf256: division by zero")
	}
	c.MulScalar(dst, src, c.inv[y])
}

type mulMode int

const (
	mulStore mulMode = iota
	mulXor
)

// mulTable runs the split-table nibble-lookup kernel over src into
// dst, chunked at the context's dispatch tier width. Every tier
// computes the identical byte-for-byte result because this package has
// no real vector backend to diverge from; the chunking exists so the
// dispatch structure is genuinely present and the tier can be swapped
// for a real assembly kernel later without touching callers.
func (c *Context) mulTable(y uint8, src, dst []byte, mode mulMode) {
	n := len(src)
	width := chunkWidth(c.tier)
	i := 0
	for ; i+width <= n; i += width {
		c.mulChunk(y, src[i:i+width], dst[i:i+width], mode)
	}
	// Scalar tail: the leftover bytes after the last whole chunk, when
	// the block length isn't divisible by the tier's lane width.
	for ; i < n; i++ {
		v := c.mul[y][src[i]]
		if mode == mulXor {
			dst[i] ^= v
		} else {
			dst[i] = v
		}
	}
}

// mulChunk applies the nibble split-table multiply to one lane-sized
// chunk. It reads lo16/hi16 for every tier; the 32-byte tables are not
// consulted, since both their halves hold the same broadcast nibble
// outputs as lo16/hi16 by construction; a real
// shuffle backend would instead issue one instruction across the
// whole chunk. lo/hi lookups are done per byte rather than via an
// actual SIMD shuffle instruction; see mulTable's doc comment.
func (c *Context) mulChunk(y uint8, src, dst []byte, mode mulMode) {
	lo, hi := &c.lo16[y], &c.hi16[y]
	for i, b := range src {
		v := lo[b&0x0f] ^ hi[b>>4]
		if mode == mulXor {
			dst[i] ^= v
		} else {
			dst[i] = v
		}
	}
}
