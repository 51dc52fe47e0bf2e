package gf256

// buildLogExp walks the multiplicative group generated by polynomial,
// filling log/exp. EXP is deliberately sized past 255 entries (511) so
// that MUL can add two log values in [0,254] without a modular
// reduction on the hot path.
func (c *Context) buildLogExp(polynomial uint32) error {
	x := uint32(1)
	for i := 0; i < 255; i++ {
		if i > 0 && x == 1 {
			// The walk returned to the identity early, so it covers
			// fewer than 255 elements and polynomial doesn't generate
			// the full group.
			return ErrInitFailed
		}
		c.exp[i] = uint8(x)
		c.log[uint8(x)] = uint8(i)
		x <<= 1
		if x&0x100 != 0 {
			x ^= polynomial
		}
	}
	// log[0] is a sentinel; never consulted for a zero operand.
	c.log[0] = 0

	if x != 1 {
		// The walk didn't return to the identity after 255 steps,
		// meaning polynomial doesn't generate the full group.
		return ErrInitFailed
	}

	// Duplicate the cycle past index 255 so MUL can index exp[a+b]
	// for a,b in [0,254] (max sum 508) without reducing mod 255.
	for i := 255; i < len(c.exp); i++ {
		c.exp[i] = c.exp[i-255]
	}
	return nil
}

// buildMulDivInvSqr fills MUL, DIV, INV, SQR from LOG/EXP:
// MUL[y,x] = EXP[LOG[x]+LOG[y]] for x,y != 0, else 0;
// INV[x] = EXP[255-LOG[x]], INV[0] = 0 sentinel; DIV[y,x] = MUL[x,INV[y]]
// for y != 0 (DIV[0,x] is left zero and never queried); SQR[x] = MUL[x,x].
func (c *Context) buildMulDivInvSqr() {
	for x := 1; x < 256; x++ {
		c.inv[x] = c.exp[255-int(c.log[x])]
	}
	c.inv[0] = 0

	for y := 0; y < 256; y++ {
		for x := 0; x < 256; x++ {
			if x == 0 || y == 0 {
				c.mul[y][x] = 0
				continue
			}
			c.mul[y][x] = c.exp[int(c.log[x])+int(c.log[y])]
		}
	}

	for y := 1; y < 256; y++ {
		invY := c.inv[y]
		for x := 0; x < 256; x++ {
			c.div[y][x] = c.mul[invY][x]
		}
	}

	for x := 0; x < 256; x++ {
		c.sqr[x] = c.mul[x][x]
	}
}

// buildSplitTables fills the per-scalar nibble tables used by the
// SIMD-shaped multiply kernels: for scalar y, lo16[y][n] = MUL[y,n]
// and hi16[y][n] = MUL[y, n<<4] for nibble n in [0,16). The 32-wide
// tables duplicate the same 16 entries across both halves so a
// 256-bit-lane kernel can address either half identically, matching
// an AVX2-style broadcast of the same 128-bit lookup.
func (c *Context) buildSplitTables() {
	for y := 0; y < 256; y++ {
		for n := 0; n < 16; n++ {
			lo := c.mul[y][n]
			hi := c.mul[y][n<<4]
			c.lo16[y][n] = lo
			c.hi16[y][n] = hi
			c.lo32[y][n] = lo
			c.hi32[y][n] = hi
			c.lo32[y][n+16] = lo
			c.hi32[y][n+16] = hi
		}
	}
}

// Mul returns x*y in GF(256).
func (c *Context) Mul(x, y uint8) uint8 { return c.mul[y][x] }

// Div returns x/y in GF(256). Div panics if y == 0; callers must
// check for a zero divisor themselves.
func (c *Context) Div(x, y uint8) uint8 {
	if y == 0 {
		panic("gf256: division by zero")
	}
	return c.div[y][x]
}

// Inv returns the multiplicative inverse of x. Inv(0) is defined as 0,
// a sentinel that is never a valid inverse and should never be relied
// upon by a caller.
func (c *Context) Inv(x uint8) uint8 { return c.inv[x] }

// Sqr returns x*x in GF(256).
func (c *Context) Sqr(x uint8) uint8 { return c.sqr[x] }

// Add returns x+y in GF(256), which is simply XOR.
func (c *Context) Add(x, y uint8) uint8 { return x ^ y }
