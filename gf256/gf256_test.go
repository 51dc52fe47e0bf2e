package gf256

import (
	"math/rand"
	"testing"
)

func testContext(t *testing.T) *Context {
	t.Helper()
	c, err := New(DefaultPolynomial)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestFieldLaws(t *testing.T) {
	c := testContext(t)
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 2000; i++ {
		x := uint8(rng.Intn(256))
		y := uint8(rng.Intn(256))
		z := uint8(rng.Intn(256))

		if c.Mul(x, y) != c.Mul(y, x) {
			t.Fatalf("multiplication not commutative for x=%d y=%d", x, y)
		}
		if got, want := c.Mul(x, y^z), c.Mul(x, y)^c.Mul(x, z); got != want {
			t.Fatalf("distributivity failed for x=%d y=%d z=%d: got %d want %d", x, y, z, got, want)
		}
		if x != 0 && c.Mul(x, c.Inv(x)) != 1 {
			t.Fatalf("x*inv(x) != 1 for x=%d", x)
		}
		if c.Mul(x, x) != c.Sqr(x) {
			t.Fatalf("sqr(x) != x*x for x=%d", x)
		}
	}
}

func TestMulTableConsistency(t *testing.T) {
	c := testContext(t)
	for y := 1; y < 256; y++ {
		for x := 1; x < 256; x++ {
			want := c.exp[int(c.log[x])+int(c.log[y])]
			if c.mul[y][x] != want {
				t.Fatalf("MUL[%d,%d] = %d, want %d", y, x, c.mul[y][x], want)
			}
		}
		if c.mul[y][0] != 0 || c.mul[0][y] != 0 {
			t.Fatalf("MUL with zero operand must be 0 (y=%d)", y)
		}
	}
}

func TestDivTableConsistency(t *testing.T) {
	c := testContext(t)
	for y := 1; y < 256; y++ {
		for x := 0; x < 256; x++ {
			want := c.Mul(uint8(x), c.Inv(uint8(y)))
			if c.div[y][x] != want {
				t.Fatalf("DIV[%d,%d] = %d, want %d", y, x, c.div[y][x], want)
			}
		}
	}
}

func TestEveryNonZeroHasUniqueInverse(t *testing.T) {
	c := testContext(t)
	seen := make(map[uint8]uint8)
	for x := 1; x < 256; x++ {
		inv := c.Inv(uint8(x))
		if inv == 0 {
			t.Fatalf("inverse of %d must not be 0", x)
		}
		if c.Mul(uint8(x), inv) != 1 {
			t.Fatalf("x*inv(x) != 1 for x=%d", x)
		}
		if prev, ok := seen[inv]; ok {
			t.Fatalf("inverse %d shared by %d and %d", inv, prev, x)
		}
		seen[inv] = uint8(x)
	}
}

func TestSplitTablesMatchMulTable(t *testing.T) {
	c := testContext(t)
	for y := 0; y < 256; y++ {
		for n := 0; n < 16; n++ {
			if got, want := c.lo16[y][n], c.mul[y][n]; got != want {
				t.Fatalf("lo16[%d][%d] = %d, want %d", y, n, got, want)
			}
			if got, want := c.hi16[y][n], c.mul[y][n<<4]; got != want {
				t.Fatalf("hi16[%d][%d] = %d, want %d", y, n, got, want)
			}
		}
	}
}

func TestInitFailsOnNonIrreduciblePolynomial(t *testing.T) {
	// x^8 (0x100) is reducible (not a valid GF(2^8) generator): the
	// multiplicative walk will cycle before covering all 255 elements.
	if _, err := New(0x100); err == nil {
		t.Fatalf("expected New to fail for a non-irreducible polynomial")
	}
}

func TestKernelEquivalenceAcrossTiers(t *testing.T) {
	c := testContext(t)
	rng := rand.New(rand.NewSource(2))
	for length := 0; length <= 1024; length++ {
		src := make([]byte, length)
		rng.Read(src)
		for _, y := range []uint8{0, 1, 2, 5, 255} {
			scalarDst := make([]byte, length)
			wideDst := make([]byte, length)

			scalar := &Context{Polynomial: c.Polynomial, log: c.log, exp: c.exp,
				mul: c.mul, div: c.div, inv: c.inv, sqr: c.sqr,
				lo16: c.lo16, hi16: c.hi16, lo32: c.lo32, hi32: c.hi32, tier: tierScalar}
			wide := &Context{Polynomial: c.Polynomial, log: c.log, exp: c.exp,
				mul: c.mul, div: c.div, inv: c.inv, sqr: c.sqr,
				lo16: c.lo16, hi16: c.hi16, lo32: c.lo32, hi32: c.hi32, tier: tier256}

			scalar.MulScalar(scalarDst, src, y)
			wide.MulScalar(wideDst, src, y)
			for i := range scalarDst {
				if scalarDst[i] != wideDst[i] {
					t.Fatalf("tier mismatch at len=%d y=%d idx=%d: scalar=%d wide=%d",
						length, y, i, scalarDst[i], wideDst[i])
				}
			}
		}
	}
}

func TestXorKernels(t *testing.T) {
	a := []byte{1, 2, 3, 4}
	b := []byte{5, 6, 7, 8}
	dst := make([]byte, 4)
	XorSet(dst, a, b)
	for i := range dst {
		if dst[i] != a[i]^b[i] {
			t.Fatalf("XorSet mismatch at %d", i)
		}
	}

	dst2 := append([]byte(nil), a...)
	Xor(dst2, b)
	for i := range dst2 {
		if dst2[i] != a[i]^b[i] {
			t.Fatalf("Xor mismatch at %d", i)
		}
	}

	dst3 := make([]byte, 4)
	Xor2(dst3, a, b)
	for i := range dst3 {
		if dst3[i] != a[i]^b[i] {
			t.Fatalf("Xor2 mismatch at %d", i)
		}
	}
}

func TestSwap(t *testing.T) {
	a := []byte{1, 2, 3}
	b := []byte{9, 8, 7}
	wantA, wantB := append([]byte(nil), b...), append([]byte(nil), a...)
	Swap(a, b)
	for i := range a {
		if a[i] != wantA[i] || b[i] != wantB[i] {
			t.Fatalf("Swap mismatch at %d", i)
		}
	}
}

func TestDivScalarInverts(t *testing.T) {
	c := testContext(t)
	rng := rand.New(rand.NewSource(3))
	src := make([]byte, 300)
	rng.Read(src)
	for _, y := range []uint8{1, 3, 17, 254} {
		mulOut := make([]byte, len(src))
		c.MulScalar(mulOut, src, y)
		divOut := make([]byte, len(src))
		c.DivScalar(divOut, mulOut, y)
		for i := range src {
			if divOut[i] != src[i] {
				t.Fatalf("div(mul(x,y),y) != x for y=%d idx=%d", y, i)
			}
		}
	}
}

func TestInitIdempotent(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	first, _ := Default()
	if err := Init(); err != nil {
		t.Fatalf("second Init: %v", err)
	}
	second, _ := Default()
	if first != second {
		t.Fatalf("Init is not idempotent: got different contexts")
	}
}
