package cauchy

import "github.com/xtaci/cauchyrs/gf256"

// generator evaluates entries of the M×N Cauchy generator matrix G
// on demand: G[r,c] = 1/(X[r] XOR Y[c]) for disjoint sequences
// X = {0,...,M-1} and Y = {M,...,M+N-1}, with row 0 forced to the
// all-ones row so the first recovery block is a pure XOR sum.
type generator struct {
	ctx *gf256.Context
	m   int
}

func newGenerator(ctx *gf256.Context, m int) generator {
	return generator{ctx: ctx, m: m}
}

// gen returns G[r,c]. X and Y are disjoint by construction (X spans
// [0,M) and Y spans [M,M+N)), so X[r] XOR Y[c] is never zero and the
// inverse lookup is always defined.
func (g generator) gen(r, c int) byte {
	if r == 0 {
		return 1
	}
	x := byte(r)
	y := byte(g.m + c)
	return g.ctx.Inv(x ^ y)
}
