package cauchy

import "github.com/xtaci/cauchyrs/gf256"

// Encode produces RecoveryCount parity blocks from OriginalCount data
// blocks. originals must have exactly params.OriginalCount entries,
// each params.BlockBytes long. recovery must be a contiguous buffer of
// params.RecoveryCount*params.BlockBytes bytes; it is filled
// end-to-end, one block per recovery row.
func Encode(ctx *gf256.Context, params Params, originals [][]byte, recovery []byte) error {
	if err := params.Validate(); err != nil {
		return err
	}
	if len(originals) != params.OriginalCount {
		return ErrNullBuffer
	}
	for _, o := range originals {
		if len(o) != params.BlockBytes {
			return ErrNullBuffer
		}
	}
	if params.RecoveryCount == 0 {
		return nil
	}
	if len(recovery) != params.RecoveryCount*params.BlockBytes {
		return ErrNullBuffer
	}

	g := newGenerator(ctx, params.RecoveryCount)
	for r := 0; r < params.RecoveryCount; r++ {
		out := recovery[r*params.BlockBytes : (r+1)*params.BlockBytes]
		encodeRow(ctx, g, r, originals, out)
	}
	return nil
}

// EncodeOne computes a single recovery row, for callers that want to
// parallelize encoding across rows themselves. It performs no
// validation; use with care.
func EncodeOne(ctx *gf256.Context, params Params, originals [][]byte, recoveryRow int, out []byte) {
	g := newGenerator(ctx, params.RecoveryCount)
	encodeRow(ctx, g, recoveryRow, originals, out)
}

// encodeRow fills out with recovery row r of the generator matrix
// applied to originals. Row 0 is the all-ones row, so it reduces to a
// pure XOR chain with no table lookups; every other row is a
// scale-and-accumulate over GF(256). When OriginalCount == 1 the
// accumulate loop never runs and the row collapses to a single scalar
// multiply: out_r = mul(orig_0, gen(r,0)).
func encodeRow(ctx *gf256.Context, g generator, r int, originals [][]byte, out []byte) {
	if r == 0 {
		copy(out, originals[0])
		for c := 1; c < len(originals); c++ {
			gf256.Xor(out, originals[c])
		}
		return
	}
	ctx.MulScalar(out, originals[0], g.gen(r, 0))
	for c := 1; c < len(originals); c++ {
		ctx.MulAddScalar(out, g.gen(r, c), originals[c])
	}
}
