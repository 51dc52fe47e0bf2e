package cauchy

import (
	"sort"

	"github.com/xtaci/cauchyrs/gf256"
)

// Decode recovers any missing original blocks in place. blocks must
// contain exactly params.OriginalCount entries:
// some carrying original indices in [0,OriginalCount), the rest
// carrying recovery indices in [OriginalCount,OriginalCount+
// RecoveryCount). On success, every entry that arrived as a recovery
// block has been overwritten with the original data it recovered and
// its Index updated to the original index it now holds; entries that
// arrived as originals are untouched. Decode mutates blocks' Data
// buffers directly — callers that need to keep a recovery block's
// original parity content should copy it before calling.
func Decode(ctx *gf256.Context, params Params, blocks []Block) error {
	if err := params.Validate(); err != nil {
		return err
	}
	for _, b := range blocks {
		if len(b.Data) != params.BlockBytes {
			return ErrNullBuffer
		}
	}

	total := params.Total()
	seen := make([]bool, total)
	present := make(map[int][]byte, params.OriginalCount)

	type usedRow struct {
		r        int
		buf      []byte
		blockIdx int
	}
	var used []usedRow

	for bi, b := range blocks {
		if b.Index < 0 || b.Index >= total {
			return ErrIndexOutOfRange
		}
		if seen[b.Index] {
			return ErrDuplicateIndex
		}
		seen[b.Index] = true

		if b.Index < params.OriginalCount {
			present[b.Index] = b.Data
		} else {
			used = append(used, usedRow{r: b.Index - params.OriginalCount, buf: b.Data, blockIdx: bi})
		}
	}

	e := params.OriginalCount - len(present)
	if e == 0 {
		// All originals are already present, nothing to reconstruct.
		return nil
	}
	if len(used) < e {
		return ErrInsufficientBlocks
	}

	sort.Slice(used, func(i, j int) bool { return used[i].r < used[j].r })
	used = used[:e]

	missing := make([]int, 0, e)
	for c := 0; c < params.OriginalCount; c++ {
		if _, ok := present[c]; !ok {
			missing = append(missing, c)
		}
	}

	g := newGenerator(ctx, params.RecoveryCount)

	// XOR the known originals out of each recovery row in use,
	// leaving each row holding only the linear combination of the
	// missing originals.
	for _, u := range used {
		for c, buf := range present {
			if u.r == 0 {
				gf256.Xor(u.buf, buf)
			} else {
				ctx.MulAddScalar(u.buf, g.gen(u.r, c), buf)
			}
		}
	}

	// Build the e×e submatrix A[i][j] = gen(used[i].r, missing[j]).
	a := make([][]byte, e)
	for i := range a {
		a[i] = make([]byte, e)
		for j := 0; j < e; j++ {
			a[i][j] = g.gen(used[i].r, missing[j])
		}
	}

	// Gauss-Jordan elimination in place, carrying the same row
	// operations through the recovery buffers.
	for k := 0; k < e; k++ {
		pivot := -1
		for i := k; i < e; i++ {
			if a[i][k] != 0 {
				pivot = i
				break
			}
		}
		if pivot < 0 {
			return ErrSingularMatrix
		}
		if pivot != k {
			// Swap the scratch matrix rows (bookkeeping only) and
			// physically exchange the recovery buffer contents.
			// blockIdx itself must stay fixed to position k so the
			// final relabeling step writes back to the right block.
			a[pivot], a[k] = a[k], a[pivot]
			gf256.Swap(used[pivot].buf, used[k].buf)
		}

		scale := a[k][k]
		if scale != 1 {
			invScale := ctx.Inv(scale)
			row := a[k]
			for j := range row {
				row[j] = ctx.Mul(row[j], invScale)
			}
			ctx.DivScalar(used[k].buf, used[k].buf, scale)
		}

		for i := 0; i < e; i++ {
			if i == k {
				continue
			}
			factor := a[i][k]
			if factor == 0 {
				continue
			}
			rowK, rowI := a[k], a[i]
			for j := range rowI {
				rowI[j] ^= ctx.Mul(factor, rowK[j])
			}
			ctx.MulAddScalar(used[i].buf, factor, used[k].buf)
		}
	}

	// Relabel. used[i].buf now holds the recovered original
	// for index missing[i]; the buffer is the same slice as
	// blocks[used[i].blockIdx].Data, so only the Index needs updating.
	for i, u := range used {
		blocks[u.blockIdx].Index = missing[i]
	}
	return nil
}
