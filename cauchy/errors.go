package cauchy

import "github.com/pkg/errors"

// The following sentinels are the closed set of error kinds this
// package returns. Callers should compare against them with
// errors.Is; none of these are ever wrapped with extra context by
// this package itself, since the engine has no logging and no
// caller-specific information to attach (wrapping with extra context
// is left to the calling application).
var (
	// ErrInvalidParams is returned when N<1, M<0, N+M>256, or B<=0.
	ErrInvalidParams = errors.New("cauchy: invalid encoder parameters")
	// ErrNullBuffer is returned when a required buffer is missing or
	// the wrong size.
	ErrNullBuffer = errors.New("cauchy: missing or mis-sized buffer")
	// ErrIndexOutOfRange is returned when a block's index is >= N+M.
	ErrIndexOutOfRange = errors.New("cauchy: block index out of range")
	// ErrDuplicateIndex is returned when two blocks carry the same index.
	ErrDuplicateIndex = errors.New("cauchy: duplicate block index")
	// ErrInsufficientBlocks is returned when decode was given fewer
	// than N distinct valid blocks.
	ErrInsufficientBlocks = errors.New("cauchy: insufficient blocks to decode")
	// ErrSingularMatrix is returned when Gauss-Jordan elimination finds
	// no pivot. With well-formed indices this is unreachable, since
	// every square submatrix of a Cauchy generator is invertible by
	// construction; seeing it means the inputs were malformed in a way
	// index validation didn't already catch.
	ErrSingularMatrix = errors.New("cauchy: singular submatrix during decode")
)
