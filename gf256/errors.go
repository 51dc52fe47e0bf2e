package gf256

import "github.com/pkg/errors"

// ErrInitFailed is returned by New when the generator walk under the
// supplied polynomial does not cover all 255 non-zero field elements
// (the polynomial is not irreducible in GF(2) at degree 8, or x is not
// a primitive element modulo it), so the log/exp tables would be
// inconsistent.
var ErrInitFailed = errors.New("gf256: polynomial does not generate GF(256)")
