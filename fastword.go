package bignum

import "math/bits"

// fastword.go is bignum's small-value fast path: magnitudes of at most two
// 32-bit limbs are packed into a single uint64 and computed with native
// 64-bit hardware arithmetic (math/bits.Add64/Sub64/Mul64/Div64) instead of
// the general []uint32 kernel in limb.go. This mirrors the teacher's
// BInt.overflow two-tier dispatch (try the fast representation; fall back
// to the general one only when it can't represent the result) — see
// spec.md §9's note that a small-value optimization is compatible with the
// spec without changing any observable behavior.

// wordFromMag packs a magnitude of 0, 1, or 2 limbs into a uint64. ok is
// false if mag has more than two limbs and can't be packed.
func wordFromMag(mag []uint32) (w uint64, ok bool) {
	switch len(mag) {
	case 0:
		return 0, true
	case 1:
		return uint64(mag[0]), true
	case 2:
		return uint64(mag[0]) | uint64(mag[1])<<32, true
	default:
		return 0, false
	}
}

// magFromWord unpacks a uint64 back into a normalized (no trailing zero
// limb) magnitude.
func magFromWord(w uint64) []uint32 {
	lo := uint32(w)
	hi := uint32(w >> 32)

	switch {
	case hi != 0:
		return []uint32{lo, hi}
	case lo != 0:
		return []uint32{lo}
	default:
		return nil
	}
}

// addMagFast adds two magnitudes via the fast path. ok is false if either
// operand doesn't fit in two limbs or the sum overflows 64 bits, in which
// case the caller must fall back to addMag.
func addMagFast(x, y []uint32) (sum []uint32, ok bool) {
	xw, ok1 := wordFromMag(x)
	yw, ok2 := wordFromMag(y)
	if !ok1 || !ok2 {
		return nil, false
	}

	s, carry := bits.Add64(xw, yw, 0)
	if carry != 0 {
		return nil, false
	}

	return magFromWord(s), true
}

// subMagFast computes x-y (precondition x >= y) via the fast path.
func subMagFast(x, y []uint32) (diff []uint32, ok bool) {
	xw, ok1 := wordFromMag(x)
	yw, ok2 := wordFromMag(y)
	if !ok1 || !ok2 {
		return nil, false
	}

	d, borrow := bits.Sub64(xw, yw, 0)
	if borrow != 0 {
		return nil, false
	}

	return magFromWord(d), true
}

// mulMagFast multiplies two magnitudes via the fast path, failing if either
// operand exceeds two limbs or the exact product overflows 64 bits.
func mulMagFast(x, y []uint32) (prod []uint32, ok bool) {
	xw, ok1 := wordFromMag(x)
	yw, ok2 := wordFromMag(y)
	if !ok1 || !ok2 {
		return nil, false
	}

	hi, lo := bits.Mul64(xw, yw)
	if hi != 0 {
		return nil, false
	}

	return magFromWord(lo), true
}

// quoRemMagFast divides x by non-zero y via the fast path.
func quoRemMagFast(x, y []uint32) (q, r []uint32, ok bool) {
	xw, ok1 := wordFromMag(x)
	yw, ok2 := wordFromMag(y)
	if !ok1 || !ok2 || yw == 0 {
		return nil, nil, false
	}

	qw, rw := bits.Div64(0, xw, yw)
	return magFromWord(qw), magFromWord(rw), true
}
