package bignum

// value.go implements the signed integer value Int: its two constructors,
// normalization, ordering, zero test, and the four signed arithmetic
// operations, each dispatching to the unsigned limb kernel per the sign
// table in spec §4.3. Method shape (value receiver, z := x.Op(y)) follows
// nehemming/numeric's Numeric type.

// MaxLiteralLen bounds the number of digit characters FromDecimal will
// accept before returning ErrOverflow (spec §3: "Overflow/capacity —
// decimal literal exceeds a configured buffer"). Zero disables the bound.
// cmd/bigcalc overrides this to enforce its own 100 KiB literal buffer
// (spec §6.2).
var MaxLiteralLen = 100 * 1024

// SetMaxLiteralLen changes the global literal-length bound enforced by
// FromDecimal.
func SetMaxLiteralLen(n int) {
	MaxLiteralLen = n
}

// Int is an arbitrary-precision signed integer in sign-magnitude form.
//
// Invariants (spec §3):
//   - I1: if mag is empty, neg is false — there is exactly one zero.
//   - I2: the last element of mag, if present, is non-zero.
//   - I3: the represented value is (neg ? -1 : 1) * Σ mag[i]·2^(32i).
//
// The zero value of Int is the canonical zero.
type Int struct {
	mag []uint32
	neg bool
}

// FromLimbs constructs an Int from a little-endian limb slice and a sign.
// Trailing zero limbs are stripped; if the result is zero, the sign is
// forced positive (I1). The input slice is not retained.
func FromLimbs(limbs []uint32, negative bool) Int {
	mag := stripMag(append([]uint32(nil), limbs...))
	if len(mag) == 0 {
		negative = false
	}
	return Int{mag: mag, neg: negative}
}

// FromDecimal parses an optionally-signed decimal string ([-+]?[0-9]+) into
// an Int. A bare sign with no digits, an empty string, embedded whitespace,
// or any non-digit character is ErrInvalidNumeral. A leading '+' is
// accepted as a compatible extension (spec §9's Open Question) and treated
// identically to no sign. A digit run longer than MaxLiteralLen is
// ErrOverflow.
func FromDecimal(s string) (Int, error) {
	if s == "" {
		return Int{}, ErrInvalidNumeral
	}

	neg := false
	digits := s
	switch s[0] {
	case '-':
		neg = true
		digits = s[1:]
	case '+':
		digits = s[1:]
	}

	if digits == "" {
		return Int{}, ErrInvalidNumeral
	}
	if MaxLiteralLen > 0 && len(digits) > MaxLiteralLen {
		return Int{}, ErrOverflow
	}

	mag, err := magFromDecimal(digits)
	if err != nil {
		return Int{}, err
	}
	if len(mag) == 0 {
		neg = false
	}

	return Int{mag: mag, neg: neg}, nil
}

// IsZero reports whether x is zero.
func (x Int) IsZero() bool {
	return len(x.mag) == 0
}

// Sign returns -1, 0, or 1 according to the sign of x.
func (x Int) Sign() int {
	switch {
	case x.IsZero():
		return 0
	case x.neg:
		return -1
	default:
		return 1
	}
}

// Cmp compares x and y, returning -1, 0, or +1 (spec §6.1). It is a total
// order agreeing with the sign of x-y.
func (x Int) Cmp(y Int) int {
	if x.neg != y.neg {
		if x.neg {
			return -1
		}
		return 1
	}

	c := cmpMag(x.mag, y.mag)
	if x.neg {
		return -c
	}
	return c
}

// Neg returns -x, re-canonicalizing the sign if x is zero.
func (x Int) Neg() Int {
	if x.IsZero() {
		return x
	}
	return Int{mag: append([]uint32(nil), x.mag...), neg: !x.neg}
}

// Add returns x+y (spec §4.3).
func (x Int) Add(y Int) Int {
	if x.neg == y.neg {
		mag, ok := addMagFast(x.mag, y.mag)
		if !ok {
			u, v := padMags(x.mag, y.mag)
			mag = addMag(u, v)
		}
		return FromLimbs(mag, x.neg)
	}

	// Opposite signs: |larger| - |smaller|, sign of the larger magnitude.
	switch cmpMag(x.mag, y.mag) {
	case 0:
		return Int{}
	case 1:
		return Int{mag: subMagOrdered(x.mag, y.mag), neg: x.neg}
	default:
		return Int{mag: subMagOrdered(y.mag, x.mag), neg: y.neg}
	}
}

// Sub returns x-y, reduced to x + (-y) (spec §4.3).
func (x Int) Sub(y Int) Int {
	return x.Add(y.Neg())
}

// Mul returns x*y (spec §4.3): magnitude is |x|*|y|, sign is the XOR of the
// operands' signs.
func (x Int) Mul(y Int) Int {
	if x.IsZero() || y.IsZero() {
		return Int{}
	}

	mag, ok := mulMagFast(x.mag, y.mag)
	if !ok {
		mag = mulMag(x.mag, y.mag)
	}

	return FromLimbs(mag, x.neg != y.neg)
}

// DivRem returns the truncating quotient and remainder of x/y such that
// x = q*y + r, |r| < |y|, and sign(r) is 0 or sign(x) (spec §4.3, §8). It
// fails with ErrDivisionByZero if y is zero.
func (x Int) DivRem(y Int) (q, r Int, err error) {
	if y.IsZero() {
		return Int{}, Int{}, ErrDivisionByZero
	}

	if cmpMag(x.mag, y.mag) < 0 {
		return Int{}, FromLimbs(x.mag, x.neg), nil
	}

	qmag, rmag, ok := quoRemMagFast(x.mag, y.mag)
	if !ok {
		qmag, rmag = divMag(x.mag, y.mag)
	}

	return FromLimbs(qmag, x.neg != y.neg), FromLimbs(rmag, x.neg), nil
}

// Div returns the truncating quotient of x/y (spec §4.3).
func (x Int) Div(y Int) (Int, error) {
	q, _, err := x.DivRem(y)
	return q, err
}

// Rem returns the remainder of x/y, sharing its sign with x (spec §4.3).
func (x Int) Rem(y Int) (Int, error) {
	_, r, err := x.DivRem(y)
	return r, err
}

// subMagOrdered computes u-v for magnitudes with cmpMag(u, v) >= 0,
// preferring the fast path before falling back to the general kernel.
func subMagOrdered(u, v []uint32) []uint32 {
	mag, ok := subMagFast(u, v)
	if ok {
		return mag
	}

	pu, pv := padMags(u, v)
	return stripMag(subMag(pu, pv))
}
