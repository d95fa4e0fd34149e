package bignum

// limb.go implements the unsigned, fixed-length limb kernel: addition,
// comparison, subtraction, and schoolbook multiplication over little-endian
// []uint32 magnitudes. Every routine here operates on caller-sized arrays
// and never normalizes (stripping leading zero limbs is value.go's job).

// addMag adds two equal-length magnitudes u and v (length n) and returns
// the sum as an (n+1)-limb result (spec §4.1.1). The extra limb holds the
// final carry, which is at most 1.
func addMag(u, v []uint32) []uint32 {
	n := len(u)
	w := make([]uint32, n+1)

	var carry uint32
	for j := 0; j < n; j++ {
		sum := u[j] + carry
		c1 := sum < u[j]

		sum2 := sum + v[j]
		c2 := sum2 < sum

		w[j] = sum2

		// c1 and c2 can't both be set: c1 is set only when u[j] is 2^32-1
		// and carry is 1, which wraps sum to 0, and adding v[j] to 0 cannot
		// overflow, so c2 is then false.
		switch {
		case c1:
			carry = 1
		case c2:
			carry = 1
		default:
			carry = 0
		}
	}
	w[n] = carry

	return w
}

// cmpMag compares two magnitudes already stripped of leading zero limbs.
// Shorter magnitudes are smaller; equal lengths compare from the most to
// the least significant limb. Returns -1, 0, or 1 (spec §4.1.2).
func cmpMag(u, v []uint32) int {
	if len(u) != len(v) {
		if len(u) < len(v) {
			return -1
		}
		return 1
	}

	for i := len(u) - 1; i >= 0; i-- {
		switch {
		case u[i] < v[i]:
			return -1
		case u[i] > v[i]:
			return 1
		}
	}

	return 0
}

// subMag computes u-v for equal-length magnitudes with the precondition
// u >= v (lexicographically, same length). Panics if the precondition is
// violated — callers (value.go) always order operands by cmpMag first
// (spec §4.1.3).
func subMag(u, v []uint32) []uint32 {
	n := len(u)
	w := make([]uint32, n)

	var borrow uint32
	for j := 0; j < n; j++ {
		diff := u[j] - borrow
		b1 := diff > u[j]

		diff2 := diff - v[j]
		b2 := diff2 > diff

		w[j] = diff2

		switch {
		case b1:
			borrow = 1
		case b2:
			borrow = 1
		default:
			borrow = 0
		}
	}

	if borrow != 0 {
		panic("bignum: subMag precondition violated: u < v")
	}

	return w
}

// mulMag computes the schoolbook product of an m-limb u and an n-limb v,
// returning an (m+n)-limb result (spec §4.1.4). Each step accumulates
// u[i]*v[j] + w[i+j] + k in a single 64-bit word (HAC Algorithm 14.12): the
// maximum possible value of that sum, (b-1)^2 + (b-1) + (b-1) = b^2-1 for
// b=2^32, fits exactly in 64 bits, so the carry k out of each step is
// itself guaranteed to fit back in 32 bits.
func mulMag(u, v []uint32) []uint32 {
	m, n := len(u), len(v)
	w := make([]uint32, m+n)

	for j := 0; j < n; j++ {
		if v[j] == 0 {
			continue
		}

		var k uint64
		vj := uint64(v[j])
		for i := 0; i < m; i++ {
			t := uint64(u[i])*vj + uint64(w[i+j]) + k
			w[i+j] = uint32(t)
			k = t >> 32
		}
		w[j+m] = uint32(k)
	}

	return w
}

// padMags zero-extends u and v on their most-significant end to a common
// length, as addMag/subMag require equal-length fixed inputs.
func padMags(u, v []uint32) ([]uint32, []uint32) {
	n := len(u)
	if len(v) > n {
		n = len(v)
	}

	pu := make([]uint32, n)
	copy(pu, u)

	pv := make([]uint32, n)
	copy(pv, v)

	return pu, pv
}

// stripMag returns u with trailing zero limbs (i.e. zero limbs at the
// most-significant end of the little-endian slice) removed, so the result
// satisfies invariant I2: the last limb, if any, is non-zero.
func stripMag(u []uint32) []uint32 {
	n := len(u)
	for n > 0 && u[n-1] == 0 {
		n--
	}
	return u[:n]
}
