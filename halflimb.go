package bignum

import "math/bits"

// halflimb.go implements the 16-bit half-limb bridge and the two division
// primitives built on it: short division by a half-limb scalar, and Knuth's
// Algorithm D long division (spec §4.1.5-4.1.7).
//
// Division needs a (2w-bit)÷(w-bit)→w-bit primitive with the quotient
// guaranteed to fit in one limb. On 32-bit limbs that would require 128-bit
// hardware division; narrowing to 16-bit half-limbs lets the estimate step
// reuse a native 32-by-16 divide (here, plain uint32/uint16 arithmetic)
// instead. See spec.md §9 for the rationale.

// splitLimbs converts a little-endian 32-bit magnitude into its little-endian
// 16-bit half-limb view: u32→u16. Length is always 2*len(mag).
func splitLimbs(mag []uint32) []uint16 {
	h := make([]uint16, len(mag)*2)
	for i, l := range mag {
		h[2*i] = uint16(l)
		h[2*i+1] = uint16(l >> 16)
	}
	return h
}

// joinLimbs recomposes a little-endian 16-bit half-limb view back into a
// 32-bit magnitude: u16→u32. An odd-length input pads to even by appending
// a zero half-limb, per spec §3 (half-limb working form).
func joinLimbs(h []uint16) []uint32 {
	if len(h)%2 != 0 {
		h = append(h[:len(h):len(h)], 0)
	}

	mag := make([]uint32, len(h)/2)
	for i := range mag {
		mag[i] = uint32(h[2*i]) | uint32(h[2*i+1])<<16
	}

	return stripMag(mag)
}

// divisorHalfLimbs splits a divisor magnitude into half-limbs with its top
// half-limb non-zero, as Algorithm D's normalization step requires. The
// magnitude's top 32-bit limb is non-zero (invariant I2), but that limb's
// upper 16 bits may still be zero; in that case the 16-bit length is 2n-1
// rather than 2n (spec §4.1.7).
func divisorHalfLimbs(v []uint32) []uint16 {
	vh := splitLimbs(v)
	if vh[len(vh)-1] == 0 {
		vh = vh[:len(vh)-1]
	}
	return vh
}

// shortDivHalf divides an n-half-limb dividend by a single non-zero
// half-limb divisor, sweeping high to low and carrying the remainder
// between steps (spec §4.1.5). The 32-by-16 step is plain uint32 division:
// since the running remainder k is always < v, the quotient digit is
// guaranteed to fit in 16 bits.
func shortDivHalf(u []uint16, v uint16) (q []uint16, r uint16) {
	n := len(u)
	q = make([]uint16, n)

	var k uint32
	for i := n - 1; i >= 0; i-- {
		cur := k<<16 | uint32(u[i])
		q[i] = uint16(cur / uint32(v))
		k = cur % uint32(v)
	}

	return q, uint16(k)
}

// longDivHalf divides an (m+n)-half-limb dividend u by an n-half-limb
// divisor v (top half-limb non-zero) using Knuth's Algorithm D, returning
// an (m+1)-half-limb quotient and an n-half-limb remainder (spec §4.1.6).
func longDivHalf(u, v []uint16) (q, r []uint16) {
	n := len(v)
	if n == 1 {
		qq, rr := shortDivHalf(u, v[0])
		return qq, []uint16{rr}
	}

	m := len(u) - n

	// Step 1: normalize so the divisor's top half-limb has its high bit set.
	shift := bits.LeadingZeros16(v[n-1])

	vn := make([]uint16, n)
	shiftLeftHalf(vn, v, shift)

	un := make([]uint16, m+n+1)
	shiftLeftHalfExtend(un, u, shift)

	q = make([]uint16, m+1)

	for j := m; j >= 0; j-- {
		// Step 2a: estimate qhat, rhat from the top two half-limbs.
		t := uint64(un[j+n])<<16 | uint64(un[j+n-1])
		vTop := uint64(vn[n-1])

		qhat := t / vTop
		rhat := t % vTop

		// Step 2b: correct the estimate.
		for qhat > 0xFFFF || qhat*uint64(vn[n-2]) > rhat<<16|uint64(un[j+n-2]) {
			qhat--
			rhat += vTop
			if rhat >= 0x10000 {
				break
			}
		}

		// Step 2c: multiply-subtract u[j..j+n] -= qhat*v[0..n-1].
		var carry, borrow uint64
		for i := 0; i < n; i++ {
			p := qhat*uint64(vn[i]) + carry
			carry = p >> 16

			sub := int64(un[j+i]) - int64(uint16(p)) - int64(borrow)
			if sub < 0 {
				sub += 0x10000
				borrow = 1
			} else {
				borrow = 0
			}
			un[j+i] = uint16(sub)
		}

		sub := int64(un[j+n]) - int64(carry) - int64(borrow)
		if sub < 0 {
			sub += 0x10000
			borrow = 1
		} else {
			borrow = 0
		}
		un[j+n] = uint16(sub)

		// Step 2d: add back on underflow — qhat was one too large.
		if borrow != 0 {
			qhat--

			var c uint32
			for i := 0; i < n; i++ {
				sum := uint32(un[j+i]) + uint32(vn[i]) + c
				un[j+i] = uint16(sum)
				c = sum >> 16
			}
			un[j+n] = uint16(uint32(un[j+n]) + c)
		}

		q[j] = uint16(qhat)
	}

	// Step 3: unnormalize the remainder, left in un[0:n].
	r = make([]uint16, n)
	shiftRightHalf(r, un[:n], shift)

	return q, r
}

// shiftLeftHalf left-shifts src by shift bits (0-15) into dst, both of
// length n, with no carry out (the caller guarantees shift was computed
// from leading zeros of src's top half-limb, so there is none).
func shiftLeftHalf(dst, src []uint16, shift int) {
	n := len(src)
	if shift == 0 {
		copy(dst, src)
		return
	}

	for i := n - 1; i > 0; i-- {
		dst[i] = src[i]<<shift | src[i-1]>>(16-shift)
	}
	dst[0] = src[0] << shift
}

// shiftLeftHalfExtend left-shifts src (length n) by shift bits into dst
// (length n+1), capturing the carry out of the top half-limb into dst's
// extra slot (spec §4.1.6 step 1: "that slot must be reserved and initially
// zero").
func shiftLeftHalfExtend(dst, src []uint16, shift int) {
	n := len(src)
	if shift == 0 {
		copy(dst, src)
		return
	}

	dst[n] = src[n-1] >> (16 - shift)
	for i := n - 1; i > 0; i-- {
		dst[i] = src[i]<<shift | src[i-1]>>(16-shift)
	}
	dst[0] = src[0] << shift
}

// shiftRightHalf right-shifts src by shift bits into dst, both length n.
func shiftRightHalf(dst, src []uint16, shift int) {
	n := len(src)
	if shift == 0 {
		copy(dst, src)
		return
	}

	for i := 0; i < n-1; i++ {
		dst[i] = src[i]>>shift | src[i+1]<<(16-shift)
	}
	dst[n-1] = src[n-1] >> shift
}

// divMag divides magnitude u by non-zero magnitude v (both already
// normalized — no trailing zero limb), returning truncated quotient and
// remainder magnitudes, each itself normalized. Callers (value.go) must
// ensure v is non-zero and |u| >= |v| before calling; the |u| < |v| and
// v == 0 cases are handled at the signed layer.
func divMag(u, v []uint32) (q, r []uint32) {
	uh := splitLimbs(u)
	vh := divisorHalfLimbs(v)

	qh, rh := longDivHalf(uh, vh)

	return joinLimbs(qh), joinLimbs(rh)
}
