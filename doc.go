// Package bignum provides arbitrary-precision signed integer arithmetic.
//
// Values are represented in sign-magnitude form: a little-endian slice of
// 32-bit limbs plus a sign flag. There is exactly one representation of
// zero (empty magnitude, positive sign). Every operation returns a freshly
// allocated, canonical value; no arithmetic method mutates its receiver or
// its arguments. The decoding methods (UnmarshalText, UnmarshalJSON,
// UnmarshalBinary, Scan) overwrite their receiver with the decoded value.
//
// # How it works
//
// The Int type is composed of a magnitude and a sign, where the number is
// represented as:
//
//	number = (neg ? -1 : 1) * sum(mag[i] * 2^(32*i))
//	e.g. 1000 = mag: [1000], neg: false
//	    -1000 = mag: [1000], neg: true
//
// Multiplication is schoolbook (no Karatsuba/Toom/FFT). Division is Knuth's
// Algorithm D, run on a 16-bit half-limb view of the magnitude so the
// per-step divide fits a native 32-by-16 hardware division; see halflimb.go.
// Small magnitudes (at most two limbs) are computed directly with 64-bit
// hardware arithmetic before falling back to the general limb kernel; see
// fastword.go.
//
// # Codec
//
// Int supports several encoding mechanisms for integration with common
// storage and transport layers:
//
//   - Marshal/UnmarshalText, MarshalJSON/UnmarshalJSON: decimal string.
//   - MarshalBinary/UnmarshalBinary: a compact tagged format.
//   - SQL: Int implements sql.Scanner and driver.Valuer.
//   - DynamoDB: ToAttributeValue/IntFromAttributeValue.
package bignum
