package bignum

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMagFromDecimalInvalid(t *testing.T) {
	testcases := []string{"", "12a3", "1 2", "-", "１２３"}

	for _, tc := range testcases {
		_, err := magFromDecimal(tc)
		require.ErrorIs(t, err, ErrInvalidNumeral)
	}
}

func TestMagDecimalRoundTrip(t *testing.T) {
	testcases := []string{
		"0",
		"1",
		"9",
		"10",
		"123456789",
		"1000000000",
		"999999999999999999999999999999",
		"340282366920938463463374607431768211456",
	}

	for _, tc := range testcases {
		mag, err := magFromDecimal(tc)
		require.NoError(t, err)
		require.Equal(t, tc, magToDecimal(mag))
	}
}

func TestMagDecimalAgainstMathBig(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		n := 1 + rng.Intn(40)
		digits := make([]byte, n)
		digits[0] = byte('1' + rng.Intn(9))
		for j := 1; j < n; j++ {
			digits[j] = byte('0' + rng.Intn(10))
		}
		s := string(digits)

		mag, err := magFromDecimal(s)
		require.NoError(t, err)

		want, ok := new(big.Int).SetString(s, 10)
		require.True(t, ok)
		require.Equal(t, want.String(), magToDecimal(mag))
		require.Equal(t, want, magToBigInt(mag))
	}
}

func TestMagToDecimalZero(t *testing.T) {
	require.Equal(t, "0", magToDecimal(nil))
}

// magToBigInt is a test-only independent re-derivation of a magnitude's
// value, used to cross-check magToDecimal/magFromDecimal against
// math/big arithmetic (one Mul and Add per limb, most significant first).
func magToBigInt(mag []uint32) *big.Int {
	v := new(big.Int)
	base := new(big.Int).Lsh(big.NewInt(1), 32)
	for i := len(mag) - 1; i >= 0; i-- {
		v.Mul(v, base)
		v.Add(v, new(big.Int).SetUint64(uint64(mag[i])))
	}
	return v
}
