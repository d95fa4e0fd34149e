package bignum

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromDecimalInvalid(t *testing.T) {
	testcases := []string{"", "-", "+", "1 2", "12a", "--1"}

	for _, tc := range testcases {
		_, err := FromDecimal(tc)
		require.ErrorIs(t, err, ErrInvalidNumeral)
	}
}

func TestFromDecimalLeadingPlus(t *testing.T) {
	x, err := FromDecimal("+123")
	require.NoError(t, err)

	y, err := FromDecimal("123")
	require.NoError(t, err)

	require.Equal(t, 0, x.Cmp(y))
	require.Equal(t, "123", x.String())
}

func TestFromDecimalOverflow(t *testing.T) {
	defer SetMaxLiteralLen(MaxLiteralLen)
	SetMaxLiteralLen(5)

	_, err := FromDecimal("123456")
	require.ErrorIs(t, err, ErrOverflow)

	_, err = FromDecimal("12345")
	require.NoError(t, err)
}

func TestCanonicalZero(t *testing.T) {
	testcases := []Int{
		{},
		FromLimbs(nil, true),
		FromLimbs([]uint32{0, 0, 0}, true),
		MustFromDecimal(t, "0"),
		MustFromDecimal(t, "-0"),
	}

	for _, z := range testcases {
		require.True(t, z.IsZero())
		require.Equal(t, 0, z.Sign())
		require.Equal(t, "0", z.String())
	}
}

func TestAddCommutativeAssociative(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 300; i++ {
		x := randomInt(rng)
		y := randomInt(rng)
		z := randomInt(rng)

		require.Equal(t, 0, x.Add(y).Cmp(y.Add(x)), "commutative")
		require.Equal(t, 0, x.Add(y).Add(z).Cmp(x.Add(y.Add(z))), "associative")

		zero := Int{}
		require.Equal(t, 0, x.Add(zero).Cmp(x))
		require.Equal(t, 0, x.Add(x.Neg()).Cmp(Int{}))
	}
}

func TestSubDefinition(t *testing.T) {
	rng := rand.New(rand.NewSource(8))

	for i := 0; i < 300; i++ {
		x := randomInt(rng)
		y := randomInt(rng)

		require.Equal(t, 0, x.Sub(y).Cmp(x.Add(y.Neg())))
		require.Equal(t, 0, x.Sub(x).Cmp(Int{}))
	}
}

func TestMulProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(9))

	one := mustInt(t, "1")

	for i := 0; i < 300; i++ {
		x := randomInt(rng)
		y := randomInt(rng)
		z := randomInt(rng)

		require.Equal(t, 0, x.Mul(y).Cmp(y.Mul(x)), "commutative")
		require.Equal(t, 0, x.Mul(y).Mul(z).Cmp(x.Mul(y.Mul(z))), "associative")
		require.Equal(t, 0, x.Mul(y.Add(z)).Cmp(x.Mul(y).Add(x.Mul(z))), "distributive")
		require.True(t, x.Mul(Int{}).IsZero())
		require.Equal(t, 0, x.Mul(one).Cmp(x))
		require.Equal(t, 0, x.Neg().Mul(y).Cmp(x.Mul(y).Neg()))
	}
}

func TestDivisionIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(10))

	for i := 0; i < 500; i++ {
		x := randomInt(rng)
		y := randomInt(rng)
		if y.IsZero() {
			continue
		}

		q, r, err := x.DivRem(y)
		require.NoError(t, err)

		require.Equal(t, 0, q.Mul(y).Add(r).Cmp(x))
		require.Equal(t, -1, r.Abs().Cmp(y.Abs()))

		if !r.IsZero() {
			require.Equal(t, x.Sign(), r.Sign())
		}
	}
}

func TestDivisionByZero(t *testing.T) {
	x := mustInt(t, "123")
	zero := Int{}

	_, err := x.Div(zero)
	require.ErrorIs(t, err, ErrDivisionByZero)

	_, err = x.Rem(zero)
	require.ErrorIs(t, err, ErrDivisionByZero)
}

func TestCmpTotalOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 300; i++ {
		x := randomInt(rng)
		y := randomInt(rng)

		require.Equal(t, -x.Cmp(y), y.Cmp(x))
		require.Equal(t, x.Sub(y).Sign(), x.Cmp(y))
	}
}

func TestEndToEndScenarios(t *testing.T) {
	t.Run("123+456 * 789", func(t *testing.T) {
		x := mustInt(t, "123").Add(mustInt(t, "456")).Mul(mustInt(t, "789"))
		require.Equal(t, "457131", x.String())
	})

	t.Run("negative 2^128 round-trips", func(t *testing.T) {
		s := "-340282366920938463463374607431768211456"
		x := mustInt(t, s)
		require.Equal(t, s, x.String())
	})

	t.Run("big division", func(t *testing.T) {
		x := mustInt(t, "1000000000000000000000")
		y := mustInt(t, "7")

		q, err := x.Div(y)
		require.NoError(t, err)
		require.Equal(t, "142857142857142857142", q.String())

		r, err := x.Rem(y)
		require.NoError(t, err)
		require.Equal(t, "6", r.String())
	})

	t.Run("truncation toward zero", func(t *testing.T) {
		q, err := mustInt(t, "-17").Div(mustInt(t, "5"))
		require.NoError(t, err)
		require.Equal(t, "-3", q.String())

		r, err := mustInt(t, "-17").Rem(mustInt(t, "5"))
		require.NoError(t, err)
		require.Equal(t, "-2", r.String())

		q, err = mustInt(t, "17").Div(mustInt(t, "-5"))
		require.NoError(t, err)
		require.Equal(t, "-3", q.String())

		r, err = mustInt(t, "17").Rem(mustInt(t, "-5"))
		require.NoError(t, err)
		require.Equal(t, "2", r.String())
	})

	t.Run("0 - 0", func(t *testing.T) {
		z := mustInt(t, "0").Sub(mustInt(t, "0"))
		require.True(t, z.IsZero())
		require.False(t, z.neg) // sign flag is positive
	})

	t.Run("large multiplication", func(t *testing.T) {
		x := mustInt(t, "99999999999999999999")
		y := x.Mul(x)
		require.Equal(t, "9999999999999999999800000000000000000001", y.String())
	})
}

func TestAgainstMathBigRandomized(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	for i := 0; i < 400; i++ {
		xs, x := randomIntAndBig(rng)
		ys, y := randomIntAndBig(rng)

		sum := xs.Add(ys)
		require.Equal(t, new(big.Int).Add(x, y).String(), sum.String())

		diff := xs.Sub(ys)
		require.Equal(t, new(big.Int).Sub(x, y).String(), diff.String())

		prod := xs.Mul(ys)
		require.Equal(t, new(big.Int).Mul(x, y).String(), prod.String())

		if y.Sign() == 0 {
			continue
		}

		q, r, err := xs.DivRem(ys)
		require.NoError(t, err)

		wantQ := new(big.Int).Quo(x, y)
		wantR := new(big.Int).Rem(x, y)
		require.Equal(t, wantQ.String(), q.String())
		require.Equal(t, wantR.String(), r.String())
	}
}

// --- test helpers ---

// Abs is a small helper used only by tests to check |r| < |y|.
func (x Int) Abs() Int {
	return Int{mag: x.mag, neg: false}
}

func mustInt(t *testing.T, s string) Int {
	t.Helper()
	x, err := FromDecimal(s)
	require.NoError(t, err)
	return x
}

func MustFromDecimal(t *testing.T, s string) Int {
	return mustInt(t, s)
}

func randomInt(rng *rand.Rand) Int {
	n := rng.Intn(5)
	mag := make([]uint32, n)
	for i := range mag {
		mag[i] = rng.Uint32()
	}
	return FromLimbs(mag, n > 0 && rng.Intn(2) == 0)
}

func randomIntAndBig(rng *rand.Rand) (Int, *big.Int) {
	x := randomInt(rng)
	b, ok := new(big.Int).SetString(x.String(), 10)
	if !ok {
		panic("bad decimal string: " + x.String())
	}
	return x, b
}
