package mathx

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bi(v int64) *big.Int { return big.NewInt(v) }

func TestGCDKnownValues(t *testing.T) {
	cases := []struct{ a, b, want int64 }{
		{48, 18, 6},
		{18, 48, 6},
		{17, 31, 1},
		{0, 12, 12},
		{12, 0, 12},
		{0, 0, 0},
		{-48, 18, 6},
	}
	for _, c := range cases {
		got := GCD(bi(c.a), bi(c.b))
		assert.Equal(t, c.want, got.Int64(), "gcd(%d, %d)", c.a, c.b)
	}
}

func TestGCDDividesBothAndLCMProduct(t *testing.T) {
	for a := int64(1); a <= 40; a++ {
		for b := int64(1); b <= 40; b++ {
			g := GCD(bi(a), bi(b))
			require.Equal(t, int64(0), new(big.Int).Mod(bi(a), g).Int64())
			require.Equal(t, int64(0), new(big.Int).Mod(bi(b), g).Int64())

			l, err := LCM(bi(a), bi(b))
			require.NoError(t, err)
			// lcm(a,b) * gcd(a,b) == a*b
			lg := new(big.Int).Mul(l, g)
			require.Equal(t, 0, lg.Cmp(new(big.Int).Mul(bi(a), bi(b))),
				"lcm*gcd != a*b for a=%d b=%d", a, b)
		}
	}
}

func TestLCMUndefinedForZeroPair(t *testing.T) {
	_, err := LCM(bi(0), bi(0))
	assert.ErrorIs(t, err, ErrUndefinedLCM)
}

func TestPowModMatchesBigExp(t *testing.T) {
	for base := int64(0); base <= 12; base++ {
		for exp := int64(0); exp <= 12; exp++ {
			for mod := int64(1); mod <= 15; mod++ {
				got, err := PowMod(bi(base), bi(exp), bi(mod))
				require.NoError(t, err)
				want := new(big.Int).Exp(bi(base), bi(exp), bi(mod))
				require.Equal(t, 0, got.Cmp(want),
					"powmod(%d,%d,%d): got %s want %s", base, exp, mod, got, want)
			}
		}
	}
}

func TestPowModLargeOperands(t *testing.T) {
	base, _ := new(big.Int).SetString("9237501873465098127340981273409817234098", 10)
	exp, _ := new(big.Int).SetString("82734098127340981723409812734098", 10)
	mod, _ := new(big.Int).SetString("340282366920938463463374607431768211507", 10)

	got, err := PowMod(base, exp, mod)
	require.NoError(t, err)
	want := new(big.Int).Exp(base, exp, mod)
	assert.Equal(t, 0, got.Cmp(want))
}

func TestPowModRejectsBadArguments(t *testing.T) {
	_, err := PowMod(bi(2), bi(-1), bi(5))
	assert.ErrorIs(t, err, ErrNegativeExponent)

	_, err = PowMod(bi(2), bi(3), bi(0))
	assert.ErrorIs(t, err, ErrNonPositiveModulus)
}

func TestPowModDoesNotMutateArguments(t *testing.T) {
	base, exp, mod := bi(7), bi(19), bi(23)
	_, err := PowMod(base, exp, mod)
	require.NoError(t, err)
	assert.Equal(t, int64(7), base.Int64())
	assert.Equal(t, int64(19), exp.Int64())
	assert.Equal(t, int64(23), mod.Int64())
}

func TestExtendedGCDBezoutIdentity(t *testing.T) {
	for a := int64(0); a <= 40; a++ {
		for b := int64(0); b <= 40; b++ {
			if a == 0 && b == 0 {
				continue
			}
			g, x, y := ExtendedGCD(bi(a), bi(b))
			lhs := new(big.Int).Mul(bi(a), x)
			lhs.Add(lhs, new(big.Int).Mul(bi(b), y))
			require.Equal(t, 0, lhs.Cmp(g), "a=%d b=%d", a, b)
			require.Equal(t, 0, g.Cmp(GCD(bi(a), bi(b))), "a=%d b=%d", a, b)
		}
	}
}

func TestModInverse(t *testing.T) {
	// 17 * 413 = 7021 = 9*780 + 1
	inv, err := ModInverse(bi(17), bi(780))
	require.NoError(t, err)
	assert.Equal(t, int64(413), inv.Int64())

	// Result is normalized into [0, n).
	inv, err = ModInverse(bi(3), bi(7))
	require.NoError(t, err)
	assert.Equal(t, int64(5), inv.Int64())
	assert.True(t, inv.Sign() >= 0)
}

func TestModInverseNotInvertible(t *testing.T) {
	_, err := ModInverse(bi(6), bi(9))
	assert.ErrorIs(t, err, ErrNotInvertible)
}

func TestModInverseRoundTrip(t *testing.T) {
	n := bi(101)
	for a := int64(1); a < 101; a++ {
		inv, err := ModInverse(bi(a), n)
		require.NoError(t, err)
		prod := new(big.Int).Mul(bi(a), inv)
		prod.Mod(prod, n)
		require.Equal(t, int64(1), prod.Int64(), "a=%d", a)
	}
}
